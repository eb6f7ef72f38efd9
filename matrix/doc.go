// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major distance matrices consumed by
// the assign package.
//
// Purpose:
//   - Cache-friendly flat storage with the explicit index formula i*cols + j.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Legal 0×N and N×0 shapes, so an empty side never needs special casing.
//
// Numeric policy:
//   - NaN is rejected by Set and NewFromRows (ErrNaN).
//   - +Inf is allowed and means "no edge": such a pair is never assignable.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
package matrix
