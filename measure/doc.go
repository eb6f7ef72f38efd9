// SPDX-License-Identifier: MIT

// Package measure derives per-axis measurements from a continuous tree:
// arc length, branching order and the arc-length position of each lateral
// on its parent. Each measurement prefers an explicit node property when
// one is present ("length", "order", "parent-position") and computes the
// value from geometry otherwise.
package measure
