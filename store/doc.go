// SPDX-License-Identifier: MIT

// Package store persists matching runs in a SQLite database
// (modernc.org/sqlite, pure Go) and exports results as CSV.
//
// Schema:
//
//	runs(id, name1, name2, plant_max_distance, axis_max_distance, created)
//	matches(run_id, level, first_id, second_id, distance)
//
// A matches row with both ids set is a matched pair; a row with one id
// NULL is a node left unmatched on the other side.
package store
