// Package grid models the sparse periodic-table layout and cursor movement
// across it.
//
// A Model is built once from a literal table of entries and never changes.
// Move implements gap-skipping navigation: it scans a single row or column
// toward the edge of the bounding box and stops at the first occupied cell,
// leaving the cursor in place when there is none.
package grid
