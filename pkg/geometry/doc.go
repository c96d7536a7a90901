// Package geometry provides the 2D shape value types used as hitboxes
// (lines, circles, axis-aligned rectangles and oriented rectangles), the
// exact pairwise intersection predicates between them, and BoundingShape,
// which aggregates several primitives into a single hitbox.
//
// Every predicate is total: degenerate shapes (zero radius, zero size,
// zero-length segments) are evaluated with the same formulas and never
// panic. Floating point equality goes through physics.ApproxEqual.
package geometry
