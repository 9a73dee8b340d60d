// Package ast defines the already-parsed query model consumed by the
// wire compiler.
//
// Statement, Target, and Filter are sealed interfaces using the marker
// method pattern. Only types in this package implement them, which
// enables exhaustive type switches in the compiler and makes a future
// new variant a compile-time concern rather than a silent runtime gap.
//
// Statement variants:
//   - Select: the only variant the compiler accepts
//   - Update, Insert, Delete: shapes an upstream parser produces but the
//     compiler rejects as unsupported
//
// Filter variants:
//   - ColumnFilter: a leaf comparison (column, operator, value)
//   - LogicalFilter: an and/or combination of child filters
//
// Negate on a filter applies to that node only, never recursively to
// its children. Filter trees come from an upstream parser and are
// always finite and rooted once; this package does not defend against
// cyclic trees.
//
// All values are plain data. The compiler never writes to them, so one
// Statement may be compiled any number of times.
package ast
