// Package compile turns a parsed statement into a wire.Request for a
// PostgREST-style HTTP API.
//
// Filter trees have two rendering positions with different syntax:
//
// Root position: each column filter becomes its own query parameter
// (?title=eq.Cheese), and an un-negated top-level AND disappears
// entirely - the API reads multiple same-level parameters as an
// implicit conjunction, so every child is emitted as an independent
// parameter. Any other logical root (or, or a negated and) becomes one
// grouped parameter (?or=(a.eq.1,b.eq.2)).
//
// Nested position: every node renders into the parenthesized grammar
// (not.and(a.eq.1,b.eq.2)), with the column name folded into the value
// string since there is no parameter key inside a group.
//
// The two positions are two separate functions, compileRootFilter and
// compileFilter, so the root-only AND-flattening cannot leak into
// nested rendering. The flattening is a canonicalization choice: both
// encodings are accepted by the API, but only the flattened one is
// canonical, and it must be applied exactly when the root operator is
// "and" and the node is not negated.
//
// Compilation never mutates its input. The %->* wildcard remap for
// like/ilike produces a new value string, so a statement can be
// compiled repeatedly.
package compile
