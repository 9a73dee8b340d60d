package ast

// Statement represents one parsed statement.
//
// This is a sealed interface - only types in this package implement it.
// Kind returns the statement's wire-level tag (e.g. "select", "update")
// for use in diagnostics.
type Statement interface {
	statementNode() // Marker method - seals interface to this package
	Kind() string
}

// Select is a read statement against a single table.
//
// Targets is the ordered output column list. A single bare "*" column
// target is the default-select shorthand. Filter, Sorts, and Limit are
// all optional; a nil Filter means "no filter", not an error.
type Select struct {
	From    string   // Table name, used verbatim in the request path
	Targets []Target // Ordered output targets
	Filter  Filter   // Root filter (nil = no filter)
	Sorts   []Sort   // Ordered sort keys
	Limit   *Limit   // Row count / offset (nil = unlimited)
}

func (*Select) statementNode() {}

// Kind returns "select".
func (*Select) Kind() string { return "select" }

// Update is a write statement. The compiler does not support it; it
// exists so statement dispatch has a concrete shape to reject.
type Update struct {
	From string
}

func (*Update) statementNode() {}

// Kind returns "update".
func (*Update) Kind() string { return "update" }

// Insert is a write statement. Unsupported by the compiler.
type Insert struct {
	Into string
}

func (*Insert) statementNode() {}

// Kind returns "insert".
func (*Insert) Kind() string { return "insert" }

// Delete is a write statement. Unsupported by the compiler.
type Delete struct {
	From string
}

func (*Delete) statementNode() {}

// Kind returns "delete".
func (*Delete) Kind() string { return "delete" }

// Target represents one output target of a select.
//
// This is a sealed interface - only types in this package implement it.
type Target interface {
	targetNode() // Marker method - seals interface to this package
}

// ColumnTarget selects a single column, optionally renamed and cast.
//
// Rendered as [alias:]column[::cast] in the select parameter. A bare
// "*" column with no alias or cast is the default-select shorthand and
// produces no select parameter at all.
type ColumnTarget struct {
	Column string
	Alias  string // Optional output name (alias:column)
	Cast   string // Optional type cast (column::cast)
}

func (*ColumnTarget) targetNode() {}

// Filter represents one node of a filter tree.
//
// This is a sealed interface - only types in this package implement it.
type Filter interface {
	filterNode() // Marker method - seals interface to this package
}

// ColumnFilter is a leaf comparison: column <operator> value.
//
// Operator is the wire operator name (eq, gt, like, ...). Value is the
// already-stringified comparison operand. Negate wraps this single
// comparison in not.
type ColumnFilter struct {
	Column   string
	Operator string
	Value    string
	Negate   bool
}

func (*ColumnFilter) filterNode() {}

// LogicalOp is the operator of a LogicalFilter.
type LogicalOp string

const (
	// LogicalAnd requires every child filter to hold.
	LogicalAnd LogicalOp = "and"
	// LogicalOr requires at least one child filter to hold.
	LogicalOr LogicalOp = "or"
)

// LogicalFilter combines child filters with and/or.
//
// Values is non-empty in well-formed input and preserves the order the
// parser produced. Negate applies to the combination, not to the
// individual children.
type LogicalFilter struct {
	Operator LogicalOp
	Values   []Filter
	Negate   bool
}

func (*LogicalFilter) filterNode() {}

// Direction is a sort direction.
type Direction string

const (
	// Ascending sorts smallest-first.
	Ascending Direction = "asc"
	// Descending sorts largest-first.
	Descending Direction = "desc"
)

// Nulls places null values first or last within a sort key.
type Nulls string

const (
	// NullsFirst places nulls before non-null values.
	NullsFirst Nulls = "first"
	// NullsLast places nulls after non-null values.
	NullsLast Nulls = "last"
)

// Sort is one sort key. Direction and Nulls are independently optional;
// the zero value of either means "unspecified, use the API default".
type Sort struct {
	Column    string
	Direction Direction
	Nulls     Nulls
}

// Limit carries row paging. Count and Offset are independently
// optional; a nil pointer means absent, so an explicit zero remains
// representable.
type Limit struct {
	Count  *int
	Offset *int
}
