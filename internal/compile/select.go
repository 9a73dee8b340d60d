package compile

import (
	"strconv"
	"strings"

	"github.com/restq/restq/internal/ast"
	"github.com/restq/restq/internal/wire"
)

// Compile converts a parsed statement into a wire request.
//
// Only select statements are supported. Any other kind fails with an
// UnsupportedStatementError naming the kind; no partial request is
// returned.
func Compile(stmt ast.Statement) (*wire.Request, error) {
	switch s := stmt.(type) {
	case *ast.Select:
		return compileSelect(s)
	default:
		return nil, &UnsupportedStatementError{Kind: statementKind(stmt)}
	}
}

// compileSelect assembles the parameter multimap in canonical order:
// select, filter parameters, order, limit, offset.
func compileSelect(sel *ast.Select) (*wire.Request, error) {
	req := wire.NewGet("/" + sel.From)

	// The bare * target is the API default; omitting the parameter is
	// the canonical spelling.
	if len(sel.Targets) > 0 && !isBareWildcard(sel.Targets) {
		req.Params.Add("select", renderTargets(sel.Targets))
	}

	if sel.Filter != nil {
		if err := compileRootFilter(req.Params, sel.Filter); err != nil {
			return nil, err
		}
	}

	if order := compileSorts(sel.Sorts); order != "" {
		req.Params.Add("order", order)
	}

	if sel.Limit != nil {
		if sel.Limit.Count != nil {
			req.Params.Add("limit", strconv.Itoa(*sel.Limit.Count))
		}
		if sel.Limit.Offset != nil {
			req.Params.Add("offset", strconv.Itoa(*sel.Limit.Offset))
		}
	}

	return req, nil
}

// compileSorts renders the order parameter value: column, optional
// .asc/.desc, optional .nullsfirst/.nullslast, entries joined by
// commas. Returns "" when there is nothing to sort by.
func compileSorts(sorts []ast.Sort) string {
	if len(sorts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(sorts))
	for _, sort := range sorts {
		entry := sort.Column
		if sort.Direction != "" {
			entry += "." + string(sort.Direction)
		}
		if sort.Nulls != "" {
			entry += ".nulls" + string(sort.Nulls)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, ",")
}

// statementKind names a statement for diagnostics.
func statementKind(stmt ast.Statement) string {
	if stmt == nil {
		return "<nil>"
	}
	return stmt.Kind()
}
