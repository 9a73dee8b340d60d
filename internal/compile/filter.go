package compile

import (
	"fmt"
	"strings"

	"github.com/restq/restq/internal/ast"
	"github.com/restq/restq/internal/wire"
)

// compileRootFilter renders a filter tree in root position, adding one
// or more query parameters to params in place.
//
// An un-negated AND at the root is flattened: each child contributes
// its own parameter(s) directly, and no and=(...) group is emitted.
// The flattening applies only when both conditions hold (operator is
// "and", not negated) and only at the root - children recurse through
// compileFilter, never back through this function.
func compileRootFilter(params *wire.Params, filter ast.Filter) error {
	switch node := filter.(type) {
	case *ast.ColumnFilter:
		value := remapWildcards(node.Operator, node.Value)
		params.Add(node.Column, notPrefix(node.Negate)+node.Operator+"."+value)
		return nil

	case *ast.LogicalFilter:
		if node.Operator == ast.LogicalAnd && !node.Negate {
			for _, child := range node.Values {
				if err := compileRootFilter(params, child); err != nil {
					return err
				}
			}
			return nil
		}
		group, err := compileChildren(node.Values)
		if err != nil {
			return err
		}
		params.Add(notPrefix(node.Negate)+string(node.Operator), "("+group+")")
		return nil

	default:
		return &UnrecognizedFilterError{Kind: filterKind(filter)}
	}
}

// compileFilter renders a filter node in nested position and returns
// the fragment string. Column filters fold the column name into the
// value (title.eq.Cheese) since nested position has no parameter key;
// logical nodes always render the explicit op(...) group, negated or
// not.
func compileFilter(filter ast.Filter) (string, error) {
	switch node := filter.(type) {
	case *ast.ColumnFilter:
		value := remapWildcards(node.Operator, node.Value)
		return notPrefix(node.Negate) + node.Column + "." + node.Operator + "." + value, nil

	case *ast.LogicalFilter:
		group, err := compileChildren(node.Values)
		if err != nil {
			return "", err
		}
		return notPrefix(node.Negate) + string(node.Operator) + "(" + group + ")", nil

	default:
		return "", &UnrecognizedFilterError{Kind: filterKind(filter)}
	}
}

// compileChildren renders each child in nested form and joins them
// with commas, preserving order.
func compileChildren(children []ast.Filter) (string, error) {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		fragment, err := compileFilter(child)
		if err != nil {
			return "", err
		}
		parts = append(parts, fragment)
	}
	return strings.Join(parts, ","), nil
}

// remapWildcards rewrites % to * in pattern-match values. The wire
// grammar reserves % for escapes and uses * as the literal-safe
// wildcard. Only like and ilike carry patterns; every other operator's
// value passes through untouched. Returns a new string - the caller's
// filter node is never written to.
func remapWildcards(operator, value string) string {
	if operator == "like" || operator == "ilike" {
		return strings.ReplaceAll(value, "%", "*")
	}
	return value
}

// notPrefix returns the negation prefix for a rendered fragment.
func notPrefix(negate bool) string {
	if negate {
		return "not."
	}
	return ""
}

// filterKind names a filter node for diagnostics.
func filterKind(filter ast.Filter) string {
	if filter == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", filter)
}
