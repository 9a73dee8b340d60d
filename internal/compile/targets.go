package compile

import (
	"strings"

	"github.com/restq/restq/internal/ast"
)

// isBareWildcard reports whether the target list is exactly one plain
// "*" column - the default-select shorthand that suppresses the select
// parameter. An aliased or cast wildcard is not bare.
func isBareWildcard(targets []ast.Target) bool {
	if len(targets) != 1 {
		return false
	}
	col, ok := targets[0].(*ast.ColumnTarget)
	return ok && col.Column == "*" && col.Alias == "" && col.Cast == ""
}

// renderTargets renders the select parameter value: each target as
// [alias:]column[::cast], joined by commas in original order.
func renderTargets(targets []ast.Target) string {
	parts := make([]string, 0, len(targets))
	for _, target := range targets {
		switch t := target.(type) {
		case *ast.ColumnTarget:
			entry := t.Column
			if t.Alias != "" {
				entry = t.Alias + ":" + entry
			}
			if t.Cast != "" {
				entry += "::" + t.Cast
			}
			parts = append(parts, entry)
		}
	}
	return strings.Join(parts, ",")
}
