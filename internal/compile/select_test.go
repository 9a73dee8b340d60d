package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restq/restq/internal/ast"
	"github.com/restq/restq/internal/wire"
)

func intp(n int) *int { return &n }

func TestCompile_BareWildcardSelect(t *testing.T) {
	req, err := Compile(&ast.Select{
		From:    "books",
		Targets: []ast.Target{&ast.ColumnTarget{Column: "*"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/books", req.Path)
	assert.Equal(t, 0, req.Params.Len())
	assert.Equal(t, "/books", req.FullPath())
}

func TestCompile_SelectParam(t *testing.T) {
	testCases := []struct {
		name    string
		targets []ast.Target
		want    string
	}{
		{
			name: "plain columns",
			targets: []ast.Target{
				&ast.ColumnTarget{Column: "title"},
				&ast.ColumnTarget{Column: "year"},
			},
			want: "title,year",
		},
		{
			name: "alias and cast",
			targets: []ast.Target{
				&ast.ColumnTarget{Column: "directed_by", Alias: "director"},
				&ast.ColumnTarget{Column: "year", Cast: "text"},
			},
			want: "director:directed_by,year::text",
		},
		{
			name: "wildcard among other targets is not suppressed",
			targets: []ast.Target{
				&ast.ColumnTarget{Column: "*"},
				&ast.ColumnTarget{Column: "title"},
			},
			want: "*,title",
		},
		{
			name: "aliased wildcard is not the bare shorthand",
			targets: []ast.Target{
				&ast.ColumnTarget{Column: "*", Alias: "everything"},
			},
			want: "everything:*",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := Compile(&ast.Select{From: "films", Targets: tc.targets})
			require.NoError(t, err)
			assert.Equal(t, []wire.Pair{{Key: "select", Value: tc.want}}, req.Params.Pairs())
		})
	}
}

func TestCompile_NoTargetsNoSelectParam(t *testing.T) {
	req, err := Compile(&ast.Select{From: "books"})
	require.NoError(t, err)
	assert.Equal(t, 0, req.Params.Len())
}

func TestCompile_Order(t *testing.T) {
	testCases := []struct {
		name  string
		sorts []ast.Sort
		want  string
	}{
		{
			name: "direction and bare column",
			sorts: []ast.Sort{
				{Column: "age", Direction: ast.Descending},
				{Column: "name"},
			},
			want: "age.desc,name",
		},
		{
			name: "nulls without direction",
			sorts: []ast.Sort{
				{Column: "age", Nulls: ast.NullsFirst},
			},
			want: "age.nullsfirst",
		},
		{
			name: "direction and nulls",
			sorts: []ast.Sort{
				{Column: "year", Direction: ast.Descending, Nulls: ast.NullsLast},
			},
			want: "year.desc.nullslast",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := Compile(&ast.Select{From: "people", Sorts: tc.sorts})
			require.NoError(t, err)
			assert.Equal(t, []wire.Pair{{Key: "order", Value: tc.want}}, req.Params.Pairs())
		})
	}
}

func TestCompile_NoSortsNoOrderParam(t *testing.T) {
	req, err := Compile(&ast.Select{From: "people", Sorts: []ast.Sort{}})
	require.NoError(t, err)
	assert.Equal(t, 0, req.Params.Len())
}

func TestCompile_LimitOffset(t *testing.T) {
	testCases := []struct {
		name  string
		limit *ast.Limit
		want  []wire.Pair
	}{
		{
			name:  "count only",
			limit: &ast.Limit{Count: intp(10)},
			want:  []wire.Pair{{Key: "limit", Value: "10"}},
		},
		{
			name:  "offset only",
			limit: &ast.Limit{Offset: intp(20)},
			want:  []wire.Pair{{Key: "offset", Value: "20"}},
		},
		{
			name:  "both",
			limit: &ast.Limit{Count: intp(10), Offset: intp(20)},
			want:  []wire.Pair{{Key: "limit", Value: "10"}, {Key: "offset", Value: "20"}},
		},
		{
			name:  "explicit zero is emitted",
			limit: &ast.Limit{Count: intp(0)},
			want:  []wire.Pair{{Key: "limit", Value: "0"}},
		},
		{
			name:  "neither",
			limit: &ast.Limit{},
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := Compile(&ast.Select{From: "books", Limit: tc.limit})
			require.NoError(t, err)
			if tc.want == nil {
				assert.Equal(t, 0, req.Params.Len())
				return
			}
			assert.Equal(t, tc.want, req.Params.Pairs())
		})
	}
}

// Canonical parameter order: select, filter parameters, order, limit,
// offset.
func TestCompile_ParameterOrder(t *testing.T) {
	req, err := Compile(&ast.Select{
		From: "films",
		Targets: []ast.Target{
			&ast.ColumnTarget{Column: "title"},
		},
		Filter: &ast.LogicalFilter{
			Operator: ast.LogicalAnd,
			Values: []ast.Filter{
				&ast.ColumnFilter{Column: "year", Operator: "gte", Value: "1975"},
				&ast.ColumnFilter{Column: "year", Operator: "lt", Value: "1980"},
			},
		},
		Sorts: []ast.Sort{{Column: "year", Direction: ast.Descending}},
		Limit: &ast.Limit{Count: intp(5), Offset: intp(10)},
	})
	require.NoError(t, err)

	assert.Equal(t, []wire.Pair{
		{Key: "select", Value: "title"},
		{Key: "year", Value: "gte.1975"},
		{Key: "year", Value: "lt.1980"},
		{Key: "order", Value: "year.desc"},
		{Key: "limit", Value: "5"},
		{Key: "offset", Value: "10"},
	}, req.Params.Pairs())
	assert.Equal(t,
		"/films?select=title&year=gte.1975&year=lt.1980&order=year.desc&limit=5&offset=10",
		req.FullPath())
}

func TestCompile_UnsupportedStatements(t *testing.T) {
	testCases := []struct {
		name string
		stmt ast.Statement
		kind string
	}{
		{name: "update", stmt: &ast.Update{From: "books"}, kind: "update"},
		{name: "insert", stmt: &ast.Insert{Into: "books"}, kind: "insert"},
		{name: "delete", stmt: &ast.Delete{From: "books"}, kind: "delete"},
		{name: "nil", stmt: nil, kind: "<nil>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := Compile(tc.stmt)
			require.Error(t, err)
			assert.Nil(t, req, "no partial output on defect")
			assert.True(t, IsUnsupportedStatement(err))
			assert.Contains(t, err.Error(), "UNSUPPORTED_STATEMENT")
			assert.Contains(t, err.Error(), tc.kind)
		})
	}
}

func TestCompile_FilterDefectReturnsNoRequest(t *testing.T) {
	req, err := Compile(&ast.Select{
		From: "books",
		Filter: &ast.LogicalFilter{
			Operator: ast.LogicalOr,
			Values:   []ast.Filter{nil},
		},
	})
	require.Error(t, err)
	assert.Nil(t, req)
	assert.True(t, IsUnrecognizedFilter(err))
	assert.False(t, IsUnsupportedStatement(err))
}
