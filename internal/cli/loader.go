package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/restq/restq/internal/ast"
)

// Error codes reported by the loader and commands.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeParseFailed   = "E002" // Statement document failed to parse
	ErrCodeInvalidSpec   = "E003" // Document parsed but is not a valid statement
	ErrCodeBadFormat     = "E004" // Unrecognized file extension
	ErrCodeNotFound      = "E005" // Path not found
	ErrCodeWriteFailed   = "E006" // Output file write failed
	ErrCodeCompileFailed = "E007" // Statement rejected by the compiler
	ErrCodeRenderFailed  = "E008" // Renderer failed (bad base URL)
	ErrCodeInvalidFlag   = "E009" // Flag value out of range
)

// LoadError represents an error that occurred while loading a
// statement document.
type LoadError struct {
	Code    string
	Message string
	File    string // Source file if known
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// statementSpec is the on-disk shape of an already-parsed statement.
// The loader decodes a document into this intermediate form and then
// converts it to ast values; it does not parse any query language.
type statementSpec struct {
	Type    string       `json:"type" yaml:"type"`
	From    string       `json:"from" yaml:"from"`
	Targets []targetSpec `json:"targets" yaml:"targets"`
	Filter  *filterSpec  `json:"filter" yaml:"filter"`
	Sorts   []sortSpec   `json:"sorts" yaml:"sorts"`
	Limit   *limitSpec   `json:"limit" yaml:"limit"`
}

type targetSpec struct {
	Column string `json:"column" yaml:"column"`
	Alias  string `json:"alias" yaml:"alias"`
	Cast   string `json:"cast" yaml:"cast"`
}

type filterSpec struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Column   string       `json:"column" yaml:"column"`
	Operator string       `json:"operator" yaml:"operator"`
	Value    string       `json:"value" yaml:"value"`
	Negate   bool         `json:"negate" yaml:"negate"`
	Values   []filterSpec `json:"values" yaml:"values"`
}

type sortSpec struct {
	Column    string `json:"column" yaml:"column"`
	Direction string `json:"direction" yaml:"direction"`
	Nulls     string `json:"nulls" yaml:"nulls"`
}

type limitSpec struct {
	Count  *int `json:"count" yaml:"count"`
	Offset *int `json:"offset" yaml:"offset"`
}

// LoadStatement reads one statement document (.json, .yaml/.yml, or
// .cue) and converts it to an ast.Statement.
func LoadStatement(path string) (ast.Statement, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("statement file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading statement file: %v", err)}
	}

	var spec statementSpec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing JSON: %v", err), File: path}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing YAML: %v", err), File: path}
		}
	case ".cue":
		if err := decodeCUE(data, path, &spec); err != nil {
			return nil, err
		}
	default:
		return nil, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("unrecognized statement format %q (want .json, .yaml, or .cue)", ext), File: path}
	}

	return spec.toStatement(path)
}

// decodeCUE evaluates a CUE document and decodes it into spec.
func decodeCUE(data []byte, path string, spec *statementSpec) error {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("compiling CUE: %v", err), File: path}
	}
	if err := value.Decode(spec); err != nil {
		return &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("decoding CUE value: %v", err), File: path}
	}
	return nil
}

// toStatement converts the decoded document to an ast.Statement.
// Statement types the upstream grammar defines all convert; the
// compiler decides which of them it supports.
func (s *statementSpec) toStatement(file string) (ast.Statement, error) {
	if s.From == "" {
		return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: "statement has no from table", File: file}
	}

	switch s.Type {
	case "", "select":
		return s.toSelect(file)
	case "update":
		return &ast.Update{From: s.From}, nil
	case "insert":
		return &ast.Insert{Into: s.From}, nil
	case "delete":
		return &ast.Delete{From: s.From}, nil
	default:
		return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: fmt.Sprintf("unknown statement type %q", s.Type), File: file}
	}
}

func (s *statementSpec) toSelect(file string) (*ast.Select, error) {
	sel := &ast.Select{From: s.From}

	for _, t := range s.Targets {
		if t.Column == "" {
			return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: "target has no column", File: file}
		}
		sel.Targets = append(sel.Targets, &ast.ColumnTarget{
			Column: t.Column,
			Alias:  t.Alias,
			Cast:   t.Cast,
		})
	}

	if s.Filter != nil {
		filter, err := s.Filter.toFilter(file)
		if err != nil {
			return nil, err
		}
		sel.Filter = filter
	}

	for _, srt := range s.Sorts {
		sort, err := srt.toSort(file)
		if err != nil {
			return nil, err
		}
		sel.Sorts = append(sel.Sorts, sort)
	}

	if s.Limit != nil {
		sel.Limit = &ast.Limit{Count: s.Limit.Count, Offset: s.Limit.Offset}
	}

	return sel, nil
}

func (f *filterSpec) toFilter(file string) (ast.Filter, error) {
	switch f.Kind {
	case "column":
		if f.Column == "" || f.Operator == "" {
			return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: "column filter needs column and operator", File: file}
		}
		return &ast.ColumnFilter{
			Column:   f.Column,
			Operator: f.Operator,
			Value:    f.Value,
			Negate:   f.Negate,
		}, nil

	case "logical":
		op := ast.LogicalOp(f.Operator)
		if op != ast.LogicalAnd && op != ast.LogicalOr {
			return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: fmt.Sprintf("logical filter operator must be and/or, got %q", f.Operator), File: file}
		}
		if len(f.Values) == 0 {
			return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: "logical filter has no child filters", File: file}
		}
		children := make([]ast.Filter, 0, len(f.Values))
		for i := range f.Values {
			child, err := f.Values[i].toFilter(file)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return &ast.LogicalFilter{Operator: op, Values: children, Negate: f.Negate}, nil

	default:
		return nil, &LoadError{Code: ErrCodeInvalidSpec, Message: fmt.Sprintf("unknown filter kind %q", f.Kind), File: file}
	}
}

func (s *sortSpec) toSort(file string) (ast.Sort, error) {
	if s.Column == "" {
		return ast.Sort{}, &LoadError{Code: ErrCodeInvalidSpec, Message: "sort has no column", File: file}
	}
	sort := ast.Sort{Column: s.Column}

	switch s.Direction {
	case "":
	case "asc":
		sort.Direction = ast.Ascending
	case "desc":
		sort.Direction = ast.Descending
	default:
		return ast.Sort{}, &LoadError{Code: ErrCodeInvalidSpec, Message: fmt.Sprintf("sort direction must be asc/desc, got %q", s.Direction), File: file}
	}

	switch s.Nulls {
	case "":
	case "first":
		sort.Nulls = ast.NullsFirst
	case "last":
		sort.Nulls = ast.NullsLast
	default:
		return ast.Sort{}, &LoadError{Code: ErrCodeInvalidSpec, Message: fmt.Sprintf("sort nulls must be first/last, got %q", s.Nulls), File: file}
	}

	return sort, nil
}
