// Package filter compiles the data table's native column filter syntax.
//
// A filter is the text typed into a column's filter box: an optional
// operator followed by an operand, for example "contains QA", "> 2019",
// "= 'Computer Vision'" or "is blank". Without an operator, text columns
// use "contains" and every other column uses "=". Filters are compiled to
// expr programs and cached by source text.
package filter

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// Op is a filter operator.
type Op string

const (
	OpEq             Op = "="
	OpNe             Op = "!="
	OpLt             Op = "<"
	OpLe             Op = "<="
	OpGt             Op = ">"
	OpGe             Op = ">="
	OpContains       Op = "contains"
	OpDateStartsWith Op = "datestartswith"
	OpBlank          Op = "is blank"
	OpNonBlank       Op = "is nonblank"
)

// operatorTokens maps accepted spellings to operators, longest first so
// that prefixes do not shadow longer tokens.
var operatorTokens = []struct {
	token string
	op    Op
}{
	{"is nonblank", OpNonBlank},
	{"is blank", OpBlank},
	{"datestartswith", OpDateStartsWith},
	{"contains", OpContains},
	{"!=", OpNe},
	{"<=", OpLe},
	{">=", OpGe},
	{"=", OpEq},
	{"<", OpLt},
	{">", OpGt},
	{"eq", OpEq},
	{"ne", OpNe},
	{"le", OpLe},
	{"ge", OpGe},
	{"lt", OpLt},
	{"gt", OpGt},
}

// SyntaxError reports filter text that cannot be parsed.
type SyntaxError struct {
	Source string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Source, e.Reason)
}

// Filter is a compiled column filter. It is safe for concurrent use.
type Filter struct {
	Source  string
	Op      Op
	Operand any

	code    string
	program *vm.Program
}

// Code returns the expr source the filter was compiled to.
func (f *Filter) Code() string {
	return f.code
}

// Match reports whether a cell value passes the filter. Values that cannot
// be compared with the operand do not match.
func (f *Filter) Match(value any) bool {
	switch f.Op {
	case OpBlank:
		return models.IsBlank(value)
	case OpNonBlank:
		return !models.IsBlank(value)
	}
	if models.IsBlank(value) {
		return false
	}
	// Dates are compared in the form the table displays them.
	if t, ok := value.(time.Time); ok {
		value = models.FormatValue(t)
	}
	out, err := expr.Run(f.program, map[string]any{"v": value})
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

// Compiler compiles and caches filters.
type Compiler struct {
	caseInsensitive bool
	cache           sync.Map // column type + source → *Filter
}

// NewCompiler returns a Compiler. With caseInsensitive set, text
// comparisons ignore case.
func NewCompiler(caseInsensitive bool) *Compiler {
	return &Compiler{caseInsensitive: caseInsensitive}
}

// Compile parses src for a column of the given type. An empty src yields a
// nil Filter, which callers treat as "match everything".
func (c *Compiler) Compile(src string, colType models.ColumnType) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	key := string(colType) + "\x00" + src
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*Filter), nil
	}

	f, err := parse(src, colType)
	if err != nil {
		return nil, err
	}
	if f.Op != OpBlank && f.Op != OpNonBlank {
		f.code = generate(f.Op, f.Operand, c.caseInsensitive)
		program, err := expr.Compile(f.code, expr.AllowUndefinedVariables(), expr.AsBool())
		if err != nil {
			return nil, &SyntaxError{Source: src, Reason: err.Error()}
		}
		f.program = program
	}
	c.cache.Store(key, f)
	return f, nil
}

func parse(src string, colType models.ColumnType) (*Filter, error) {
	lower := strings.ToLower(src)
	op := Op("")
	rest := src
	for _, t := range operatorTokens {
		if !strings.HasPrefix(lower, t.token) {
			continue
		}
		after := src[len(t.token):]
		// Word operators need a separator: "equator" is not "eq" + "uator".
		if isWordToken(t.token) && after != "" && !unicode.IsSpace(rune(after[0])) {
			continue
		}
		op, rest = t.op, after
		break
	}
	if op == "" {
		op = OpEq
		if colType == models.ColumnText || colType == models.ColumnEmpty {
			op = OpContains
		}
	}

	rest = strings.TrimSpace(rest)
	f := &Filter{Source: src, Op: op}
	if op == OpBlank || op == OpNonBlank {
		if rest != "" {
			return nil, &SyntaxError{Source: src, Reason: "unexpected operand after " + string(op)}
		}
		return f, nil
	}
	if rest == "" {
		return nil, &SyntaxError{Source: src, Reason: "missing operand"}
	}
	operand, err := parseOperand(rest)
	if err != nil {
		return nil, &SyntaxError{Source: src, Reason: err.Error()}
	}
	if colType == models.ColumnDatetime {
		// "> 2020" compares the displayed date text, not a number.
		if _, isString := operand.(string); !isString {
			operand = rest
		}
	}
	f.Operand = operand
	return f, nil
}

func isWordToken(token string) bool {
	last := token[len(token)-1]
	return last >= 'a' && last <= 'z'
}

// parseOperand returns a string for quoted operands and a number for bare
// numeric ones.
func parseOperand(s string) (any, error) {
	if q := s[0]; q == '"' || q == '\'' || q == '`' {
		if len(s) < 2 || s[len(s)-1] != q {
			return nil, fmt.Errorf("unterminated quote")
		}
		body := s[1 : len(s)-1]
		if q == '"' {
			if unq, err := strconv.Unquote(s); err == nil {
				return unq, nil
			}
		}
		return body, nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return s, nil
}

// generate builds the expr source for op applied to the cell value v.
func generate(op Op, operand any, caseInsensitive bool) string {
	subject := "string(v)"
	var literal string
	switch x := operand.(type) {
	case int64:
		literal = strconv.FormatInt(x, 10)
		if op != OpContains && op != OpDateStartsWith {
			subject = "v"
		}
	case float64:
		literal = strconv.FormatFloat(x, 'f', -1, 64)
		if op != OpContains && op != OpDateStartsWith {
			subject = "v"
		}
	default:
		s := fmt.Sprint(x)
		if caseInsensitive {
			s = strings.ToLower(s)
			subject = "lower(string(v))"
		}
		literal = strconv.Quote(s)
	}
	if subject != "v" && (op == OpContains || op == OpDateStartsWith) {
		// Numbers are matched against their text form.
		if _, isString := operand.(string); !isString {
			literal = strconv.Quote(literal)
		}
	}

	switch op {
	case OpContains:
		return subject + " contains " + literal
	case OpDateStartsWith:
		return subject + " startsWith " + literal
	case OpEq:
		return subject + " == " + literal
	default:
		return subject + " " + string(op) + " " + literal
	}
}
