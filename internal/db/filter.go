package db

import "strings"

// Filter collects optional WHERE clauses together with their bind values.
// Values never reach the SQL text.
type Filter struct {
	clauses []string
	args    []any
}

// Add appends clause (with ? placeholders) and its args.
func (f *Filter) Add(clause string, args ...any) *Filter {
	f.clauses = append(f.clauses, clause)
	f.args = append(f.args, args...)
	return f
}

// AddIf appends clause only when value is non-empty after trimming.
func (f *Filter) AddIf(value, clause string) *Filter {
	if v := strings.TrimSpace(value); v != "" {
		f.Add(clause, v)
	}
	return f
}

// AddIfPositive appends clause only when value > 0.
func (f *Filter) AddIfPositive(value int64, clause string) *Filter {
	if value > 0 {
		f.Add(clause, value)
	}
	return f
}

// Where renders " WHERE a AND b" or "" when nothing was added.
func (f *Filter) Where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// And renders " AND a AND b" for queries that already have a WHERE.
func (f *Filter) And() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(f.clauses, " AND ")
}

func (f *Filter) Args() []any {
	out := make([]any, len(f.args))
	copy(out, f.args)
	return out
}
