package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNull            = "is_null"
	FilterIsNotNull         = "is_not_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// likeEscaper keeps user search text literal inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Filter is one predicate on a column. Values are always bound as named
// arguments; only Field and Table are interpolated and must come from code.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq not_eq like in less_eq greater_eq is_null is_not_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName != "" {
		return f.ArgName
	}

	return f.Field
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column := f.column()
	name := f.argName()

	if op, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = "%" + likeEscaper.Replace(fmt.Sprint(f.Value)) + "%"

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, name), args
	case FilterOperatorIn:
		return f.inClause(column, name, args)
	case FilterIsNull:
		return column + " IS NULL", args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	default:
		return "", args
	}
}

// inClause expands a slice into one named argument per element. An empty slice matches nothing.
func (f *Filter) inClause(column, name string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		args[name] = f.Value

		return fmt.Sprintf("%s = :%s", column, name), args
	}

	if val.Len() == 0 {
		return "FALSE", args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = val.Index(idx).Interface()
		named[idx] = ":" + key
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with Operator, AND by default.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	add := func(where string, arg map[string]any) {
		if where == "" {
			return
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			add(fill.GetWhereClause())
		case FilterGroup:
			add(fill.GetWhereClause())
		}
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+operator+" ")), args
}
