package querybuilder

import (
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause with $n placeholders.
type Condition interface {
	appendSQL(w *sqlWriter)
}

type sqlWriter struct {
	buf  strings.Builder
	args []any
	next int
}

func newSQLWriter() *sqlWriter {
	return &sqlWriter{next: 1}
}

func (w *sqlWriter) bind(value any) {
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(w.next))
	w.args = append(w.args, value)
	w.next++
}

// expand replaces each "?" in expr with the next placeholder.
func (w *sqlWriter) expand(expr string, exprArgs []any) {
	used := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && used < len(exprArgs) {
			w.bind(exprArgs[used])
			used++
			continue
		}
		w.buf.WriteByte(expr[i])
	}
}

func (w *sqlWriter) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.buf.WriteString(" WHERE ")
		} else {
			w.buf.WriteString(" AND ")
		}
		c.appendSQL(w)
	}
}

func (w *sqlWriter) suffix(sql string) {
	if sql == "" {
		return
	}
	w.buf.WriteString(" ")
	w.buf.WriteString(sql)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(w *sqlWriter) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" = ")
	w.bind(c.value)
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw predicate; "?" marks bound arguments.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(w *sqlWriter) {
	w.expand(c.expr, c.args)
}
