package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errNoColumns = errors.New("querybuilder: select needs at least one column")
	errNoTable   = errors.New("querybuilder: select needs a table")
)

// sqlWriter accumulates the statement text and its bind arguments.
// arg registers a value and hands back its $n placeholder.
type sqlWriter struct {
	sql  strings.Builder
	args []any
}

func (w *sqlWriter) write(s string) {
	w.sql.WriteString(s)
}

func (w *sqlWriter) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

// Condition renders one WHERE predicate into the statement.
type Condition interface {
	render(w *sqlWriter)
}

type binary struct {
	column string
	op     string
	value  any
}

func (c binary) render(w *sqlWriter) {
	w.write(c.column)
	w.write(c.op)
	w.write(w.arg(c.value))
}

func Eq(column string, value any) Condition {
	return binary{column: column, op: " = ", value: value}
}

func Lte(column string, value any) Condition {
	return binary{column: column, op: " <= ", value: value}
}

type in struct {
	column string
	values []any
}

// In with no values matches nothing rather than erroring, so callers can
// pass filter sets straight through.
func In(column string, values []any) Condition {
	return in{column: column, values: values}
}

func (c in) render(w *sqlWriter) {
	if len(c.values) == 0 {
		w.write("1=0")
		return
	}

	w.write(c.column)
	w.write(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.arg(v))
	}
	w.write(")")
}

type isNull string

func IsNull(column string) Condition {
	return isNull(column)
}

func (c isNull) render(w *sqlWriter) {
	w.write(string(c))
	w.write(" IS NULL")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, errNoColumns
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errNoTable
	}

	w := &sqlWriter{args: make([]any, 0, len(b.where))}
	w.write("SELECT ")
	w.write(strings.Join(b.columns, ", "))
	w.write(" FROM ")
	w.write(b.table)

	for i, cond := range b.where {
		if i == 0 {
			w.write(" WHERE ")
		} else {
			w.write(" AND ")
		}
		cond.render(w)
	}

	if len(b.orderBy) > 0 {
		w.write(" ORDER BY ")
		w.write(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.write(" LIMIT ")
		w.write(strconv.Itoa(b.limit))
	}

	return w.sql.String(), w.args, nil
}
