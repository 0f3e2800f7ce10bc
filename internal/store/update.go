package store

import (
	"strconv"
	"strings"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
)

// Placeholder renders the n-th (1-based) bind parameter for a SQL dialect.
type Placeholder func(n int) string

// Dollar renders Postgres style parameters: $1, $2, ...
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question renders MySQL/SQLite style parameters.
func Question(int) string { return "?" }

// UpdateBuilder accumulates the fields of a partial update.
//
// Values never appear in the rendered clause; only column names and
// placeholders do.
type UpdateBuilder struct {
	id, name, mail *string
}

// NewUpdate starts an empty partial update.
func NewUpdate() *UpdateBuilder { return &UpdateBuilder{} }

func (b *UpdateBuilder) WithID(id string) *UpdateBuilder {
	b.id = &id
	return b
}

func (b *UpdateBuilder) WithName(name string) *UpdateBuilder {
	b.name = &name
	return b
}

func (b *UpdateBuilder) WithMail(mail string) *UpdateBuilder {
	b.mail = &mail
	return b
}

// Finalize validates the accumulated fields and renders the SET clause. It
// fails with UpdateSchemeError when no field was supplied.
func (b *UpdateBuilder) Finalize() (PartialUpdate, error) {
	upd := PartialUpdate{ID: b.id, Name: b.name, Mail: b.mail}
	for _, f := range []struct {
		column string
		value  *string
	}{
		{"id", b.id},
		{"name", b.name},
		{"mail", b.mail},
	} {
		if f.value != nil {
			upd.columns = append(upd.columns, f.column)
			upd.args = append(upd.args, *f.value)
		}
	}
	if len(upd.columns) == 0 {
		return PartialUpdate{}, errEmptyUpdate()
	}
	upd.clause = upd.Render(Dollar)
	return upd, nil
}

// PartialUpdate names the columns an update touches. It is built per
// request by UpdateBuilder and never persisted.
type PartialUpdate struct {
	ID   *string
	Name *string
	Mail *string

	columns []string
	args    []any
	clause  string
}

// Clause returns the rendered SET clause, e.g. "name = $1, mail = $2".
func (u PartialUpdate) Clause() string { return u.clause }

// Args returns the bind values in clause order.
func (u PartialUpdate) Args() []any {
	return append([]any(nil), u.args...)
}

// Columns returns the touched column names in clause order.
func (u PartialUpdate) Columns() []string {
	return append([]string(nil), u.columns...)
}

// Render renders the SET clause with the given placeholder style.
func (u PartialUpdate) Render(ph Placeholder) string {
	parts := make([]string, len(u.columns))
	for i, col := range u.columns {
		parts[i] = col + " = " + ph(i+1)
	}
	return strings.Join(parts, ", ")
}

func errEmptyUpdate() error {
	return apperr.New(apperr.UpdateSchemeError, "no fields to update")
}

// Valid reports whether u came out of a successful Finalize.
func (u PartialUpdate) Valid() bool { return u.clause != "" }

// updateStatement returns the full UPDATE statement and its arguments, with
// the row id bound last.
func updateStatement(u PartialUpdate, ph Placeholder, id string) (string, []any) {
	query := "UPDATE users SET " + u.Render(ph) + " WHERE id = " + ph(len(u.columns)+1)
	return query, append(u.Args(), id)
}
