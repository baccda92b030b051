// Package table models the metadata a logical-replication pipeline keeps for
// a source table: its qualified name, its ordered column definitions, and
// whether its rows can be uniquely identified when changes are applied.
//
// All types are immutable values. A TableSchema describes one snapshot of a
// table's shape; when the source table changes, the loader builds a new one.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIdentifier is returned when a name cannot be rendered (or parsed)
// as a quoted SQL identifier, e.g. because it is not valid UTF-8.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// TableName identifies a table within a database cluster.
type TableName struct {
	Schema string `json:"schema" yaml:"schema"`
	Name   string `json:"name" yaml:"name"`
}

// String returns "schema.name" without any quoting. It is meant for logs and
// diagnostics and must not be spliced into SQL; use QuotedIdentifier for that.
func (n TableName) String() string {
	return n.Schema + "." + n.Name
}

// QuotedIdentifier returns the name in Postgres identifier form, e.g.
//
//	TableName{"public", "orders"}   => `"public"."orders"`
//	TableName{`my"schema`, "Logs"}  => `"my""schema"."Logs"`
func (n TableName) QuotedIdentifier() (string, error) {
	return n.QuoteWith(PostgresQuoter{})
}

// QuoteWith quotes schema and name individually with q and joins them with a
// literal dot.
func (n TableName) QuoteWith(q Quoter) (string, error) {
	schema, err := q.QuoteIdentifier(n.Schema)
	if err != nil {
		return "", fmt.Errorf("table %s: schema: %w", n, err)
	}
	name, err := q.QuoteIdentifier(n.Name)
	if err != nil {
		return "", fmt.Errorf("table %s: name: %w", n, err)
	}
	return schema + "." + name, nil
}

// ParseQuotedIdentifier is the inverse of QuotedIdentifier: it accepts
// `"schema"."name"` (doubled quotes inside a part stand for one quote) and
// returns the unescaped parts.
func ParseQuotedIdentifier(s string) (TableName, error) {
	schema, rest, err := readQuotedPart(s)
	if err != nil {
		return TableName{}, err
	}
	if !strings.HasPrefix(rest, ".") {
		return TableName{}, fmt.Errorf("%w: expected '.' after schema in %q", ErrInvalidIdentifier, s)
	}
	name, rest, err := readQuotedPart(rest[1:])
	if err != nil {
		return TableName{}, err
	}
	if rest != "" {
		return TableName{}, fmt.Errorf("%w: trailing input %q", ErrInvalidIdentifier, rest)
	}
	return TableName{Schema: schema, Name: name}, nil
}

// readQuotedPart consumes one double-quoted identifier from the front of s and
// returns its unescaped value and the remaining input.
func readQuotedPart(s string) (string, string, error) {
	if !strings.HasPrefix(s, `"`) {
		return "", "", fmt.Errorf("%w: expected '\"' at %q", ErrInvalidIdentifier, s)
	}
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '"' {
			sb.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '"' {
			sb.WriteByte('"')
			i++
			continue
		}
		return sb.String(), s[i+1:], nil
	}
	return "", "", fmt.Errorf("%w: unterminated quoted identifier %q", ErrInvalidIdentifier, s)
}
