package table

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
)

// Quoter renders a single identifier part in a dialect's quoted form.
type Quoter interface {
	QuoteIdentifier(part string) (string, error)
}

// PostgresQuoter quotes identifiers the way Postgres expects: the part is
// wrapped in double quotes and embedded double quotes are doubled.
//
// Input that Postgres cannot store in an identifier (invalid UTF-8, NUL
// bytes) is rejected with ErrInvalidIdentifier rather than altered.
type PostgresQuoter struct{}

// QuoteIdentifier implements Quoter.
func (PostgresQuoter) QuoteIdentifier(part string) (string, error) {
	if !utf8.ValidString(part) {
		return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidIdentifier, part)
	}
	// pgx drops NUL bytes silently; refuse them instead.
	if strings.IndexByte(part, 0) >= 0 {
		return "", fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidIdentifier, part)
	}
	return pgx.Identifier{part}.Sanitize(), nil
}
