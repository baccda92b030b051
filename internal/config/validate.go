package config

import (
	"fmt"
	"strings"

	"pgreplicate/internal/table"
)

// IssueSeverity represents the severity of a snapshot issue.
type IssueSeverity string

const (
	// SeverityError marks an entry that cannot be turned into a TableSchema.
	SeverityError IssueSeverity = "error"
	// SeverityWarning marks an entry that converts but looks suspicious.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding.
//
// Path is a dotted path into the snapshot (e.g. "tables[0].columns[2].type").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// HasErrors reports whether any issue has SeverityError.
func HasErrors(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidateSnapshot performs static checks over s. It does not mutate s.
func ValidateSnapshot(s Snapshot) []Issue {
	var issues []Issue
	seenIDs := make(map[uint32]int, len(s.Tables))

	for i, t := range s.Tables {
		path := fmt.Sprintf("tables[%d]", i)
		issues = append(issues, validateTable(path, t)...)

		if t.ID == 0 {
			continue
		}
		if prev, ok := seenIDs[t.ID]; ok {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path + ".id",
				Message:  fmt.Sprintf("table id %d already used by tables[%d]", t.ID, prev),
			})
			continue
		}
		seenIDs[t.ID] = i
	}
	return issues
}

func validateTable(path string, t Table) []Issue {
	var issues []Issue

	if strings.TrimSpace(t.Schema) == "" {
		issues = append(issues, Issue{SeverityError, path + ".schema", "schema must not be empty"})
	}
	if strings.TrimSpace(t.Name) == "" {
		issues = append(issues, Issue{SeverityError, path + ".name", "name must not be empty"})
	}
	if t.ID == 0 {
		issues = append(issues, Issue{SeverityError, path + ".id", "id must be a non-zero relation OID"})
	}
	if _, err := t.TableName().QuotedIdentifier(); err != nil {
		issues = append(issues, Issue{SeverityError, path, err.Error()})
	}
	if _, err := table.ParseReplicaIdentity(t.ReplicaIdentity); err != nil {
		issues = append(issues, Issue{SeverityError, path + ".replica_identity", err.Error()})
	}
	if len(t.Columns) == 0 {
		issues = append(issues, Issue{SeverityWarning, path + ".columns", "table has no columns; its rows cannot be identified"})
	}

	seen := make(map[string]bool, len(t.Columns))
	for j, c := range t.Columns {
		cpath := fmt.Sprintf("%s.columns[%d]", path, j)
		if c.Name == "" {
			issues = append(issues, Issue{SeverityError, cpath + ".name", "column name must not be empty"})
		} else if seen[c.Name] {
			issues = append(issues, Issue{SeverityError, cpath + ".name", fmt.Sprintf("duplicate column %q", c.Name)})
		}
		seen[c.Name] = true

		if c.TypeOID == 0 && strings.TrimSpace(c.Type) == "" {
			issues = append(issues, Issue{SeverityError, cpath + ".type", "type or type_oid is required"})
		} else if _, err := c.ColumnType(); err != nil {
			issues = append(issues, Issue{SeverityError, cpath + ".type", err.Error()})
		}

		// Primary key columns are NOT NULL in the catalog.
		if c.Primary && c.Nullable {
			issues = append(issues, Issue{SeverityWarning, cpath + ".nullable", "primary key column is marked nullable"})
		}
	}
	return issues
}
