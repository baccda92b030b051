// Package config defines the on-disk description of a catalog snapshot: the
// tables a loader has read from the source database, with their columns in
// physical order. Snapshots are decoded from JSON or YAML and converted into
// table.TableSchema values.
//
// Example (trimmed):
//
//	{
//	  "tables": [
//	    {
//	      "schema": "public", "name": "orders", "id": 16384,
//	      "replica_identity": "d",
//	      "columns": [
//	        { "name": "id", "type": "int8", "primary": true },
//	        { "name": "total", "type": "numeric", "modifier": 655366, "nullable": true }
//	      ]
//	    }
//	  ]
//	}
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pgreplicate/internal/table"
)

// Snapshot is the top-level object of a snapshot file.
type Snapshot struct {
	Tables []Table `json:"tables" yaml:"tables"`
}

// Table describes one source table.
type Table struct {
	// Schema and Name are the unquoted table name parts.
	Schema string `json:"schema" yaml:"schema"`
	Name   string `json:"name" yaml:"name"`

	// ID is the relation OID assigned by the source database.
	ID uint32 `json:"id" yaml:"id"`

	// ReplicaIdentity is the table's relreplident, either the catalog code
	// ("d", "f", "n", "i") or its name. Empty means default.
	ReplicaIdentity string `json:"replica_identity" yaml:"replica_identity"`

	// Columns in physical order.
	Columns []Column `json:"columns" yaml:"columns"`
}

// Column describes one column of a Table.
type Column struct {
	Name string `json:"name" yaml:"name"`

	// Type is a Postgres type name (e.g. "int4", "varchar"). TypeOID, when
	// non-zero, takes precedence and may name types pgx does not know.
	Type    string `json:"type" yaml:"type"`
	TypeOID uint32 `json:"type_oid" yaml:"type_oid"`

	Modifier int32 `json:"modifier" yaml:"modifier"`
	Nullable bool  `json:"nullable" yaml:"nullable"`
	Primary  bool  `json:"primary" yaml:"primary"`
}

// Load reads a snapshot file, choosing the decoder from its extension:
// .yaml/.yml are YAML, everything else is JSON.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return Decode(bytes.NewReader(data))
	}
}

// Decode reads a JSON snapshot from r. Unknown fields are rejected.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot json: %w", err)
	}
	return s, nil
}

// DecodeYAML parses a YAML snapshot. Unknown fields are rejected.
func DecodeYAML(data []byte) (Snapshot, error) {
	var s Snapshot
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot yaml: %w", err)
	}
	return s, nil
}

// ColumnType resolves the column's table.Type.
func (c Column) ColumnType() (table.Type, error) {
	if c.TypeOID != 0 {
		return table.TypeForOID(c.TypeOID), nil
	}
	t, ok := table.TypeForName(strings.TrimSpace(c.Type))
	if !ok {
		return table.Type{}, fmt.Errorf("column %s: unknown type %q", c.Name, c.Type)
	}
	return t, nil
}

// TableName returns the table's name parts as a table.TableName.
func (t Table) TableName() table.TableName {
	return table.TableName{Schema: t.Schema, Name: t.Name}
}

// TableSchema converts t into a table.TableSchema, keeping column order.
func (t Table) TableSchema() (table.TableSchema, error) {
	cols := make([]table.ColumnSchema, 0, len(t.Columns))
	for _, c := range t.Columns {
		typ, err := c.ColumnType()
		if err != nil {
			return table.TableSchema{}, fmt.Errorf("table %s: %w", t.TableName(), err)
		}
		cols = append(cols, table.ColumnSchema{
			Name:     c.Name,
			Type:     typ,
			Modifier: c.Modifier,
			Nullable: c.Nullable,
			Primary:  c.Primary,
		})
	}
	return table.TableSchema{
		TableName:     t.TableName(),
		TableID:       t.ID,
		ColumnSchemas: cols,
	}, nil
}
