package table

// TableID is the source system's stable identifier for a table (the Postgres
// relation OID).
type TableID = uint32

// ColumnSchema describes one column of a source table.
//
// Primary marks membership in the table's primary key. Primary columns are
// expected to be non-nullable; the loader guarantees that from the catalog,
// it is not checked here.
type ColumnSchema struct {
	Name     string       `json:"name" yaml:"name"`
	Type     Type         `json:"type" yaml:"type"`
	Modifier TypeModifier `json:"modifier" yaml:"modifier"`
	Nullable bool         `json:"nullable" yaml:"nullable"`
	Primary  bool         `json:"primary" yaml:"primary"`
}

// TableSchema is a snapshot of a table's identity and column layout. Columns
// are kept in physical order, which row decoders rely on.
type TableSchema struct {
	TableName     TableName      `json:"table_name" yaml:"table_name"`
	TableID       TableID        `json:"table_id" yaml:"table_id"`
	ColumnSchemas []ColumnSchema `json:"column_schemas" yaml:"column_schemas"`
}

// HasPrimaryKeys reports whether at least one column is part of the primary
// key.
func (s TableSchema) HasPrimaryKeys() bool {
	for _, c := range s.ColumnSchemas {
		if c.Primary {
			return true
		}
	}
	return false
}

// HasIdentifyingColumns reports whether rows of the table can be identified
// when changes are applied. A primary key identifies rows; without one, any
// table that has columns is still identifiable under replica identity full,
// where the whole old row is sent. Only a table with no columns is not.
func (s TableSchema) HasIdentifyingColumns() bool {
	return s.HasPrimaryKeys() || len(s.ColumnSchemas) > 0
}

// IdentifiableUnder reports whether rows can be identified when the source
// table uses the given replica identity. For ReplicaIdentityIndex the loader
// is expected to flag the replica index columns as Primary.
func (s TableSchema) IdentifiableUnder(ri ReplicaIdentity) bool {
	switch ri {
	case ReplicaIdentityDefault, ReplicaIdentityIndex:
		return s.HasPrimaryKeys()
	case ReplicaIdentityFull:
		return s.HasIdentifyingColumns()
	default:
		return false
	}
}

// PrimaryKeyColumns returns the primary-key columns in physical order. The
// returned slice is a copy.
func (s TableSchema) PrimaryKeyColumns() []ColumnSchema {
	var out []ColumnSchema
	for _, c := range s.ColumnSchemas {
		if c.Primary {
			out = append(out, c)
		}
	}
	return out
}

// Column returns the column with the given name.
func (s TableSchema) Column(name string) (ColumnSchema, bool) {
	for _, c := range s.ColumnSchemas {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSchema{}, false
}
