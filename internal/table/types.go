package table

import (
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// TypeModifier refines a column type (precision/scale, length, ...). Its
// meaning depends on the type; this package does not interpret it.
type TypeModifier = int32

// Type tags a column with its source database type. It is independent of any
// driver representation: any OID can be carried, named or not.
type Type struct {
	OID  uint32 `json:"oid" yaml:"oid"`
	Name string `json:"name" yaml:"name"`
}

// Well-known Postgres types.
var (
	TypeBool        = Type{OID: pgtype.BoolOID, Name: "bool"}
	TypeInt2        = Type{OID: pgtype.Int2OID, Name: "int2"}
	TypeInt4        = Type{OID: pgtype.Int4OID, Name: "int4"}
	TypeInt8        = Type{OID: pgtype.Int8OID, Name: "int8"}
	TypeFloat4      = Type{OID: pgtype.Float4OID, Name: "float4"}
	TypeFloat8      = Type{OID: pgtype.Float8OID, Name: "float8"}
	TypeNumeric     = Type{OID: pgtype.NumericOID, Name: "numeric"}
	TypeText        = Type{OID: pgtype.TextOID, Name: "text"}
	TypeVarchar     = Type{OID: pgtype.VarcharOID, Name: "varchar"}
	TypeBPChar      = Type{OID: pgtype.BPCharOID, Name: "bpchar"}
	TypeBytea       = Type{OID: pgtype.ByteaOID, Name: "bytea"}
	TypeDate        = Type{OID: pgtype.DateOID, Name: "date"}
	TypeTime        = Type{OID: pgtype.TimeOID, Name: "time"}
	TypeTimestamp   = Type{OID: pgtype.TimestampOID, Name: "timestamp"}
	TypeTimestamptz = Type{OID: pgtype.TimestamptzOID, Name: "timestamptz"}
	TypeUUID        = Type{OID: pgtype.UUIDOID, Name: "uuid"}
	TypeJSON        = Type{OID: pgtype.JSONOID, Name: "json"}
	TypeJSONB       = Type{OID: pgtype.JSONBOID, Name: "jsonb"}
)

// typeRegistry resolves names and OIDs known to pgx. It is only read.
var typeRegistry = pgtype.NewMap()

// TypeForOID returns the Type for oid. OIDs pgx does not know (extensions,
// user-defined types) come back with an empty Name.
func TypeForOID(oid uint32) Type {
	if t, ok := typeRegistry.TypeForOID(oid); ok {
		return Type{OID: t.OID, Name: t.Name}
	}
	return Type{OID: oid}
}

// TypeForName looks up a type by its Postgres name (e.g. "int4", "_text").
func TypeForName(name string) (Type, bool) {
	t, ok := typeRegistry.TypeForName(name)
	if !ok {
		return Type{}, false
	}
	return Type{OID: t.OID, Name: t.Name}, true
}

// String returns the type name, or "oid:<n>" when the type is unnamed.
func (t Type) String() string {
	if t.Name != "" {
		return t.Name
	}
	return "oid:" + strconv.FormatUint(uint64(t.OID), 10)
}
