package table

import (
	"fmt"
	"strings"
)

// ReplicaIdentity is the source table's setting for what it emits as the old
// row on UPDATE and DELETE (pg_class.relreplident).
type ReplicaIdentity string

const (
	// ReplicaIdentityDefault emits the primary key columns.
	ReplicaIdentityDefault ReplicaIdentity = "default"
	// ReplicaIdentityFull emits every column of the old row.
	ReplicaIdentityFull ReplicaIdentity = "full"
	// ReplicaIdentityNothing emits no old row information.
	ReplicaIdentityNothing ReplicaIdentity = "nothing"
	// ReplicaIdentityIndex emits the columns of a chosen unique index.
	ReplicaIdentityIndex ReplicaIdentity = "index"
)

// ParseReplicaIdentity accepts the catalog codes ("d", "f", "n", "i") as well
// as the spelled-out names, case-insensitively. An empty string means
// ReplicaIdentityDefault.
func ParseReplicaIdentity(s string) (ReplicaIdentity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "d", "default":
		return ReplicaIdentityDefault, nil
	case "f", "full":
		return ReplicaIdentityFull, nil
	case "n", "nothing":
		return ReplicaIdentityNothing, nil
	case "i", "index":
		return ReplicaIdentityIndex, nil
	default:
		return "", fmt.Errorf("unknown replica identity %q", s)
	}
}
