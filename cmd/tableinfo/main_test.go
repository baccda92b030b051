package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSnapshot(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return p
}

const snapshotJSON = `{
  "tables": [
    {"schema": "public", "name": "orders", "id": 1,
     "columns": [{"name": "id", "type": "int8", "primary": true}, {"name": "total", "type": "numeric"}]},
    {"schema": "app", "name": "logs", "id": 2, "replica_identity": "f",
     "columns": [{"name": "ts", "type": "timestamptz"}, {"name": "msg", "type": "text"}]},
    {"schema": "my\"schema", "name": "t", "id": 3, "replica_identity": "d",
     "columns": [{"name": "v", "type": "text"}]}
  ]
}`

func TestRun_PrintsReport(t *testing.T) {
	t.Parallel()

	p := writeSnapshot(t, "snap.json", snapshotJSON)
	var out bytes.Buffer
	if err := run([]string{"-snapshot", p}, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out.String())
	}
	checks := []struct {
		line int
		want []string
	}{
		{1, []string{"public.orders", `"public"."orders"`, "true", "default"}},
		{2, []string{"app.logs", `"app"."logs"`, "false", "full", "true"}},
		{3, []string{`my"schema.t`, `"my""schema"."t"`, "default", "false"}},
	}
	for _, c := range checks {
		fields := strings.Fields(lines[c.line])
		for _, w := range c.want {
			if !contains(fields, w) {
				t.Errorf("line %d %q missing %q", c.line, lines[c.line], w)
			}
		}
	}
}

func contains(fields []string, s string) bool {
	for _, f := range fields {
		if f == s {
			return true
		}
	}
	return false
}

func TestRun_ValidationErrors(t *testing.T) {
	t.Parallel()

	p := writeSnapshot(t, "bad.yaml", "tables:\n  - schema: public\n    name: x\n    id: 0\n")
	err := run([]string{"-snapshot", p}, &bytes.Buffer{})
	if !errors.Is(err, errInvalidSnapshot) {
		t.Fatalf("err = %v, want errInvalidSnapshot", err)
	}
}

func TestRun_StrictWarnings(t *testing.T) {
	t.Parallel()

	p := writeSnapshot(t, "warn.yaml", "tables:\n  - schema: app\n    name: empty_tbl\n    id: 5\n")
	if err := run([]string{"-snapshot", p}, &bytes.Buffer{}); err != nil {
		t.Fatalf("non-strict run error: %v", err)
	}
	if err := run([]string{"-snapshot", p, "-strict"}, &bytes.Buffer{}); !errors.Is(err, errInvalidSnapshot) {
		t.Fatalf("strict err = %v, want errInvalidSnapshot", err)
	}
}

func TestRun_MissingSnapshotFlag(t *testing.T) {
	t.Parallel()

	if err := run(nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for missing -snapshot")
	}
}
