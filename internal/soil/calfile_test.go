package soil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCalFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recal.ini")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeCalFile(t, `
[CL (Lean clay)]
intercept = 4250
slope = -29.4

[XX (Unknown)]
intercept = 1
`)
	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := tbl.Lookup(CL)
	if got.Intercept != 4250 || got.Slope != -29.4 {
		t.Errorf("override not applied: %+v", got)
	}
	if got.MoistureFactor != 1.3 {
		t.Errorf("moisture_factor should keep built-in value 1.3, got %v", got.MoistureFactor)
	}

	if sm := tbl.Lookup(SM); sm != Lookup(SM) {
		t.Errorf("untouched class changed: %+v", sm)
	}
	if u := tbl.Lookup("XX (Unknown)"); u != Fallback {
		t.Errorf("unknown section must stay unknown, got %+v", u)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.ini")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNilTableFallsBack(t *testing.T) {
	var tbl *Table
	if got := tbl.Lookup(CL); got != Fallback {
		t.Errorf("nil table: got %+v, want fallback", got)
	}
}
