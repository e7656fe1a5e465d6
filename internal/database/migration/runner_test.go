package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_OrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/V10__add_index.sql": {Data: []byte("CREATE INDEX i ON t (c);")},
		"migrations/V2__alter.sql":      {Data: []byte("ALTER TABLE t ADD COLUMN c TEXT;")},
		"migrations/V1__init.sql":       {Data: []byte("CREATE TABLE t (id INT);")},
		"migrations/README.md":          {Data: []byte("not a migration")},
	}

	migs, err := loadMigrations(fsys, "migrations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}

	wantVersions := []int64{1, 2, 10}
	for i, m := range migs {
		if m.Version != wantVersions[i] {
			t.Fatalf("position %d: expected version %d, got %d", i, wantVersions[i], m.Version)
		}
	}
	if migs[0].Name != "init" {
		t.Fatalf("expected name parsed from filename, got %q", migs[0].Name)
	}
}

func TestLoadMigrations_ChecksumIsStable(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__init.sql": {Data: []byte("CREATE TABLE t (id INT);\n")},
	}

	first, err := loadMigrations(fsys, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := loadMigrations(fsys, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first[0].Checksum == "" || first[0].Checksum != second[0].Checksum {
		t.Fatalf("expected stable checksum, got %q vs %q", first[0].Checksum, second[0].Checksum)
	}
}

func TestLoadMigrations_RejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	}
	if _, err := loadMigrations(fsys, "."); err == nil {
		t.Fatal("expected duplicate version error")
	}
}

func TestLoadMigrations_RejectsEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__empty.sql": {Data: []byte("   \n")},
	}
	if _, err := loadMigrations(fsys, "."); err == nil {
		t.Fatal("expected empty migration error")
	}
}

func TestLoadMigrations_MissingDirIsEmpty(t *testing.T) {
	migs, err := loadMigrations(fstest.MapFS{}, "migrations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}
