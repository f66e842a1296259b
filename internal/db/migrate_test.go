package db

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_profiles.sql":           {Data: []byte("CREATE TABLE profiles (id TEXT);\n")},
		"0001_record_collections.sql": {Data: []byte("  CREATE TABLE record_collections (key TEXT);  ")},
		"0003_blank.sql":              {Data: []byte("\n\n")},
		"README.md":                   {Data: []byte("not sql")},
		"old/0000_legacy.sql":         {Data: []byte("SELECT 1;")},
	}

	got, err := LoadMigrations(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 migrations, got %+v", got)
	}
	if got[0].Name != "0001_record_collections.sql" || got[1].Name != "0002_profiles.sql" {
		t.Fatalf("unexpected order %+v", got)
	}
	if got[0].SQL != "CREATE TABLE record_collections (key TEXT);" {
		t.Fatalf("sql must be trimmed, got %q", got[0].SQL)
	}
}

func TestPending(t *testing.T) {
	all := []Migration{{Name: "0001.sql"}, {Name: "0002.sql"}, {Name: "0003.sql"}}

	got := Pending(all, []string{"0002.sql", "0099.sql"})
	if len(got) != 2 || got[0].Name != "0001.sql" || got[1].Name != "0003.sql" {
		t.Fatalf("unexpected pending %+v", got)
	}
	if rest := Pending(all, []string{"0001.sql", "0002.sql", "0003.sql"}); len(rest) != 0 {
		t.Fatalf("nothing should be pending, got %+v", rest)
	}
}
