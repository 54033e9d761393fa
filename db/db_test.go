package db

import (
	"bytes"
	"path"
	"reflect"
	"testing"

	"github.com/spf13/afero"
	"github.com/yusan117/medtyping/config"
)

func testStore(t *testing.T, s CheckStore) {
	t.Helper()
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on empty store: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty store loaded %v", got)
	}

	want := map[string]bool{"heart": true, "blood pressure": true}
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}

	if err := s.Save(map[string]bool{"lung": true}); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Load()
	if !reflect.DeepEqual(got, map[string]bool{"lung": true}) {
		t.Errorf("Save() did not replace the set: %v", got)
	}
}

func TestBoltStore(t *testing.T) {
	s, err := NewBoltStore(path.Join(t.TempDir(), "medtyping.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestSQLStore(t *testing.T) {
	s, err := NewSQLStore(path.Join(t.TempDir(), "medtyping.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestFileStore(t *testing.T) {
	testStore(t, NewFileStore(afero.NewMemMapFs(), "/checked.json"))
}

func TestFileStoreCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/checked.json", []byte("{not json"), 0644)
	if _, err := NewFileStore(fs, "/checked.json").Load(); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestDecodeSetDropsFalse(t *testing.T) {
	set, err := decodeSet([]byte(`{"heart":true,"lung":false}`))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(set, map[string]bool{"heart": true}) {
		t.Errorf("decodeSet() = %v", set)
	}
}

func TestOpen(t *testing.T) {
	for _, backend := range []string{config.BackendBolt, config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.Config{StoragePath: t.TempDir(), Backend: backend}
			s, err := Open(cfg)
			if err != nil {
				t.Fatal(err)
			}
			defer s.Close()
			testStore(t, s)
		})
	}
	if _, err := Open(config.Config{StoragePath: t.TempDir(), Backend: "redis"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestCheckedList(t *testing.T) {
	var buf bytes.Buffer
	if err := CheckedList(&buf, []string{"lung", "heart"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "heart\nlung\n2 checked\n" {
		t.Errorf("CheckedList() = %q", got)
	}
}
