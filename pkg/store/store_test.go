package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Both durable adapters must satisfy the same contract: round trips,
// overwrites, and ErrNotFound for missing keys.
func TestAdapterContract(t *testing.T) {
	adapters := []struct {
		name string
		open func(t *testing.T) KV
	}{
		{
			name: "file",
			open: func(t *testing.T) KV {
				kv, err := NewFileKV(t.TempDir())
				if err != nil {
					t.Fatalf("NewFileKV: %v", err)
				}
				return kv
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) KV {
				kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "kv.db"))
				if err != nil {
					t.Fatalf("NewSQLiteKV: %v", err)
				}
				t.Cleanup(func() { kv.Close() })
				return kv
			},
		},
		{
			name: "mem",
			open: func(t *testing.T) KV { return NewMemKV() },
		},
	}

	for _, a := range adapters {
		t.Run(a.name, func(t *testing.T) {
			kv := a.open(t)

			if _, err := kv.Load("history"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load on empty store = %v, want ErrNotFound", err)
			}

			blob := []byte(`{"milk":{"count":3}}`)
			if err := kv.Save("history", blob); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := kv.Load("history")
			if err != nil {
				t.Fatalf("Load after Save: %v", err)
			}
			if string(got) != string(blob) {
				t.Errorf("Load = %q, want %q", got, blob)
			}

			updated := []byte(`{"milk":{"count":4}}`)
			if err := kv.Save("history", updated); err != nil {
				t.Fatalf("Save overwrite: %v", err)
			}
			got, err = kv.Load("history")
			if err != nil {
				t.Fatalf("Load after overwrite: %v", err)
			}
			if string(got) != string(updated) {
				t.Errorf("Load after overwrite = %q, want %q", got, updated)
			}

			if _, err := kv.Load("learned"); !errors.Is(err, ErrNotFound) {
				t.Errorf("keys must be independent, Load(learned) = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestFileKVPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	if err := first.Save("history", []byte("persisted")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := second.Load("history")
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Load after reopen = %q", got)
	}
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	if err := kv.Save("history", []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file %q left behind after Save", e.Name())
		}
	}
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	first, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV: %v", err)
	}
	if err := first.Save("learned", []byte("persisted")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.Load("learned")
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Load after reopen = %q", got)
	}
}

func TestMemKVErrorInjection(t *testing.T) {
	boom := errors.New("boom")

	kv := NewMemKV()
	kv.LoadErr = boom
	if _, err := kv.Load("history"); !errors.Is(err, boom) {
		t.Errorf("Load with injected error = %v, want boom", err)
	}

	kv = NewMemKV()
	kv.SaveErr = boom
	if err := kv.Save("history", []byte("x")); !errors.Is(err, boom) {
		t.Errorf("Save with injected error = %v, want boom", err)
	}
	if len(kv.Data) != 0 {
		t.Error("failed Save must not store data")
	}
}
