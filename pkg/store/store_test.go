package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// exerciseStore runs the shared Store contract against an implementation.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}

	if err := s.Put(ctx, "notes/1", []byte("first")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, "notes/2", []byte("second")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, "other/x", []byte("y")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "notes/1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("Get = %q, want first", got)
	}

	// Overwrite.
	if err := s.Put(ctx, "notes/1", []byte("updated")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, _ = s.Get(ctx, "notes/1")
	if string(got) != "updated" {
		t.Errorf("Get after overwrite = %q, want updated", got)
	}

	keys, err := s.List(ctx, "notes/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"notes/1", "notes/2"}, keys); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	if err := s.Delete(ctx, "notes/1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "notes/1"); err != ErrNotFound {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}

	// Deleting an absent key is fine.
	if err := s.Delete(ctx, "notes/1"); err != nil {
		t.Errorf("repeat Delete err = %v, want nil", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	exerciseStore(t, s)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	val := []byte("abc")
	s.Put(ctx, "k", val)
	val[0] = 'z'

	got, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Error("store must not alias caller buffers")
	}
	got[0] = 'z'
	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Error("returned buffers must not alias stored data")
	}
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	if err := s.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want v", got)
	}
}
