package session

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "credentials.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	token, err := store.Token(ctx)
	if err != nil {
		t.Fatalf("reading empty store: %v", err)
	}
	if token != "" {
		t.Fatalf("expected no token in a fresh store, got %q", token)
	}

	if err := store.Save(ctx, "first"); err != nil {
		t.Fatalf("saving token: %v", err)
	}
	if err := store.Save(ctx, "second"); err != nil {
		t.Fatalf("overwriting token: %v", err)
	}

	token, err = store.Token(ctx)
	if err != nil {
		t.Fatalf("reading token: %v", err)
	}
	if token != "second" {
		t.Fatalf("expected latest token, got %q", token)
	}
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Save(ctx, "tok"); err != nil {
		t.Fatalf("saving token: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clearing token: %v", err)
	}

	token, err := store.Token(ctx)
	if err != nil {
		t.Fatalf("reading cleared store: %v", err)
	}
	if token != "" {
		t.Fatalf("expected cleared token, got %q", token)
	}
}
