package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quizforge/backend/internal/store"
)

func newTestCredentialStore(t *testing.T) *store.CredentialStore {
	t.Helper()
	cs, err := store.NewCredentialStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open credential store: %v", err)
	}
	t.Cleanup(func() { cs.Close() })
	return cs
}

func TestCredentialStoreEmptyByDefault(t *testing.T) {
	cs := newTestCredentialStore(t)

	key, err := cs.APIKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "" {
		t.Errorf("expected empty key, got %q", key)
	}
}

func TestCredentialStoreSaveAndOverwrite(t *testing.T) {
	cs := newTestCredentialStore(t)
	ctx := context.Background()

	if err := cs.SaveAPIKey(ctx, "sk-first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cs.SaveAPIKey(ctx, "sk-second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key, err := cs.APIKey(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "sk-second" {
		t.Errorf("expected overwritten key, got %q", key)
	}
}

func TestCredentialStoreDelete(t *testing.T) {
	cs := newTestCredentialStore(t)
	ctx := context.Background()

	cs.SaveAPIKey(ctx, "sk-temp")
	if err := cs.DeleteAPIKey(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key, err := cs.APIKey(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "" {
		t.Errorf("expected key gone after delete, got %q", key)
	}
}
