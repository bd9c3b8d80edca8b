package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mindly/mindly-client/internal/types"
	"github.com/mindly/mindly-client/session"
)

func TestLoadMissingIsNil(t *testing.T) {
	store := session.NewStore(t.TempDir())
	sess, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil session, got %+v", sess)
	}
	if store.Token() != "" || store.Email() != "" {
		t.Fatal("missing session must yield empty token and email")
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := session.NewStore(t.TempDir())
	in := session.Session{
		Token: "tok-123",
		Email: "ana@mindly.com",
		Role:  types.RolePatient,
		Patient: &types.Patient{
			ID:    1,
			Name:  "Ana",
			Email: "ana@mindly.com",
			Phone: "(11) 99999-9999",
		},
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out == nil || out.Token != "tok-123" || out.Email != "ana@mindly.com" {
		t.Fatalf("round trip lost data: %+v", out)
	}
	if out.Patient == nil || out.Patient.Name != "Ana" {
		t.Fatalf("patient profile lost: %+v", out.Patient)
	}
	if store.Token() != "tok-123" {
		t.Fatalf("Token() = %q", store.Token())
	}
}

func TestCorruptFileBackedUpAndIgnored(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := session.NewStore(base)
	sess, err := store.Load()
	if err != nil {
		t.Fatalf("corrupt file must not error: %v", err)
	}
	if sess != nil {
		t.Fatalf("corrupt file must read as no session, got %+v", sess)
	}
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Fatalf("corrupt file should be backed up: %v", err)
	}
}

func TestClear(t *testing.T) {
	store := session.NewStore(t.TempDir())
	if err := store.Save(session.Session{Token: "t", Email: "e@x.com"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	sess, err := store.Load()
	if err != nil || sess != nil {
		t.Fatalf("session should be gone: %+v %v", sess, err)
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
