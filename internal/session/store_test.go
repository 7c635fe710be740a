package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// makeToken builds an unsigned JWT with the given claims. The store never
// verifies signatures, so an empty signature part is enough.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	encode := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	return encode(header) + "." + encode(claims) + "."
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "repfy", "session.json"))
}

func TestLoadMissingFile(t *testing.T) {
	store := testStore(t)
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Load() error = %v, want ErrNoSession", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := testStore(t)
	token := makeToken(t, map[string]any{
		"sub":  "u1",
		"role": "CLIENT",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	saved := &Session{
		Token:  token,
		UserID: "u1",
		Name:   "Ana",
		Email:  "ana@example.com",
		Role:   RoleClient,
	}
	if err := store.Save(saved); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Token != token || loaded.Name != "Ana" || loaded.Role != RoleClient {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.SavedAt.IsZero() {
		t.Error("SavedAt should be stamped on save")
	}
}

func TestSaveFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	store := testStore(t)
	token := makeToken(t, map[string]any{"sub": "u1", "role": "CLIENT"})
	if err := store.Save(&Session{Token: token}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("session file mode = %o, want 600", perm)
	}
}

func TestLoadExpiredSession(t *testing.T) {
	store := testStore(t)
	token := makeToken(t, map[string]any{
		"sub":  "u1",
		"role": "CLIENT",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	if err := store.Save(&Session{Token: token}); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Load() error = %v, want ErrSessionExpired", err)
	}
}

func TestClear(t *testing.T) {
	store := testStore(t)
	token := makeToken(t, map[string]any{"sub": "u1"})
	if err := store.Save(&Session{Token: token}); err != nil {
		t.Fatal(err)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Load() after Clear error = %v, want ErrNoSession", err)
	}

	// clearing twice is fine
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestSaveRejectsEmptySession(t *testing.T) {
	store := testStore(t)
	if err := store.Save(nil); err == nil {
		t.Error("Save(nil) should fail")
	}
	if err := store.Save(&Session{}); err == nil {
		t.Error("Save of tokenless session should fail")
	}
}

func TestFromToken(t *testing.T) {
	token := makeToken(t, map[string]any{
		"sub":  "u7",
		"role": "PROFESSIONAL",
		"name": "Bruno",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	sess, err := FromToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if sess.UserID != "u7" || sess.Role != RoleProfessional || sess.Name != "Bruno" {
		t.Errorf("session = %+v", sess)
	}
	if sess.Expired() {
		t.Error("future-dated token should not be expired")
	}
}

func TestFromTokenMalformed(t *testing.T) {
	if _, err := FromToken("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestExpiredWithoutExpClaim(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "u1", "role": "CLIENT"})
	sess, err := FromToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Expired() {
		t.Error("token without exp should never expire client-side")
	}
}
