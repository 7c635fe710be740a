package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies the kind of account the stored token belongs to.
// The client only routes on this value; authorization is enforced server-side.
type Role string

const (
	RoleClient       Role = "CLIENT"
	RoleProfessional Role = "PROFESSIONAL"
	RoleAdmin        Role = "ADMIN"
)

// ErrNoSession is returned when no session has been stored yet.
var ErrNoSession = errors.New("no stored session")

// ErrSessionExpired is returned when the stored token is past its expiry claim.
var ErrSessionExpired = errors.New("stored session has expired")

// Session is the persisted authentication state: the bearer token plus a
// snapshot of the logged-in user taken at login time.
type Session struct {
	Token   string    `json:"token"`
	UserID  string    `json:"userId"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    Role      `json:"role"`
	SavedAt time.Time `json:"savedAt"`
}

// tokenClaims are the claims the client reads out of the access token.
// The token is parsed without signature verification: the server is the
// authority, the client only needs role and expiry for routing.
type tokenClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// FromToken builds a Session from a raw access token by decoding its claims.
// Used when a token is supplied via the environment rather than a login flow.
func FromToken(token string) (*Session, error) {
	claims, err := decodeClaims(token)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		Token:   token,
		Name:    claims.Name,
		Role:    Role(claims.Role),
		SavedAt: time.Now(),
	}
	if claims.Subject != "" {
		sess.UserID = claims.Subject
	}
	return sess, nil
}

// Expired reports whether the session token carries an exp claim in the past.
// Tokens without an exp claim never expire client-side.
func (s *Session) Expired() bool {
	claims, err := decodeClaims(s.Token)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}

func decodeClaims(token string) (*tokenClaims, error) {
	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode token claims: %w", err)
	}
	return &claims, nil
}

// Store persists the session as a JSON file under the user config dir.
type Store struct {
	path string
}

// NewStore creates a store rooted at the platform user config directory.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return NewStoreAt(filepath.Join(dir, "repfy", "session.json")), nil
}

// NewStoreAt creates a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored session. Returns ErrNoSession when nothing has been
// saved and ErrSessionExpired when the stored token is past its expiry.
func (s *Store) Load() (*Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if sess.Token == "" {
		return nil, ErrNoSession
	}
	if sess.Expired() {
		return nil, ErrSessionExpired
	}
	return &sess, nil
}

// Save persists the session, creating parent directories as needed.
// The file is written 0600: it holds a credential.
func (s *Store) Save(sess *Session) error {
	if sess == nil || sess.Token == "" {
		return errors.New("cannot save empty session")
	}
	if sess.SavedAt.IsZero() {
		sess.SavedAt = time.Now()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
