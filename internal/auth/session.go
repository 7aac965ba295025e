// Package auth talks to the stats backend's account endpoints and keeps the
// resulting session (token plus user profile) in the key-value store.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/nba-stats-viewer/internal/kvstore"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
)

// Storage keys for the persisted session.
const (
	TokenKey = "authToken"
	UserKey  = "user"
)

// User is the profile returned by the backend on login, signup and verify.
// The object is kept exactly as received so profile keys not modeled here
// survive a round trip through the session store.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string

	raw json.RawMessage
}

// UnmarshalJSON keeps the raw profile and picks out the known keys. The id
// may be a string or a number; mistyped fields read as "".
func (u *User) UnmarshalJSON(data []byte) error {
	*u = User{raw: append(json.RawMessage(nil), bytes.TrimSpace(data)...)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	u.ID = stringField(fields["id"])
	u.FirstName = stringField(fields["first_name"])
	u.LastName = stringField(fields["last_name"])
	u.Email = stringField(fields["email"])
	return nil
}

// MarshalJSON writes the profile as received, or the known keys for a User
// built in code.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.raw) > 0 {
		return u.raw, nil
	}
	return json.Marshal(map[string]string{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	})
}

func stringField(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return ""
	}
	return n.String()
}

// Session reads and writes the persisted token and user as a pair.
type Session struct {
	kv     kvstore.Store
	logger *slog.Logger
}

// NewSession constructs a Session over kv.
func NewSession(kv kvstore.Store, logger *slog.Logger) *Session {
	return &Session{kv: kv, logger: logger}
}

// Token returns the stored bearer token, or "" when signed out.
func (s *Session) Token(ctx context.Context) string {
	raw, err := s.kv.Get(ctx, TokenKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			logging.Warn(s.logger, "auth token unreadable", "error", err)
		}
		return ""
	}
	return string(raw)
}

// User returns the stored profile. Missing or corrupt data reads as nil.
func (s *Session) User(ctx context.Context) *User {
	raw, err := s.kv.Get(ctx, UserKey)
	if err != nil {
		return nil
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		logging.Warn(s.logger, "stored user corrupt, ignoring", "error", err)
		return nil
	}
	return &user
}

// IsAuthenticated reports whether a token is stored.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// Set stores token and user together.
func (s *Session) Set(ctx context.Context, token string, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.SetMany(ctx, map[string][]byte{
		TokenKey: []byte(token),
		UserKey:  data,
	})
}

// Clear removes token and user together.
func (s *Session) Clear(ctx context.Context) error {
	return s.kv.DeleteMany(ctx, TokenKey, UserKey)
}
