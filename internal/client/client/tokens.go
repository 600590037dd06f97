package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/filex"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

// Session is what the client remembers between invocations.
type Session struct {
	UserID           string    `json:"userId"`
	Role             string    `json:"role"`
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

func (s *Session) setTokens(t *pb.Tokens) {
	s.AccessToken = t.GetAccessToken()
	s.RefreshToken = t.GetRefreshToken()
	s.AccessExpiresAt = t.GetAccessExpiresAt().AsTime()
	s.RefreshExpiresAt = t.GetRefreshExpiresAt().AsTime()
}

// TokenStore persists a Session as JSON readable by the owner only.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (s *TokenStore) Path() string {
	return s.path
}

// Load returns ErrNotLoggedIn when no session has been saved.
func (s *TokenStore) Load() (*Session, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}
	if sess.RefreshToken == "" {
		return nil, ErrNotLoggedIn
	}
	return &sess, nil
}

func (s *TokenStore) Save(sess *Session) error {
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(s.path, b, 0o600)
}

// Clear forgets the session. A missing file is not an error.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
