// Package revocation lays out blacklist entries and refresh records on top of
// a kvstore.Store.
//
// Key layout:
//
//	blacklist:<access token>                          -> "blacklisted"
//	refresh_token:<query-escaped user id>:<token>     -> {"userId": ..., "createdAt": ...}
package revocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/kvstore"
)

const (
	blacklistPrefix = "blacklist:"
	refreshPrefix   = "refresh_token:"
	blacklistValue  = "blacklisted"
)

// RefreshRecord is the value stored for every live refresh token.
type RefreshRecord struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Registry struct {
	store kvstore.Store
}

func NewRegistry(store kvstore.Store) *Registry {
	return &Registry{store: store}
}

func BlacklistKey(token string) string {
	return blacklistPrefix + token
}

// UserRefreshPrefix is the prefix shared by all refresh records of userID.
// The id is escaped so that no subject can be a prefix of another one.
func UserRefreshPrefix(userID string) string {
	return refreshPrefix + url.QueryEscape(userID) + ":"
}

func RefreshKey(userID, token string) string {
	return UserRefreshPrefix(userID) + token
}

// Blacklist marks an access token as revoked for ttl.
func (r *Registry) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	return r.store.Put(ctx, BlacklistKey(token), []byte(blacklistValue), ttl)
}

// IsBlacklisted reports whether a blacklist entry exists for token.
func (r *Registry) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	_, err := r.store.Get(ctx, BlacklistKey(token))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// TrackRefresh writes the record that makes token usable for rotation.
func (r *Registry) TrackRefresh(ctx context.Context, userID, token string, createdAt time.Time, ttl time.Duration) error {
	data, err := json.Marshal(RefreshRecord{UserID: userID, CreatedAt: createdAt.UTC()})
	if err != nil {
		return fmt.Errorf("marshal refresh record: %w", err)
	}
	return r.store.Put(ctx, RefreshKey(userID, token), data, ttl)
}

// ConsumeRefresh removes the record of token and reports whether it existed.
// Only one of several concurrent callers can get true.
func (r *Registry) ConsumeRefresh(ctx context.Context, userID, token string) (bool, error) {
	return r.store.DeleteIfExists(ctx, RefreshKey(userID, token))
}

// LookupRefresh returns the stored record of token.
func (r *Registry) LookupRefresh(ctx context.Context, userID, token string) (*RefreshRecord, error) {
	data, err := r.store.Get(ctx, RefreshKey(userID, token))
	if err != nil {
		return nil, err
	}
	var rec RefreshRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode refresh record: %w", err)
	}
	return &rec, nil
}

// RevokeRefresh deletes the record of token; absent records are fine.
func (r *Registry) RevokeRefresh(ctx context.Context, userID, token string) error {
	return r.store.Delete(ctx, RefreshKey(userID, token))
}

// RevokeAllRefresh deletes every refresh record of userID.
func (r *Registry) RevokeAllRefresh(ctx context.Context, userID string) (int, error) {
	return r.store.DeleteByPrefix(ctx, UserRefreshPrefix(userID))
}
