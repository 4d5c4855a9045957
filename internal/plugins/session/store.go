// Package session owns the persisted record of "who is currently logged
// in", independent from any single login request. Each client's session is
// a four-field record (authenticated flag, username, display name, role)
// stored in one Redis hash keyed by a random token, so the four values are
// always written and removed together: no reader can ever observe
// authenticated=true with an absent username.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logical field names of the session record. These mirror the storage keys
// the portal clients historically used.
const (
	fieldAuthenticated = "isAuthenticated"
	fieldUsername      = "username"
	fieldUserName      = "userName"
	fieldUserRole      = "userRole"
)

// sessionKeyPrefix is the Redis key prefix for session hashes.
const sessionKeyPrefix = "portal:session:"

// sessionTokenBytes is the number of random bytes in a session token.
// 32 bytes = 256 bits of entropy, hex-encoded to 64 characters.
const sessionTokenBytes = 32

// Record is the current identity as read back from the store. The zero
// value is the unauthenticated sentinel.
type Record struct {
	Authenticated bool   `json:"isAuthenticated"`
	Username      string `json:"username"`
	Name          string `json:"name"`
	Role          string `json:"role"`
}

// Identity is what gets committed at login: the sanitized user fields the
// session record carries.
type Identity struct {
	Username string
	Name     string
	Role     string
}

// Store is the sole owner of current-identity state. Commit and Clear are
// the only mutations; no other component may touch the medium directly.
type Store interface {
	// Commit writes the session record for the given token. The
	// authenticated flag and the identity fields land together.
	Commit(ctx context.Context, token string, id Identity) error

	// Clear removes the whole record. Idempotent: clearing an absent
	// session leaves the same empty state.
	Clear(ctx context.Context, token string) error

	// Current reads the record for the token. A missing record, or one
	// whose flag is not the literal "true", comes back as the
	// unauthenticated sentinel with a nil error.
	Current(ctx context.Context, token string) (Record, error)
}

// redisStore implements Store on a Redis hash per token.
type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a session store with the given session TTL.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) Commit(ctx context.Context, token string, id Identity) error {
	key := sessionKeyPrefix + token

	// HSet of all four fields is a single command, so a concurrent reader
	// sees either the whole record or nothing.
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key,
		fieldAuthenticated, "true",
		fieldUsername, id.Username,
		fieldUserName, id.Name,
		fieldUserRole, id.Role,
	)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (s *redisStore) Current(ctx context.Context, token string) (Record, error) {
	fields, err := s.rdb.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return Record{}, fmt.Errorf("reading session: %w", err)
	}

	if fields[fieldAuthenticated] != "true" {
		return Record{}, nil
	}

	return Record{
		Authenticated: true,
		Username:      fields[fieldUsername],
		Name:          fields[fieldUserName],
		Role:          fields[fieldUserRole],
	}, nil
}

// NewToken creates a cryptographically random hex-encoded session token.
func NewToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
