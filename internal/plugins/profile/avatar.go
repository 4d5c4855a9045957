package profile

import (
	"context"
	"fmt"
	"net/url"

	"github.com/redis/go-redis/v9"
)

// imageKeyPrefix is the Redis key prefix for saved profile images, keyed
// by username. The value is a data-URI string.
const imageKeyPrefix = "portal:profileImage_"

// AvatarResolver is one strategy for finding a user's avatar. Resolvers
// are tried in order until one yields a value; the chain ends with a
// generated avatar so a display name always resolves to something.
type AvatarResolver interface {
	Resolve(ctx context.Context, username, displayName string) (string, bool)
}

// savedImageResolver returns the image previously uploaded for this
// username, if any.
type savedImageResolver struct {
	images *ImageStore
}

func (r *savedImageResolver) Resolve(ctx context.Context, username, _ string) (string, bool) {
	if username == "" {
		return "", false
	}
	img, err := r.images.Load(ctx, username)
	if err != nil || img == "" {
		return "", false
	}
	return img, true
}

// generatedAvatarResolver builds a remote avatar URL from the display
// name. Always succeeds when a name is present, terminating the chain.
type generatedAvatarResolver struct{}

func (generatedAvatarResolver) Resolve(_ context.Context, _, displayName string) (string, bool) {
	if displayName == "" {
		return "", false
	}
	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=667eea&color=fff&size=150",
		url.QueryEscape(displayName),
	), true
}

// ImageStore persists uploaded profile images (data-URI strings) in Redis,
// one key per username.
type ImageStore struct {
	rdb *redis.Client
}

// NewImageStore creates an image store over the given Redis client.
func NewImageStore(rdb *redis.Client) *ImageStore {
	return &ImageStore{rdb: rdb}
}

// Save stores the data-URI image for the username. No TTL: uploaded images
// survive until explicitly deleted, like the original local cache.
func (s *ImageStore) Save(ctx context.Context, username, data string) error {
	if err := s.rdb.Set(ctx, imageKeyPrefix+username, data, 0).Err(); err != nil {
		return fmt.Errorf("saving profile image: %w", err)
	}
	return nil
}

// Load returns the saved image for the username, or "" when none exists.
func (s *ImageStore) Load(ctx context.Context, username string) (string, error) {
	data, err := s.rdb.Get(ctx, imageKeyPrefix+username).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading profile image: %w", err)
	}
	return data, nil
}

// Delete removes the saved image for the username. Idempotent.
func (s *ImageStore) Delete(ctx context.Context, username string) error {
	if err := s.rdb.Del(ctx, imageKeyPrefix+username).Err(); err != nil {
		return fmt.Errorf("deleting profile image: %w", err)
	}
	return nil
}
