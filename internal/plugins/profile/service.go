package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/coverly/portal/internal/dateutil"
	"github.com/coverly/portal/internal/plugins/auth"
)

// profileKeyPrefix is the Redis key prefix for saved profiles, keyed by
// username. The value is the JSON-serialized profile, password redacted.
const profileKeyPrefix = "portal:userProfile:"

// ProfileService assembles and persists display-ready user profiles and
// serves the per-user statistics table.
type ProfileService interface {
	// Assemble produces a display-ready profile for the given session
	// identity: canned demo data merged under the identity, dates
	// normalized, avatar resolved. Unknown usernames get the generic
	// "Standard" profile.
	Assemble(ctx context.Context, username, nameHint, role string) UserProfile

	// StatsFor returns the fixed statistics record for the username, or
	// the default record for unknown usernames.
	StatsFor(username string) UserStats

	// SaveProfile persists an edited profile. The password slot is
	// redacted before the profile touches storage.
	SaveProfile(ctx context.Context, username string, p UserProfile) error

	// LoadProfile returns the saved profile for the username, or nil when
	// none exists. Malformed stored JSON is recovered locally: logged and
	// treated as "no profile", never propagated.
	LoadProfile(ctx context.Context, username string) (*UserProfile, error)

	// SaveImage, DeleteImage manage the uploaded profile image.
	SaveImage(ctx context.Context, username, data string) error
	DeleteImage(ctx context.Context, username string) error
}

// profileService implements ProfileService over the credential store's
// demo records, a Redis profile cache, and the avatar resolver chain.
type profileService struct {
	creds     auth.CredentialStore
	rdb       *redis.Client
	images    *ImageStore
	resolvers []AvatarResolver
}

// NewProfileService creates a profile service. The avatar chain is fixed:
// saved image first, generated avatar as the terminal fallback.
func NewProfileService(creds auth.CredentialStore, rdb *redis.Client) ProfileService {
	images := NewImageStore(rdb)
	return &profileService{
		creds:  creds,
		rdb:    rdb,
		images: images,
		resolvers: []AvatarResolver{
			&savedImageResolver{images: images},
			generatedAvatarResolver{},
		},
	}
}

func (s *profileService) Assemble(ctx context.Context, username, nameHint, role string) UserProfile {
	p := s.cannedProfile(username)

	if username == "" {
		p.Username = "unknown"
	}
	if nameHint != "" {
		p.Name = nameHint
	}
	if p.Name == "" {
		p.Name = "Unknown User"
	}
	if role != "" {
		p.Role = role
	}

	// Display form everywhere, whatever shape the canned data held.
	p.DateOfBirth = dateutil.ToDDMMYYYY(p.DateOfBirth)
	p.MemberSince = dateutil.ToDDMMYYYY(p.MemberSince)

	for _, r := range s.resolvers {
		if img, ok := r.Resolve(ctx, username, p.Name); ok {
			p.ProfileImage = img
			break
		}
	}

	p.Password = auth.HiddenPassword
	return p
}

// cannedProfile looks up the demo profile data for a username. Known users
// get their seeded record (credential stripped); unknown or empty
// usernames fall back to a generic "Standard" profile.
func (s *profileService) cannedProfile(username string) UserProfile {
	if username == "" {
		return UserProfile{
			Email:         "user@insurance.com",
			Phone:         "+1 (555) 000-0000",
			Address:       "Unknown Address",
			DateOfBirth:   "01-01-1980",
			InsuranceType: "Standard",
			MemberSince:   "01-01-2023",
			Role:          auth.RoleUser,
		}
	}

	if rec, ok := s.creds.FindByUsername(username); ok {
		u := rec.Sanitize()
		return UserProfile{
			Username:      u.Username,
			Name:          u.Name,
			Email:         u.Email,
			Phone:         u.Phone,
			Address:       u.Address,
			DateOfBirth:   u.DateOfBirth,
			InsuranceType: u.InsuranceType,
			MemberSince:   u.MemberSince,
			Role:          u.Role,
			ProfileImage:  u.ProfileImage,
		}
	}

	return UserProfile{
		Username:      username,
		Email:         username + "@insurance.com",
		Phone:         "+1 (555) 000-0000",
		Address:       "Standard Address",
		DateOfBirth:   "01-01-1980",
		InsuranceType: "Standard",
		MemberSince:   "01-01-2023",
		Role:          auth.RoleUser,
	}
}

func (s *profileService) StatsFor(username string) UserStats {
	switch username {
	case "john":
		return UserStats{ActivePolicies: 3, MonthlyPremium: 405, ClaimsFiled: 2, CoverageScore: 98}
	case "sunitha":
		return UserStats{ActivePolicies: 2, MonthlyPremium: 285, ClaimsFiled: 1, CoverageScore: 95}
	case "admin":
		return UserStats{ActivePolicies: 5, MonthlyPremium: 620, ClaimsFiled: 0, CoverageScore: 100}
	default:
		return UserStats{ActivePolicies: 1, MonthlyPremium: 150, ClaimsFiled: 0, CoverageScore: 90}
	}
}

func (s *profileService) SaveProfile(ctx context.Context, username string, p UserProfile) error {
	p.Password = auth.HiddenPassword

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := s.rdb.Set(ctx, profileKeyPrefix+username, data, 0).Err(); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

func (s *profileService) LoadProfile(ctx context.Context, username string) (*UserProfile, error) {
	data, err := s.rdb.Get(ctx, profileKeyPrefix+username).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	var p UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		// Corrupted stored JSON degrades to "no saved profile" rather
		// than failing the page.
		slog.Warn("discarding malformed saved profile",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return nil, nil
	}

	p.Password = auth.HiddenPassword
	return &p, nil
}

func (s *profileService) SaveImage(ctx context.Context, username, data string) error {
	return s.images.Save(ctx, username, data)
}

func (s *profileService) DeleteImage(ctx context.Context, username string) error {
	return s.images.Delete(ctx, username)
}
