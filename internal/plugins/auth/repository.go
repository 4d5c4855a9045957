package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore is the authoritative table of username -> user record.
// Seeded once at startup and never mutated by login traffic. Raw password
// comparison is deliberately not part of the contract: callers get a
// verify operation and nothing else.
type CredentialStore interface {
	// FindByUsername returns the record for the given username, or false
	// when no such user exists.
	FindByUsername(username string) (UserRecord, bool)

	// ListAll returns every record in declaration order.
	ListAll() []UserRecord

	// Verify reports whether the password matches the stored hash for the
	// given username. Unknown usernames verify as false.
	Verify(username, password string) bool
}

// demoUser pairs a seed record with its demo plaintext password. The
// plaintext exists only during seeding; the store keeps the bcrypt hash.
type demoUser struct {
	record   UserRecord
	password string
}

// demoUsers is the fixed demo table: three accounts, declaration order
// significant (ListAll preserves it).
var demoUsers = []demoUser{
	{
		password: "Password123",
		record: UserRecord{
			Username:      "john",
			Name:          "John Doe",
			Email:         "john@insurance.com",
			Phone:         "+1 (555) 123-4567",
			Address:       "123 Main St, New York, NY 10001",
			DateOfBirth:   "15-01-1990",
			InsuranceType: "Comprehensive",
			MemberSince:   "15-03-2022",
			Role:          RoleUser,
		},
	},
	{
		password: "Insurance123",
		record: UserRecord{
			Username:      "sunitha",
			Name:          "Sunitha",
			Email:         "sunitha@insurance.com",
			Phone:         "+1 (555) 987-6543",
			Address:       "456 Oak Avenue, San Francisco, CA 94102",
			DateOfBirth:   "18-12-1988",
			InsuranceType: "Premium",
			MemberSince:   "08-11-2021",
			Role:          RoleUser,
		},
	},
	{
		password: "Admin123",
		record: UserRecord{
			Username:      "admin",
			Name:          "Administrator",
			Email:         "admin@insurance.com",
			Phone:         "+1 (555) 246-8135",
			Address:       "789 Admin Plaza, Chicago, IL 60601",
			DateOfBirth:   "10-03-1982",
			InsuranceType: "Enterprise",
			MemberSince:   "20-06-2020",
			Role:          RoleAdmin,
		},
	},
}

// memoryStore is the in-memory CredentialStore. Read-only after seeding,
// so no locking is needed.
type memoryStore struct {
	order []string
	users map[string]UserRecord
}

// NewMemoryStore seeds the demo credential store, hashing each password
// with bcrypt at the given cost. Cost 12 is the production default.
func NewMemoryStore(bcryptCost int) (CredentialStore, error) {
	s := &memoryStore{
		users: make(map[string]UserRecord, len(demoUsers)),
	}
	for _, du := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing seed password for %q: %w", du.record.Username, err)
		}
		rec := du.record
		rec.PasswordHash = string(hash)
		s.users[rec.Username] = rec
		s.order = append(s.order, rec.Username)
	}
	return s, nil
}

func (s *memoryStore) FindByUsername(username string) (UserRecord, bool) {
	rec, ok := s.users[username]
	return rec, ok
}

func (s *memoryStore) ListAll() []UserRecord {
	out := make([]UserRecord, 0, len(s.order))
	for _, username := range s.order {
		out = append(out, s.users[username])
	}
	return out
}

func (s *memoryStore) Verify(username, password string) bool {
	rec, ok := s.users[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) == nil
}
