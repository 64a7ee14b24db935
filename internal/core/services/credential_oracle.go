package services

import (
	"log"

	"costtrack/internal/config"
	"costtrack/internal/pkg/password"
)

// CredentialOracle answers whether a username/password pair is valid.
// The production implementation will be a directory-service client;
// swapping it in must not touch the login flow or the throttle.
type CredentialOracle interface {
	Verify(username, plaintext string) bool
}

// staticOracle verifies against the single configured test identity.
// The password is bcrypt-hashed at construction so the plaintext never
// sits in memory past startup.
type staticOracle struct {
	username     string
	passwordHash string
}

// NewStaticOracle creates the stand-in oracle from config
func NewStaticOracle(cfg *config.Config) CredentialOracle {
	hash, err := password.Hash(cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatalf("❌ Failed to hash configured admin password: %v", err)
	}
	return &staticOracle{
		username:     cfg.Auth.AdminUsername,
		passwordHash: hash,
	}
}

// Verify checks the pair against the configured identity
func (o *staticOracle) Verify(username, plaintext string) bool {
	if username != o.username {
		return false
	}
	return password.Verify(plaintext, o.passwordHash)
}
