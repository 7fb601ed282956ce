// Package credentials hashes and verifies user passwords with PBKDF2-HMAC-SHA256.
//
// Two digest formats exist. Legacy digests are the bare hex key derived with a
// single salt shared by every user; they are deterministic and let existing
// rows keep authenticating. Salted digests carry their own random salt and
// iteration count:
//
//	pbkdf2_sha256$<iterations>$<base64 salt>$<hex key>
//
// A fixed shared salt allows one precomputed dictionary to attack every
// account at once, so salted digests are the default and legacy mode is only
// for bit-compatibility with an existing user table.
package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the floor applied to any configured iteration count.
	MinIterations = 100000
	// MaxIterations bounds both configured and stored iteration counts.
	MaxIterations = 2000000

	keyLength  = 32
	saltLength = 16
	prefix     = "pbkdf2_sha256"
)

// LegacySalt is the salt shared by all legacy digests.
var LegacySalt = []byte("money_records_salt_2024")

// Hasher produces and checks password digests.
type Hasher struct {
	legacy     bool
	iterations int
}

// NewHasher returns a hasher. When legacy is true Hash produces deterministic
// fixed-salt digests; otherwise every digest gets its own random salt.
func NewHasher(legacy bool, iterations int) *Hasher {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	if iterations > MaxIterations {
		iterations = MaxIterations
	}
	return &Hasher{legacy: legacy, iterations: iterations}
}

// Hash derives a digest for password.
func (h *Hasher) Hash(password string) (string, error) {
	if h.legacy {
		return hex.EncodeToString(derive(password, LegacySalt, MinIterations)), nil
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := derive(password, salt, h.iterations)
	return fmt.Sprintf("%s$%d$%s$%s", prefix, h.iterations,
		base64.StdEncoding.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// Verify recomputes the digest for password and compares it with stored.
// Both digest formats are accepted whatever mode the hasher is in.
func (h *Hasher) Verify(password, stored string) bool {
	if !strings.HasPrefix(stored, prefix+"$") {
		want, err := hex.DecodeString(stored)
		if err != nil || len(want) != keyLength {
			return false
		}
		return subtle.ConstantTimeCompare(derive(password, LegacySalt, MinIterations), want) == 1
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 4 {
		return false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 || iterations > MaxIterations {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	want, err := hex.DecodeString(parts[3])
	if err != nil || len(want) != keyLength {
		return false
	}

	return subtle.ConstantTimeCompare(derive(password, salt, iterations), want) == 1
}

func derive(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
}
