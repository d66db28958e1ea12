// Package signer issues and verifies the opaque state parameter that protects
// the OAuth redirect flow against CSRF. Tokens are self-describing:
// nonceHex.issuedAtUnix.signatureHex, signed with HMAC-SHA256.
package signer

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/superblog/auth/internal/pkg/apperrors"
)

const nonceBytes = 16

// StateSigner creates and verifies signed state tokens. The clock is
// injectable so expiry windows are testable.
type StateSigner struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewStateSigner creates a signer with the given secret and maximum state
// age. The secret should be at least 32 bytes.
func NewStateSigner(secret []byte, maxAge time.Duration) *StateSigner {
	return &StateSigner{
		secret: secret,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// WithClock overrides the signer clock. Intended for tests.
func (s *StateSigner) WithClock(now func() time.Time) *StateSigner {
	s.now = now
	return s
}

// CreateState generates a fresh signed state token and returns it together
// with the nonce, which callers use as the single-use record key.
func (s *StateSigner) CreateState() (state string, nonce string, err error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	nonce = hex.EncodeToString(buf)

	payload := fmt.Sprintf("%s.%d", nonce, s.now().Unix())
	return payload + "." + s.sign(payload), nonce, nil
}

// Verify checks the token signature and age and returns the nonce. The
// signature comparison is constant-time; expiry is evaluated against the
// server clock at verification time.
func (s *StateSigner) Verify(state string) (string, error) {
	parts := strings.Split(state, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed state: %w", apperrors.ErrCSRF)
	}

	nonce, issuedAtRaw, sig := parts[0], parts[1], parts[2]
	if len(nonce) != nonceBytes*2 {
		return "", fmt.Errorf("malformed nonce: %w", apperrors.ErrCSRF)
	}
	if _, err := hex.DecodeString(nonce); err != nil {
		return "", fmt.Errorf("malformed nonce: %w", apperrors.ErrCSRF)
	}

	payload := nonce + "." + issuedAtRaw
	expected := s.sign(payload)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return "", fmt.Errorf("signature mismatch: %w", apperrors.ErrCSRF)
	}

	issuedAt, err := strconv.ParseInt(issuedAtRaw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed timestamp: %w", apperrors.ErrCSRF)
	}

	age := s.now().Sub(time.Unix(issuedAt, 0))
	if age > s.maxAge || age < -time.Minute {
		return "", fmt.Errorf("state age %s exceeds window: %w", age, apperrors.ErrExpired)
	}

	return nonce, nil
}

// MaxAge returns the configured replay window
func (s *StateSigner) MaxAge() time.Duration {
	return s.maxAge
}

func (s *StateSigner) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
