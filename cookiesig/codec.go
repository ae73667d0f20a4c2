// Package cookiesig implements the tamper-evident session cookie format:
// the session id and a keyed digest of it, joined by a single dot. Verifying
// a cookie needs no storage lookup; it only proves the id left this server
// unmodified, not that the session still exists.
package cookiesig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/campushub/portal/internal/errors"
)

type Codec struct {
	key []byte
}

func New(key string) *Codec {
	return &Codec{key: []byte(key)}
}

// Sign returns the hex-encoded HMAC-SHA256 of the session id.
func (c *Codec) Sign(sessionID string) string {
	return c.hmacHex(sessionID)
}

// Encode produces the cookie value "<sessionID>.<signature>". The id must not
// contain a dot, which holds for hex and UUID forms.
func (c *Codec) Encode(sessionID string) string {
	return sessionID + "." + c.Sign(sessionID)
}

// Verify checks a cookie value and returns the session id it carries.
// A value with no dot, an empty half, or a digest mismatch is rejected.
func (c *Codec) Verify(cookieValue string) (string, error) {
	id, sig, found := strings.Cut(cookieValue, ".")
	if !found || id == "" || sig == "" {
		return "", errors.ErrMalformedCookie
	}
	expected := c.hmacHex(id)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", errors.ErrBadSignature
	}
	return id, nil
}

// SessionIDFromCookie extracts the id half without verifying the signature.
// Only the logout path uses this: the worst a forged value can do there is
// delete a session that does not exist.
func SessionIDFromCookie(cookieValue string) string {
	id, _, _ := strings.Cut(cookieValue, ".")
	return id
}

// UAHash computes the keyed fingerprint of a User-Agent header, bound to the
// same key as the cookie signatures.
func (c *Codec) UAHash(userAgent string) string {
	return c.hmacHex(userAgent)
}

func (c *Codec) hmacHex(data string) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
