package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// HMACSigner signs order commands on the websocket API with a shared API
// secret. This legacy scheme is independent of the ed25519 request
// signer; the two must never stand in for each other.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner creates an HMACSigner from the API secret.
func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

// Sign signs the concatenation of params and timestamp and returns the
// base64-encoded HMAC-SHA256 digest.
func (h *HMACSigner) Sign(params string, timestamp string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(params + timestamp))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
