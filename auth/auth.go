// Package auth implements request signing for the StandX API.
//
// Two signing schemes coexist and are deliberately kept as distinct
// types: Signer holds the session-scoped ed25519 keypair that signs REST
// request bodies, and HMACSigner implements the legacy shared-secret
// scheme used by order commands on the websocket API.
package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SIGNATURE_VERSION is the request signature scheme version.
const SIGNATURE_VERSION = "v1"

// Signed-request header names.
const (
	HeaderSignVersion = "x-request-sign-version"
	HeaderRequestId   = "x-request-id"
	HeaderTimestamp   = "x-request-timestamp"
	HeaderSignature   = "x-request-signature"
	HeaderSessionId   = "x-session-id"
)

// Signer produces per-request signature headers from a session-scoped
// ed25519 keypair. The keypair is independent of any wallet key: it is
// generated fresh per credential exchange and lives only in process
// memory. A Signer is immutable after construction and safe for
// concurrent use.
type Signer struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

// NewSigner creates a Signer with a freshly generated keypair.
func NewSigner() (*Signer, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing keypair: %w", err)
	}

	return &Signer{
		privateKey: privateKey,
		publicKey:  publicKey,
	}, nil
}

// NewSignerFromSeed creates a Signer from a 32-byte ed25519 seed.
func NewSignerFromSeed(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf(
			"signing seed must be %d bytes, got %d",
			ed25519.SeedSize,
			len(seed),
		)
	}

	privateKey := ed25519.NewKeyFromSeed(seed)

	return &Signer{
		privateKey: privateKey,
		publicKey:  privateKey.Public().(ed25519.PublicKey),
	}, nil
}

// PublicKey returns the raw public key bytes.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.publicKey
}

// Seed returns the 32-byte seed of the private key.
func (s *Signer) Seed() []byte {
	return s.privateKey.Seed()
}

// SignatureHeaders signs body and returns the header set for a signed
// request. body must be the exact JSON string sent on the wire: the
// server rebuilds "{version},{id},{timestamp},{body}" byte for byte and
// rejects any mismatch. The request id and timestamp are generated here,
// at call time, never reused.
func (s *Signer) SignatureHeaders(body string, sessionId string) map[string]string {
	requestId := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)

	message := SIGNATURE_VERSION + "," + requestId + "," + timestamp + "," + body
	sig := ed25519.Sign(s.privateKey, []byte(message))

	headers := map[string]string{
		HeaderSignVersion: SIGNATURE_VERSION,
		HeaderRequestId:   requestId,
		HeaderTimestamp:   timestamp,
		HeaderSignature:   base64.StdEncoding.EncodeToString(sig),
		"Content-Type":    "application/json",
	}

	if sessionId != "" {
		headers[HeaderSessionId] = sessionId
	}

	return headers
}
