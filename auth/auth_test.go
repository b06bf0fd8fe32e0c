package auth

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testSeed = []byte("0123456789abcdef0123456789abcdef")

func TestNewSigner(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner()
	if err != nil {
		t.Fatalf("NewSigner() unexpected error: %v", err)
	}
	if len(signer.PublicKey()) != ed25519.PublicKeySize {
		t.Fatalf(
			"public key is %d bytes, want %d",
			len(signer.PublicKey()),
			ed25519.PublicKeySize,
		)
	}
	if len(signer.Seed()) != ed25519.SeedSize {
		t.Fatalf("seed is %d bytes, want %d", len(signer.Seed()), ed25519.SeedSize)
	}

	// Two signers must never share a keypair.
	other, err := NewSigner()
	if err != nil {
		t.Fatalf("NewSigner() unexpected error: %v", err)
	}
	if signer.PublicKey().Equal(other.PublicKey()) {
		t.Fatal("two fresh signers produced the same public key")
	}
}

func TestNewSignerFromSeed(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerFromSeed(testSeed)
	if err != nil {
		t.Fatalf("NewSignerFromSeed() unexpected error: %v", err)
	}

	// Same seed, same identity.
	again, err := NewSignerFromSeed(testSeed)
	if err != nil {
		t.Fatalf("NewSignerFromSeed() unexpected error: %v", err)
	}
	if !signer.PublicKey().Equal(again.PublicKey()) {
		t.Fatal("same seed produced different public keys")
	}
	if string(signer.Seed()) != string(testSeed) {
		t.Fatalf("Seed() = %x, want %x", signer.Seed(), testSeed)
	}
}

func TestNewSignerFromSeed_BadLength(t *testing.T) {
	t.Parallel()

	for _, seed := range [][]byte{nil, {0x01}, make([]byte, 64)} {
		if _, err := NewSignerFromSeed(seed); err == nil {
			t.Fatalf("NewSignerFromSeed(%d bytes) expected error, got nil", len(seed))
		}
	}
}

func TestSignatureHeaders_Verifies(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerFromSeed(testSeed)
	if err != nil {
		t.Fatalf("NewSignerFromSeed() unexpected error: %v", err)
	}

	bodies := []string{
		`{}`,
		`{"symbol":"BTC-USD","side":"buy","qty":"0.001"}`,
		`{"nested":{"a":[1,2,3]}}`,
	}

	for _, body := range bodies {
		headers := signer.SignatureHeaders(body, "session-1")

		// The server reconstructs this exact message from the headers and
		// the received body.
		message := headers[HeaderSignVersion] + "," +
			headers[HeaderRequestId] + "," +
			headers[HeaderTimestamp] + "," +
			body

		sig, err := base64.StdEncoding.DecodeString(headers[HeaderSignature])
		if err != nil {
			t.Fatalf("signature is not valid base64: %v", err)
		}
		if !ed25519.Verify(signer.PublicKey(), []byte(message), sig) {
			t.Fatalf("signature did not verify for body %s", body)
		}
	}
}

func TestSignatureHeaders_HeaderSet(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerFromSeed(testSeed)
	if err != nil {
		t.Fatalf("NewSignerFromSeed() unexpected error: %v", err)
	}

	before := time.Now().UnixMilli()
	headers := signer.SignatureHeaders(`{}`, "")
	after := time.Now().UnixMilli()

	if got := headers[HeaderSignVersion]; got != SIGNATURE_VERSION {
		t.Fatalf("%s = %q, want %q", HeaderSignVersion, got, SIGNATURE_VERSION)
	}
	if got := headers["Content-Type"]; got != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", got)
	}
	if _, err := uuid.Parse(headers[HeaderRequestId]); err != nil {
		t.Fatalf("%s = %q is not a UUID: %v", HeaderRequestId, headers[HeaderRequestId], err)
	}

	ts, err := strconv.ParseInt(headers[HeaderTimestamp], 10, 64)
	if err != nil {
		t.Fatalf("%s = %q is not an integer: %v", HeaderTimestamp, headers[HeaderTimestamp], err)
	}
	if ts < before || ts > after {
		t.Fatalf("timestamp %d outside call window [%d, %d]", ts, before, after)
	}

	if _, ok := headers[HeaderSessionId]; ok {
		t.Fatal("session header present without a session id")
	}
	if len(headers) != 5 {
		t.Fatalf("got %d headers, want 5: %v", len(headers), headers)
	}
}

func TestSignatureHeaders_SessionId(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerFromSeed(testSeed)
	if err != nil {
		t.Fatalf("NewSignerFromSeed() unexpected error: %v", err)
	}

	headers := signer.SignatureHeaders(`{}`, "sess-42")
	if got := headers[HeaderSessionId]; got != "sess-42" {
		t.Fatalf("%s = %q, want sess-42", HeaderSessionId, got)
	}
}

func TestSignatureHeaders_UniquePerCall(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerFromSeed(testSeed)
	if err != nil {
		t.Fatalf("NewSignerFromSeed() unexpected error: %v", err)
	}

	first := signer.SignatureHeaders(`{"a":1}`, "")
	second := signer.SignatureHeaders(`{"a":1}`, "")

	if first[HeaderRequestId] == second[HeaderRequestId] {
		t.Fatal("two calls produced the same request id")
	}
	// Same body, but the signed message embeds the request id, so the
	// signatures must differ too.
	if first[HeaderSignature] == second[HeaderSignature] {
		t.Fatal("two calls produced the same signature")
	}
}

func TestHMACSigner_Sign(t *testing.T) {
	t.Parallel()

	signer := NewHMACSigner("top-secret")
	params := `{"symbol":"BTC-USD","side":"buy"}`
	timestamp := "1700000000000"

	got := signer.Sign(params, timestamp)

	// Cross-check against a direct digest of params followed by timestamp.
	mac := hmac.New(sha256.New, []byte("top-secret"))
	mac.Write([]byte(params))
	mac.Write([]byte(timestamp))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Fatalf("Sign() = %q, want %q", got, want)
	}

	if signer.Sign(params, timestamp) != got {
		t.Fatal("same inputs produced different signatures")
	}
	if signer.Sign(params, "1700000000001") == got {
		t.Fatal("different timestamps produced the same signature")
	}
	if NewHMACSigner("other-secret").Sign(params, timestamp) == got {
		t.Fatal("different secrets produced the same signature")
	}
}
