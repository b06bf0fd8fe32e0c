package wallet

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/standx/go-standx/internal/utils"
)

// walletSigner signs the handshake challenge with the wallet's native
// scheme and derives the wallet address from the key.
type walletSigner interface {
	address() string
	signMessage(message string) (string, error)
}

type evmSigner struct {
	key *ecdsa.PrivateKey
}

func newEvmSigner(privateKey string) (*evmSigner, error) {
	key, err := crypto.HexToECDSA(utils.TrimHexPrefix(privateKey))
	if err != nil {
		return nil, fmt.Errorf("invalid wallet private key: %w", err)
	}

	return &evmSigner{key: key}, nil
}

func (s *evmSigner) address() string {
	return crypto.PubkeyToAddress(s.key.PublicKey).Hex()
}

// signMessage signs with the personal-message scheme: the challenge is
// prefixed and keccak-hashed before signing, and the recovery byte is
// shifted to the canonical 27/28 range.
func (s *evmSigner) signMessage(message string) (string, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), s.key)
	if err != nil {
		return "", err
	}
	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}

	return hexutil.Encode(sig), nil
}

type solanaSigner struct {
	key ed25519.PrivateKey
}

func newSolanaSigner(privateKey string) (*solanaSigner, error) {
	seed, err := utils.HexToSeed(utils.TrimHexPrefix(privateKey))
	if err != nil {
		return nil, fmt.Errorf("invalid wallet private key: %w", err)
	}

	return &solanaSigner{key: ed25519.NewKeyFromSeed(seed)}, nil
}

func (s *solanaSigner) address() string {
	return base58.Encode(s.key.Public().(ed25519.PublicKey))
}

func (s *solanaSigner) signMessage(message string) (string, error) {
	sig := ed25519.Sign(s.key, []byte(message))
	return base64.StdEncoding.EncodeToString(sig), nil
}
