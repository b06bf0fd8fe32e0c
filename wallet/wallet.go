// Package wallet derives StandX session credentials from a blockchain
// wallet private key through the prepare-signin/login handshake.
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mr-tron/base58"
	"github.com/standx/go-standx/auth"
	"github.com/standx/go-standx/constants"
)

// DEFAULT_EXPIRES_SECONDS is the requested credential lifetime when none
// is configured: seven days.
const DEFAULT_EXPIRES_SECONDS = 604800

const defaultTimeout = 30 * time.Second

// Handshake step identifiers carried by HandshakeError.
const (
	StepPrepareSignin = "prepare-signin"
	StepChallenge     = "challenge"
	StepLogin         = "login"
)

type Config struct {
	// Chain selects the wallet signing scheme: "bsc", "ethereum" or
	// "solana".
	Chain string
	// PrivateKey is the wallet private key as a hex string ("0x"
	// optional). It never leaves the process; it signs the server
	// challenge once per handshake.
	PrivateKey string
	// Address is the wallet address. Derived from the key when empty.
	Address string
	// BaseUrl is the auth service origin
	// If none is provided, the mainnet url will be used
	BaseUrl string
	// ExpiresSeconds is the requested credential lifetime.
	// Defaults to DEFAULT_EXPIRES_SECONDS.
	ExpiresSeconds int64
	// Timeout bounds each handshake request. Defaults to 30s.
	Timeout time.Duration
}

// Authenticator runs the three-step handshake that turns a wallet key
// into a session credential and its bound signing keypair.
type Authenticator struct {
	chain   string
	signer  walletSigner
	address string
	baseUrl string
	expires int64
	timeout time.Duration
}

// Credentials is the output of one successful handshake. Signer is the
// keypair generated during that handshake; every signed request made
// under Token must use it. A new Login produces a brand-new pair.
type Credentials struct {
	Token   string
	Signer  *auth.Signer
	Address string
	Chain   string
}

// New creates an Authenticator with the provided configuration. The
// chain is validated here, before any network traffic.
func New(c Config) (*Authenticator, error) {
	var signer walletSigner
	var err error

	switch c.Chain {
	case "bsc", "ethereum":
		signer, err = newEvmSigner(c.PrivateKey)
	case "solana":
		signer, err = newSolanaSigner(c.PrivateKey)
	default:
		return nil, &UnsupportedChainError{Chain: c.Chain}
	}
	if err != nil {
		return nil, err
	}

	address := c.Address
	if address == "" {
		address = signer.address()
	}

	baseUrl := c.BaseUrl
	if baseUrl == "" {
		baseUrl = constants.AUTH_API_URL
	}

	expires := c.ExpiresSeconds
	if expires == 0 {
		expires = DEFAULT_EXPIRES_SECONDS
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Authenticator{
		chain:   c.Chain,
		signer:  signer,
		address: address,
		baseUrl: baseUrl,
		expires: expires,
		timeout: timeout,
	}, nil
}

// Address returns the wallet address the handshake authenticates.
func (a *Authenticator) Address() string {
	return a.address
}

// Chain returns the configured chain identifier.
func (a *Authenticator) Chain() string {
	return a.chain
}

// Login runs the full handshake and returns fresh credentials. Each call
// generates a new session keypair, asks the server for a challenge
// bound to it, signs the challenge with the wallet key, and trades the
// signature for a bearer token. Nothing is cached between calls.
func (a *Authenticator) Login(ctx context.Context) (*Credentials, error) {
	signer, err := auth.NewSigner()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session keypair: %w", err)
	}

	// The session public key travels as the request id, which is how the
	// server binds the issued token to this exact keypair.
	requestId := base58.Encode(signer.PublicKey())

	signedData, err := a.prepareSignin(ctx, requestId)
	if err != nil {
		return nil, err
	}

	message, err := challengeMessage(signedData)
	if err != nil {
		return nil, err
	}

	signature, err := a.signer.signMessage(message)
	if err != nil {
		return nil, fmt.Errorf("failed to sign challenge: %w", err)
	}

	token, err := a.login(ctx, signature, signedData)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		Token:   token,
		Signer:  signer,
		Address: a.address,
		Chain:   a.chain,
	}, nil
}

type prepareSigninRequest struct {
	Address   string `json:"address"`
	RequestId string `json:"requestId"`
}

type prepareSigninResponse struct {
	Success    bool   `json:"success"`
	SignedData string `json:"signedData"`
}

func (a *Authenticator) prepareSignin(
	ctx context.Context,
	requestId string,
) (string, error) {
	var result prepareSigninResponse

	resp, err := a.post(ctx, "/prepare-signin", prepareSigninRequest{
		Address:   a.address,
		RequestId: requestId,
	}, &result)
	if err != nil {
		return "", &HandshakeError{Step: StepPrepareSignin, Err: err}
	}
	if resp.IsError() || !result.Success {
		return "", &HandshakeError{
			Step:     StepPrepareSignin,
			Message:  "server rejected the signin request",
			Response: resp.Body(),
		}
	}

	return result.SignedData, nil
}

// challengeMessage extracts the challenge string from the payload
// segment of the signed-data blob. The blob's own signature is not
// checked here: the server re-validates the complete exchange on login.
func challengeMessage(signedData string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(signedData, claims); err != nil {
		return "", &HandshakeError{
			Step:    StepChallenge,
			Message: "malformed signed data",
			Err:     err,
		}
	}

	message, _ := claims["message"].(string)
	if message == "" {
		return "", &HandshakeError{
			Step:    StepChallenge,
			Message: "signed data carries no challenge message",
		}
	}

	return message, nil
}

type loginRequest struct {
	Signature      string `json:"signature"`
	SignedData     string `json:"signedData"`
	ExpiresSeconds int64  `json:"expiresSeconds"`
}

type loginResponse struct {
	Success     *bool  `json:"success"`
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	Jwt         string `json:"jwt"`
}

func (a *Authenticator) login(
	ctx context.Context,
	signature string,
	signedData string,
) (string, error) {
	var result loginResponse

	resp, err := a.post(ctx, "/login", loginRequest{
		Signature:      signature,
		SignedData:     signedData,
		ExpiresSeconds: a.expires,
	}, &result)
	if err != nil {
		return "", &HandshakeError{Step: StepLogin, Err: err}
	}
	if resp.IsError() {
		return "", &HandshakeError{
			Step:     StepLogin,
			Message:  "server rejected the login",
			Response: resp.Body(),
		}
	}

	// The token field name varies across deployments.
	token := result.Token
	if token == "" {
		token = result.AccessToken
	}
	if token == "" {
		token = result.Jwt
	}

	if token == "" {
		msg := "no token in response"
		if result.Success != nil && !*result.Success {
			msg = "server rejected the login"
		}
		return "", &HandshakeError{
			Step:     StepLogin,
			Message:  msg,
			Response: resp.Body(),
		}
	}

	return token, nil
}

func (a *Authenticator) post(
	ctx context.Context,
	path string,
	body any,
	result any,
) (*resty.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	return resty.
		New().
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("chain", a.chain).
		SetBody(body).
		SetResult(result).
		Post(a.baseUrl + path)
}
