package wallet

import "fmt"

// UnsupportedChainError reports a chain identifier with no known wallet
// signing scheme.
type UnsupportedChainError struct {
	Chain string
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("unsupported chain: %q", e.Chain)
}

// HandshakeError reports a failed step of the credential exchange.
// Response holds the raw server reply when one was read.
type HandshakeError struct {
	Step     string
	Message  string
	Response []byte
	Err      error
}

func (e *HandshakeError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if len(e.Response) > 0 {
		return fmt.Sprintf("%s failed: %s: %s", e.Step, msg, e.Response)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, msg)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}
