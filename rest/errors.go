package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIError is a structured application-level failure reported by the
// server, either as a non-2xx status or as a non-zero code inside a 2xx
// body.
type APIError struct {
	Code      int64
	Message   string
	RequestId string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	return e.Message
}

// AuthenticationError is a 401 rejection of the bearer credential or the
// request signature.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// RequestError is a transport-level failure: network errors, timeouts and
// responses that are not valid JSON.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// envelope is the generic response wrapper shared by every endpoint.
// Code distinguishes absent from zero, Data distinguishes absent from
// null.
type envelope struct {
	Code      *int64          `json:"code"`
	Message   string          `json:"message"`
	RequestId string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

// handleResponse classifies a response and decodes the payload into
// result. Classification order: 401, other non-2xx, application error
// inside a 2xx, then unwrap.
func handleResponse(resp *resty.Response, result any) error {
	body := resp.Body()
	status := resp.StatusCode()

	if status == http.StatusUnauthorized {
		msg := "Authentication failed"
		var env envelope
		if err := json.Unmarshal(body, &env); err == nil {
			if env.Message != "" {
				msg = env.Message
			}
		} else if len(body) > 0 {
			msg = string(body)
		}
		return &AuthenticationError{Message: msg}
	}

	if resp.IsError() {
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return &RequestError{
				Message: fmt.Sprintf("request failed: %d - %s", status, body),
			}
		}

		msg := env.Message
		if msg == "" {
			msg = string(body)
		}
		code := int64(status)
		if env.Code != nil {
			code = *env.Code
		}
		// Validation failures carry structured detail worth keeping whole.
		if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
			msg = fmt.Sprintf("%s | Full response: %s", msg, body)
		}

		return &APIError{Code: code, Message: msg, RequestId: env.RequestId}
	}

	if !json.Valid(body) {
		return &RequestError{Message: "invalid JSON response"}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// Bare arrays and scalars pass through unchanged.
		return decode(body, result)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return decode(body, result)
	}

	// The server can signal an application failure inside a 200.
	if env.Code != nil && *env.Code != 0 {
		msg := env.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return &APIError{Code: *env.Code, Message: msg, RequestId: env.RequestId}
	}

	if env.Data != nil {
		return decode(env.Data, result)
	}

	return decode(body, result)
}

func decode(raw []byte, result any) error {
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return &RequestError{Message: "failed to decode response", Err: err}
	}
	return nil
}
