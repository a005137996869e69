// Package apiclient is the typed HTTP client for the Xgen Cloud API.
// Authentication calls return a tagged Outcome instead of an error so
// callers present each variant distinctly.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// UserRecord is the server-supplied description of an authenticated user.
type UserRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Outcome is the tagged result of an authentication submission.
type Outcome interface {
	isOutcome()
}

// Authenticated carries the user and token from a successful submission.
type Authenticated struct {
	User  UserRecord
	Token string
}

// Rejected carries the server's detail message for a non-success status.
type Rejected struct {
	Detail string
}

// TimedOut reports that the request exceeded the configured timeout.
type TimedOut struct{}

// ConnectionFailed reports a transport failure or malformed response.
type ConnectionFailed struct {
	Err error
}

func (Authenticated) isOutcome()    {}
func (Rejected) isOutcome()         {}
func (TimedOut) isOutcome()         {}
func (ConnectionFailed) isOutcome() {}

// Client talks to the Xgen Cloud backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API origin, e.g. "http://localhost:8001". Required.
	BaseURL string
	// Timeout bounds each request. Zero means no client-imposed timeout.
	Timeout time.Duration
	// HTTPClient overrides the transport (useful for tests).
	HTTPClient *http.Client
}

// New constructs a Client. An empty BaseURL is a configuration error.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("api base URL is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{baseURL: base, http: httpClient}, nil
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login submits credentials to POST {base}/api/login.
func (c *Client) Login(ctx context.Context, email, password string) Outcome {
	return c.submit(ctx, "/api/login", loginBody{Email: email, Password: password})
}

// Register submits a new account to POST {base}/api/register.
func (c *Client) Register(ctx context.Context, name, email, password string) Outcome {
	return c.submit(ctx, "/api/register", registerBody{Name: name, Email: email, Password: password})
}

// authResponse covers both the success and failure body shapes.
type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        *UserRecord `json:"user"`
	Detail      string      `json:"detail"`
}

func (c *Client) submit(ctx context.Context, path string, body any) Outcome {
	payload, err := json.Marshal(body)
	if err != nil {
		return ConnectionFailed{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return ConnectionFailed{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return TimedOut{}
		}
		return ConnectionFailed{Err: err}
	}
	defer resp.Body.Close()

	var parsed authResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&parsed); decodeErr != nil {
		return ConnectionFailed{Err: fmt.Errorf("decode response: %w", decodeErr)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if parsed.User == nil {
			return ConnectionFailed{Err: errors.New("response missing user")}
		}
		return Authenticated{User: *parsed.User, Token: parsed.AccessToken}
	}

	detail := parsed.Detail
	if detail == "" {
		detail = "Request failed"
	}
	return Rejected{Detail: detail}
}

// PartnerRecord is one partner catalog entry.
type PartnerRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Industry         string `json:"industry"`
	PartnershipSince int    `json:"partnership_since"`
}

// Partners fetches the partner catalog from GET {base}/api/partners.
func (c *Client) Partners(ctx context.Context) ([]PartnerRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/partners", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("partners request returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Partners []PartnerRecord `json:"partners"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode partners: %w", err)
	}
	return parsed.Partners, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
