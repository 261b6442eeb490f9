package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"time"
)

// ErrTransport wraps any network-level failure: connection refused, DNS,
// timeout, canceled context. The caller maps it to its own sentinel.
var ErrTransport = errors.New("transport failure")

// ErrDecode wraps a response body that is not the expected JSON shape.
var ErrDecode = errors.New("response decode failure")

// responses larger than this are a server bug, not a session payload.
const maxBodyBytes = 1 << 20

// Config carries the endpoint layout and request policy for one backend.
type Config struct {
	BaseURL     string
	SignInPath  string
	SessionPath string
	SignOutPath string
	Timeout     time.Duration
	UserAgent   string
}

// Client issues requests to the SchoolWay API. The embedded cookie jar keeps
// the server's session cookie between SignIn and Session calls.
type Client struct {
	http     *http.Client
	cfg      Config
	deviceID string
}

// UserPayload mirrors the user object inside the server's session payload.
type UserPayload struct {
	ID             IDValue `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	ApprovalStatus string  `json:"approvalstatus"`
	HasVan         bool    `json:"hasVan"`
}

// IDValue decodes a server-side identifier whether it arrives as a JSON
// string or a bare number. Database-backed ids come through as numbers on
// some deployments and strings on others; locally an id is always a string.
type IDValue string

func (v *IDValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*v = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = IDValue(s)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("id value: %w", err)
	}
	*v = IDValue(strconv.FormatInt(n, 10))
	return nil
}

func (v IDValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// SessionPayload is the session object as the server sends it. Expires is
// tolerant of the formats observed in the wild: unix seconds, unix
// milliseconds, or an RFC 3339 string.
type SessionPayload struct {
	User    UserPayload `json:"user"`
	Token   string      `json:"token"`
	Expires ExpiryValue `json:"expires"`
}

// SignInReply is the decoded body of the sign-in endpoint.
type SignInReply struct {
	Success bool            `json:"success"`
	Session *SessionPayload `json:"session"`
	User    *UserPayload    `json:"user"`
	Error   string          `json:"error"`
}

// ExpiryValue decodes the server's expiry marker from any of its shapes.
// A zero value means the server issued no expiry.
type ExpiryValue struct {
	Time time.Time
}

func (e *ExpiryValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		e.Time = time.Time{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			e.Time = time.Time{}
			return nil
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("expiry string %q: %w", s, err)
		}
		e.Time = t
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("expiry number: %w", err)
	}
	// Heuristic: anything past the year 33658 in seconds is milliseconds.
	if n > 1e12 {
		e.Time = time.UnixMilli(n)
	} else {
		e.Time = time.Unix(n, 0)
	}
	return nil
}

func (e ExpiryValue) MarshalJSON() ([]byte, error) {
	if e.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(e.Time.Format(time.RFC3339))
}

// New constructs a transport client. When httpClient is nil a dedicated
// client with a fresh cookie jar and the configured timeout is built.
func New(cfg Config, httpClient *http.Client, deviceID string) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url required")
	}

	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient = &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		http:     httpClient,
		cfg:      cfg,
		deviceID: deviceID,
	}, nil
}

// SignIn posts credentials to the sign-in endpoint and decodes the reply.
// Both accepted and rejected attempts return a reply; only transport and
// decode failures return an error.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInReply, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.cfg.SignInPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var reply SignInReply
	if err := decodeBody(resp.Body, &reply); err != nil {
		// A rejection with a non-JSON body still has to surface as a
		// rejection, not a decode crash.
		if resp.StatusCode >= 400 {
			return &SignInReply{Error: http.StatusText(resp.StatusCode)}, nil
		}
		return nil, err
	}

	if resp.StatusCode >= 400 && reply.Error == "" {
		reply.Error = http.StatusText(resp.StatusCode)
	}
	return &reply, nil
}

// Session fetches the cookie-credentialed session refresh endpoint. A
// signed-out or expired cookie yields (nil, nil).
func (c *Client) Session(ctx context.Context) (*SessionPayload, error) {
	resp, err := c.do(ctx, http.MethodGet, c.cfg.SessionPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, nil
	}

	var payload SessionPayload
	if err := decodeBody(resp.Body, &payload); err != nil {
		return nil, err
	}
	if payload.User.ID == "" {
		return nil, nil
	}
	return &payload, nil
}

// SignOut notifies the server. With no sign-out path configured this is a
// local-only deployment and the call is a successful no-op.
func (c *Client) SignOut(ctx context.Context) error {
	if c.cfg.SignOutPath == "" {
		return nil
	}

	resp, err := c.do(ctx, http.MethodPost, c.cfg.SignOutPath, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sign-out rejected: %s", resp.Status)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return resp, nil
}

func decodeBody(r io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
