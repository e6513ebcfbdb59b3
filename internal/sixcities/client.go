package sixcities

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../mocks/api_mock.go -package=mocks github.com/five82/sixcities/internal/sixcities API

// API is the set of calls the fetch flows make against the rental backend.
// It is implemented by *Client and mocked in tests.
type API interface {
	FetchOffers(ctx context.Context) ([]Offer, error)
	FetchOffer(ctx context.Context, id int) (Offer, error)
	FetchNearbyOffers(ctx context.Context, id int) ([]Offer, error)
	FetchComments(ctx context.Context, id int) ([]Comment, error)
	PostComment(ctx context.Context, post CommentPost) error
	CheckAuth(ctx context.Context) (AuthorizedUser, error)
	Login(ctx context.Context, creds Credentials) (AuthorizedUser, error)
	Logout(ctx context.Context) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the rentals REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string

	mu    sync.RWMutex
	token string
}

const (
	defaultAPIURL     = "http://127.0.0.1:8089"
	defaultUserAgent  = "sixcities/0.1"
	defaultTimeout    = 5 * time.Second
	tokenHeader       = "X-Token"
	requestIDHeader   = "X-Request-ID"
	maxErrorBodyBytes = 4 << 10
)

// NewClient builds a Client for the API rooted at apiURL. A zero timeout uses
// the default of five seconds.
func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SetToken sets the session token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = strings.TrimSpace(token)
	c.mu.Unlock()
}

// Token returns the current session token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// FetchOffers retrieves every offer across all cities.
func (c *Client) FetchOffers(ctx context.Context) ([]Offer, error) {
	var payload []Offer
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchOffer retrieves a single offer.
func (c *Client) FetchOffer(ctx context.Context, id int) (Offer, error) {
	var payload Offer
	if err := c.do(ctx, http.MethodGet, "/offers/"+strconv.Itoa(id), nil, &payload); err != nil {
		return Offer{}, err
	}
	return payload, nil
}

// FetchNearbyOffers retrieves the offers shown next to offer id.
func (c *Client) FetchNearbyOffers(ctx context.Context, id int) ([]Offer, error) {
	var payload []Offer
	if err := c.do(ctx, http.MethodGet, "/offers/"+strconv.Itoa(id)+"/nearby", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchComments retrieves the reviews of offer id.
func (c *Client) FetchComments(ctx context.Context, id int) ([]Comment, error) {
	var payload []Comment
	if err := c.do(ctx, http.MethodGet, "/comments/"+strconv.Itoa(id), nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// PostComment submits a review. The response body is ignored; callers refetch
// the list.
func (c *Client) PostComment(ctx context.Context, post CommentPost) error {
	if post.ID <= 0 {
		return fmt.Errorf("offer id required")
	}
	return c.do(ctx, http.MethodPost, "/comments/"+strconv.Itoa(post.ID), post, nil)
}

// CheckAuth returns the account bound to the current token.
func (c *Client) CheckAuth(ctx context.Context) (AuthorizedUser, error) {
	var payload AuthorizedUser
	if err := c.do(ctx, http.MethodGet, "/login", nil, &payload); err != nil {
		return AuthorizedUser{}, err
	}
	return payload, nil
}

// Login exchanges credentials for a session and keeps the returned token.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthorizedUser, error) {
	var payload AuthorizedUser
	if err := c.do(ctx, http.MethodPost, "/login", creds, &payload); err != nil {
		return AuthorizedUser{}, err
	}
	c.SetToken(payload.Token)
	return payload, nil
}

// Logout ends the session. The local token is dropped even when the request
// fails.
func (c *Client) Logout(ctx context.Context) error {
	defer c.SetToken("")
	return c.do(ctx, http.MethodDelete, "/logout", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{
			Method:  method,
			Path:    path,
			Code:    resp.StatusCode,
			Message: errorMessage(resp.Body),
		}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the "message" field the API sends with failures.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
