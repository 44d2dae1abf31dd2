package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/erwinjamescodes/sinotoriables/votes"
)

const defaultTimeout = 10 * time.Second

// Candidate is one senatorial candidate as the API reports it.
type Candidate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Party     string    `json:"party"`
	Platform  string    `json:"platform"`
	Bio       string    `json:"bio"`
	ImageURL  string    `json:"image_url"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleResult is the server's authoritative answer to a toggle.
type ToggleResult struct {
	Action      votes.Action `json:"action"`
	CandidateID int64        `json:"candidate_id"`
}

// Likes is the current voter's like state plus the advisory vote cap.
type Likes struct {
	LikedIDs []int64 `json:"liked_ids"`
	MaxVotes int     `json:"max_votes"`
}

// TimelinePoint is one day's like volume.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Analytics is the aggregate statistics view: candidates ranked by likes plus
// the 30-day timeline.
type Analytics struct {
	Rankings []Candidate     `json:"rankings"`
	Timeline []TimelinePoint `json:"timeline"`
}

// APIError is a non-2xx answer from the server, carrying the decoded error
// body when one was present.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Type       string `json:"type"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// Client talks to one SinoToriables server. The cookie jar holds the user_id
// identity cookie the server mints on first contact, so every request after
// the first is the same anonymous voter. Not safe to share across voters;
// create one Client per identity.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller is
// responsible for attaching a cookie jar if identity should persist.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Candidates lists all candidates in ballot order.
func (c *Client) Candidates(ctx context.Context) ([]Candidate, error) {
	var resp struct {
		Candidates []Candidate `json:"candidates"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/candidates", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Candidates, nil
}

// Candidate fetches a single candidate by id.
func (c *Client) Candidate(ctx context.Context, id int64) (*Candidate, error) {
	var cand Candidate
	if err := c.doJSON(ctx, http.MethodGet, candidatePath(id), nil, &cand); err != nil {
		return nil, err
	}
	return &cand, nil
}

// Toggle flips the current voter's like on a candidate and returns the
// resulting state as the server recorded it.
func (c *Client) Toggle(ctx context.Context, candidateID int64) (*ToggleResult, error) {
	var result ToggleResult
	if err := c.doJSON(ctx, http.MethodPost, candidatePath(candidateID)+"/toggle", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Likes returns the candidate ids the current voter has liked, restricted to
// candidateIDs when non-empty, plus the server's vote cap.
func (c *Client) Likes(ctx context.Context, candidateIDs ...int64) (*Likes, error) {
	path := "/api/likes"
	if len(candidateIDs) > 0 {
		parts := make([]string, len(candidateIDs))
		for i, id := range candidateIDs {
			parts[i] = strconv.FormatInt(id, 10)
		}
		path += "?ids=" + strings.Join(parts, ",")
	}

	var likes Likes
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &likes); err != nil {
		return nil, err
	}
	return &likes, nil
}

// Analytics fetches the rankings-plus-timeline statistics view.
func (c *Client) Analytics(ctx context.Context) (*Analytics, error) {
	var a Analytics
	if err := c.doJSON(ctx, http.MethodGet, "/api/analytics", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func candidatePath(id int64) string {
	return "/api/candidates/" + strconv.FormatInt(id, 10)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// best effort: the body may not be the structured error shape
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
