// Package client is the admin-side API client for the site backend: it
// loads and saves projects, owns the cached project list, and delegates
// image uploads to the backend asset store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/newstalgia/backend/internal/block"
)

// TokenSource supplies the bearer token for mutating calls. Session
// issuance and refresh live outside this package.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource for a fixed token.
type StaticToken string

func (t StaticToken) Token() (string, error) { return string(t), nil }

// Project is the aggregate the admin panel edits.
type Project struct {
	ID          string             `json:"id,omitempty"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Type        string             `json:"type"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Thumbnail   string             `json:"thumbnail,omitempty"`
	Blocks      block.List         `json:"blocks"`
	Team        []block.TeamMember `json:"team"`
}

// Client talks to the backend REST API. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource

	mu       sync.Mutex
	cached   []Project
	hasCache bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New returns a client for the API rooted at baseURL (for example
// "https://example.com/api").
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope matches the backend's {code, message, data} response shape.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidationFailed, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindNetworkError, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) authorize(req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token()
	if err != nil {
		return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf("session token: %v", err)}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Kind: KindNetworkError, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetworkError, Message: err.Error()}
	}

	var env envelope
	message := ""
	if json.Unmarshal(raw, &env) == nil {
		message = env.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, Message: orDefault(message, "session expired or missing"), Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: orDefault(message, "not found"), Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &Error{Kind: KindServerError, Message: orDefault(message, resp.Status), Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Kind: KindServerError, Message: fmt.Sprintf("decode response: %v", err), Status: resp.StatusCode}
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// List fetches all projects and refreshes the cached list.
func (c *Client) List(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Blocks = projects[i].Blocks.Normalize()
	}
	c.mu.Lock()
	c.cached = projects
	c.hasCache = true
	c.mu.Unlock()
	return projects, nil
}

// Cached returns the last fetched project list without a network call.
func (c *Client) Cached() ([]Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasCache {
		return nil, false
	}
	out := make([]Project, len(c.cached))
	copy(out, c.cached)
	return out, true
}

// Get fetches one project by id, normalizing legacy block types.
func (c *Client) Get(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+id, nil, &p); err != nil {
		return nil, err
	}
	p.Blocks = p.Blocks.Normalize()
	return &p, nil
}

// GetBySlug fetches one project by slug, normalizing legacy block types.
func (c *Client) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	var p Project
	if err := c.do(ctx, http.MethodGet, "/projects/slug/"+slug, nil, &p); err != nil {
		return nil, err
	}
	p.Blocks = p.Blocks.Normalize()
	return &p, nil
}

// updatePayload is the PUT body: slug and type are immutable after
// creation and server-assigned block ids are stripped before resubmission.
type updatePayload struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Thumbnail   string             `json:"thumbnail,omitempty"`
	Blocks      block.List         `json:"blocks"`
	Team        []block.TeamMember `json:"team"`
}

// Save persists the project: PUT when it already has an id, POST
// otherwise. Blocks are validated locally first; an invalid block type
// aborts before any network call.
func (c *Client) Save(ctx context.Context, p *Project) (*Project, error) {
	normalized := p.Blocks.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, &Error{Kind: KindValidationFailed, Message: err.Error()}
	}

	var saved Project
	if p.ID != "" {
		payload := updatePayload{
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			Thumbnail:   p.Thumbnail,
			Blocks:      normalized.StripIDs(),
			Team:        p.Team,
		}
		if payload.Team == nil {
			payload.Team = []block.TeamMember{}
		}
		if err := c.do(ctx, http.MethodPut, "/projects/"+p.ID, payload, &saved); err != nil {
			return nil, err
		}
	} else {
		create := *p
		create.Blocks = normalized
		if create.Team == nil {
			create.Team = []block.TeamMember{}
		}
		if err := c.do(ctx, http.MethodPost, "/projects", create, &saved); err != nil {
			return nil, err
		}
	}

	saved.Blocks = saved.Blocks.Normalize()
	c.refreshList(ctx)
	return &saved, nil
}

// Remove deletes a project by id. A 404 means the desired end state
// already holds and is treated as success. The list is refreshed either
// way so the admin table reflects reality.
func (c *Client) Remove(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil)
	if err != nil && !IsNotFound(err) {
		return err
	}
	c.refreshList(ctx)
	return nil
}

// refreshList best-effort refreshes the cached list after a mutation.
func (c *Client) refreshList(ctx context.Context) {
	_, _ = c.List(ctx)
}

// Upload sends one file to the backend asset store and returns its URL.
// When size is known (> 0) progress is reported as 0-100 while the body
// is read; it always ends on 100 for success. Errors leave progress
// wherever it was; the caller resets its own display.
func (c *Client) Upload(ctx context.Context, filename string, size int64, r io.Reader, progress func(pct int)) (string, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		src := r
		if progress != nil && size > 0 {
			src = &progressReader{r: r, total: size, report: progress}
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return "", &Error{Kind: KindNetworkError, Message: err.Error()}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if err := c.authorize(req); err != nil {
		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.send(req, &out); err != nil {
		return "", err
	}
	if progress != nil {
		progress(100)
	}
	return out.URL, nil
}

type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report func(pct int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		p.report(pct)
	}
	return n, err
}
