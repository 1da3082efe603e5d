// Package client is the browser-equivalent data access layer for the
// website API: typed calls for the blog views plus the submit state
// machine the contact page uses. It mirrors the page behavior exactly:
// one request in flight per call, no automatic retry, and error responses
// surfaced as a uniform failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the requested article id is unknown.
var ErrNotFound = errors.New("article not found")

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// Article mirrors the server's article representation.
type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	ReadTime      int       `json:"read_time"`
}

// ContactForm holds the contact form field values.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// AppointmentForm holds the appointment form field values. Message is
// optional and sent as-is (empty string when left blank).
type AppointmentForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// Ack is the acknowledgment for a persisted submission.
type Ack struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the website API. The base URL is read once at
// construction, matching the single startup setting the pages use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given backend base URL
// (e.g. "http://localhost:8080"). hc may be nil for http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    hc,
	}
}

// ListArticles fetches all published articles, newest first.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var out []Article
	if err := c.get(ctx, "/blog", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetArticle fetches a single article by id. Unknown ids yield ErrNotFound.
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	var out Article
	if err := c.get(ctx, "/blog/"+id, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// SubmitContact posts a contact message and returns the server's
// acknowledgment.
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) (*Ack, error) {
	var out Ack
	if err := c.post(ctx, "/contact", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAppointment posts an appointment request and returns the server's
// acknowledgment.
func (c *Client) SubmitAppointment(ctx context.Context, form AppointmentForm) (*Ack, error) {
	var out Ack
	if err := c.post(ctx, "/appointments", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var env errorEnvelope
		if b, readErr := io.ReadAll(resp.Body); readErr == nil {
			if json.Unmarshal(b, &env) == nil {
				apiErr.Code = env.Error.Code
				apiErr.Message = env.Error.Message
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
