package scaffolder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/EmanuelTinoco/backstage/internal/discovery"
	"github.com/EmanuelTinoco/backstage/internal/identity"
	"github.com/google/uuid"
)

// PluginID is the scaffolder's logical id for discovery lookups.
const PluginID = "scaffolder"

// Client talks to the scaffolder plugin's task API. Methods are safe for
// concurrent use; calls are independent and uncoordinated.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     identity.TokenProvider
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTokenProvider sets the source of the bearer credential. Without one,
// requests are sent unauthenticated.
func WithTokenProvider(p identity.TokenProvider) Option {
	return func(cl *Client) {
		cl.tokens = p
	}
}

// New resolves the scaffolder base URL through the given resolver and
// returns a configured client.
func New(resolver discovery.Resolver, opts ...Option) (*Client, error) {
	baseURL, err := resolver.BaseURL(PluginID)
	if err != nil {
		return nil, fmt.Errorf("resolving scaffolder base URL: %w", err)
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved scaffolder base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type scaffoldRequest struct {
	TemplateName string                 `json:"templateName"`
	Values       map[string]interface{} `json:"values"`
}

type scaffoldResponse struct {
	ID string `json:"id"`
}

// Scaffold submits a new task for the named template and returns the task
// id assigned by the backend. Any status other than 201 Created yields a
// *ResponseError carrying the status and response body.
func (c *Client) Scaffold(ctx context.Context, templateName string, values map[string]interface{}) (string, error) {
	payload, err := json.Marshal(scaffoldRequest{TemplateName: templateName, Values: values})
	if err != nil {
		return "", fmt.Errorf("marshaling scaffold request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/v2/tasks", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("submitting scaffold task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", newResponseError(resp)
	}

	var created scaffoldResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decoding scaffold response: %w", err)
	}
	return created.ID, nil
}

// GetTask fetches the current representation of a task.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task id cannot be empty")
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.taskURL(taskID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching task %s: %w", taskID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newResponseError(resp)
	}

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("decoding task %s: %w", taskID, err)
	}
	return &task, nil
}

func (c *Client) taskURL(taskID string) string {
	return c.baseURL + "/v2/tasks/" + url.PathEscape(taskID)
}

// newRequest builds a request with the standard headers: a generated
// request id for traceability, and the bearer token when one is available.
func (c *Client) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}
