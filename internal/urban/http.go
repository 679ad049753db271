package urban

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "scenarios-conductor/internal/errors"
	"scenarios-conductor/internal/logger"
)

const (
	defaultPingTimeout      = 2 * time.Second
	defaultOperationTimeout = 60 * time.Second
	defaultPageSize         = 100
)

// HTTPClientOptions tunes the two independent timeout budgets of the client.
type HTTPClientOptions struct {
	PingTimeout      time.Duration
	OperationTimeout time.Duration
}

var _ Client = (*HTTPClient)(nil)

// HTTPClient is the Urban API client that uses HTTP/HTTPS as transport.
// The underlying http.Client is shared process-wide and safe for concurrent
// use; it is lazily (re)created when absent.
type HTTPClient struct {
	baseURL          string
	apiToken         string
	pingTimeout      time.Duration
	operationTimeout time.Duration

	mu         sync.Mutex
	httpClient *http.Client

	log *logger.Logger
}

// NewHTTPClient creates an Urban API client for the given host. A host
// without an explicit scheme is rewritten to plain http with a warning.
func NewHTTPClient(host, apiToken string, opts *HTTPClientOptions) *HTTPClient {
	if !strings.HasPrefix(host, "http") {
		logger.New().WithField("host", host).Warn("http/https schema is not set, defaulting to http")
		host = "http://" + host
	}
	host = strings.TrimRight(host, "/") + "/"

	pingTimeout := defaultPingTimeout
	operationTimeout := defaultOperationTimeout
	if opts != nil {
		if opts.PingTimeout > 0 {
			pingTimeout = opts.PingTimeout
		}
		if opts.OperationTimeout > 0 {
			operationTimeout = opts.OperationTimeout
		}
	}

	return &HTTPClient{
		baseURL:          host,
		apiToken:         apiToken,
		pingTimeout:      pingTimeout,
		operationTimeout: operationTimeout,
		log:              logger.New().WithField("host", host),
	}
}

// BaseURL returns the normalized target URL the client requests against.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// getClient returns the shared transport, recreating it if it was closed.
func (c *HTTPClient) getClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.operationTimeout}
	}
	return c.httpClient
}

// Close releases the shared transport. A later call recreates it.
func (c *HTTPClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
	}
}

// request performs an authenticated call against an absolute URL and returns
// the response body on 200/201. Every failure maps to exactly one error kind.
func (c *HTTPClient) request(ctx context.Context, method, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.getClient().Do(req)
	if err != nil {
		return nil, c.wrapTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.wrapTransportError(err)
	}

	path := req.URL.Path
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return body, nil
	case resp.StatusCode == http.StatusBadRequest:
		return nil, &apperrors.BadRequestError{Method: method, Path: path, Body: string(body)}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &apperrors.NotFoundError{Method: method, Path: path, Body: string(body)}
	case resp.StatusCode == http.StatusConflict:
		return nil, &apperrors.ConflictError{Method: method, Path: path, Body: string(body)}
	}

	c.log.WithFields(map[string]interface{}{
		"status": resp.StatusCode,
		"text":   string(body),
	}).Errorf("request failed: %s %s", method, path)
	return nil, &apperrors.InvalidStatusCodeError{Method: method, Path: path, Status: resp.StatusCode}
}

// wrapTransportError distinguishes timeouts from connection failures so the
// caller can pick a retry policy.
func (c *HTTPClient) wrapTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &apperrors.TimeoutError{Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &apperrors.TimeoutError{Err: err}
	}
	return &apperrors.ConnectionError{Err: err}
}

// IsAlive checks if the Urban API instance is alive. It uses the short ping
// timeout and never fails; every problem is logged and reported as false.
func (c *HTTPClient) IsAlive(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pingCtx, http.MethodGet, c.baseURL+"health_check/ping", nil)
	if err != nil {
		c.log.WithError(err).Warn("error on ping")
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.getClient().Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			c.log.Warn("timeout on ping")
		} else {
			c.log.WithError(err).Warn("error on ping")
		}
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusOK {
		var pong struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &pong); err == nil && pong.Message == "Pong!" {
			return true
		}
	}
	c.log.WithFields(map[string]interface{}{
		"resp_code": resp.StatusCode,
		"resp_text": string(body),
	}).Warn("error on ping")
	return false
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

// GetVersion fetches the API version from the openapi metadata endpoint.
func (c *HTTPClient) GetVersion(ctx context.Context) (string, error) {
	body, err := c.request(ctx, http.MethodGet, c.baseURL+"api/openapi")
	if err != nil {
		return "", err
	}

	var openapi struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := json.Unmarshal(body, &openapi); err != nil {
		return "", fmt.Errorf("failed to decode openapi response: %w", err)
	}
	return openapi.Info.Version, nil
}

// GetProjectByID fetches a project snapshot by identifier.
func (c *HTTPClient) GetProjectByID(ctx context.Context, projectID int64) (*Project, error) {
	body, err := c.request(ctx, http.MethodGet, fmt.Sprintf("%sapi/v1/projects/%d", c.baseURL, projectID))
	if err != nil {
		return nil, err
	}

	var project Project
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project response: %w", err)
	}
	return &project, nil
}

// GetScenarioByID fetches a scenario snapshot by identifier.
func (c *HTTPClient) GetScenarioByID(ctx context.Context, scenarioID int64) (*Scenario, error) {
	body, err := c.request(ctx, http.MethodGet, fmt.Sprintf("%sapi/v1/scenarios/%d", c.baseURL, scenarioID))
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := json.Unmarshal(body, &scenario); err != nil {
		return nil, fmt.Errorf("failed to decode scenario response: %w", err)
	}
	return &scenario, nil
}

// GetScenarios lists scenarios matching all supplied filters server-side.
func (c *HTTPClient) GetScenarios(ctx context.Context, filter ScenarioFilter) ([]Scenario, error) {
	params := url.Values{}
	params.Set("is_based", strconv.FormatBool(filter.IsBased))
	params.Set("only_own", strconv.FormatBool(filter.OnlyOwn))
	if filter.ParentID != nil {
		params.Set("parent_id", strconv.FormatInt(*filter.ParentID, 10))
	}
	if filter.ProjectID != nil {
		params.Set("project_id", strconv.FormatInt(*filter.ProjectID, 10))
	}
	if filter.TerritoryID != nil {
		params.Set("territory_id", strconv.FormatInt(*filter.TerritoryID, 10))
	}

	body, err := c.request(ctx, http.MethodGet, c.baseURL+"api/v1/scenarios?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var scenarios []Scenario
	if err := json.Unmarshal(body, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios response: %w", err)
	}
	return scenarios, nil
}

// GetProjects lists projects matching all supplied filters, transparently
// following every pagination link and concatenating the pages in order.
func (c *HTTPClient) GetProjects(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	params := url.Values{}
	params.Set("is_regional", strconv.FormatBool(filter.IsRegional))
	params.Set("only_own", strconv.FormatBool(filter.OnlyOwn))
	params.Set("page_size", strconv.Itoa(pageSize))
	if filter.ProjectType != nil {
		params.Set("project_type", *filter.ProjectType)
	}
	if filter.TerritoryID != nil {
		params.Set("territory_id", strconv.FormatInt(*filter.TerritoryID, 10))
	}
	if filter.Name != nil {
		params.Set("name", *filter.Name)
	}
	if filter.CreatedAt != nil {
		params.Set("created_at", filter.CreatedAt.Format("2006-01-02"))
	}

	pageURL := c.baseURL + "api/v1/projects?" + params.Encode()

	var projects []Project
	for pageURL != "" {
		body, err := c.request(ctx, http.MethodGet, pageURL)
		if err != nil {
			return nil, err
		}

		var page paginatedProjects
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("failed to decode projects page: %w", err)
		}
		projects = append(projects, page.Results...)

		pageURL = ""
		if page.Next != nil && *page.Next != "" {
			next, err := c.resolveLink(*page.Next)
			if err != nil {
				return nil, err
			}
			pageURL = next
		}
	}
	return projects, nil
}

// resolveLink resolves a pagination link, which the API may return relative
// to the base host.
func (c *HTTPClient) resolveLink(link string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid pagination link %q: %w", link, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// CreateBaseScenario creates a new base scenario for the given project from
// the specified regional scenario.
func (c *HTTPClient) CreateBaseScenario(ctx context.Context, projectID, scenarioID int64) (*Scenario, error) {
	body, err := c.request(ctx, http.MethodPost,
		fmt.Sprintf("%sapi/v1/projects/%d/base_scenario/%d", c.baseURL, projectID, scenarioID))
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := json.Unmarshal(body, &scenario); err != nil {
		return nil, fmt.Errorf("failed to decode base scenario response: %w", err)
	}
	return &scenario, nil
}
