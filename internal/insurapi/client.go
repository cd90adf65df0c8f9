// Package insurapi fetches the five portal collections the analytics
// pipeline consumes: claims, employees, HR staff, agents and policies,
// plus the audit log. Claims come back as raw maps so the normalizer can
// resolve the portal's aliased field names.
package insurapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/insurai/claimlens/internal/common"
	"github.com/insurai/claimlens/internal/model"
)

// Portal endpoints, relative to the base URL.
const (
	claimsPath    = "/admin/claims"
	employeesPath = "/auth/employees"
	hrPath        = "/hr"
	agentsPath    = "/agent"
	policiesPath  = "/admin/policies"
	auditLogsPath = "/admin/audit-logs"
)

// Client talks to the insurance portal's REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Dataset bundles everything one full fetch returns.
type Dataset struct {
	Claims    []model.RawClaim
	Employees []model.Employee
	HR        []model.HRStaff
	Agents    []model.Agent
	Policies  []model.Policy
	AuditLogs []model.AuditLog
	FetchedAt time.Time
}

// NewClient creates a portal client. The token is sent as a bearer
// credential on every request.
func NewClient(baseURL, token string) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: portal base URL is required", common.ErrMissingConfig)
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// FetchClaims returns the raw claim collection.
func (c *Client) FetchClaims(ctx context.Context) ([]model.RawClaim, error) {
	var claims []model.RawClaim
	if err := c.getJSON(ctx, claimsPath, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// FetchEmployees returns the employee directory.
func (c *Client) FetchEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := c.getJSON(ctx, employeesPath, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// FetchHRStaff returns the HR staff directory.
func (c *Client) FetchHRStaff(ctx context.Context) ([]model.HRStaff, error) {
	var staff []model.HRStaff
	if err := c.getJSON(ctx, hrPath, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// FetchAgents returns the agent directory.
func (c *Client) FetchAgents(ctx context.Context) ([]model.Agent, error) {
	var agents []model.Agent
	if err := c.getJSON(ctx, agentsPath, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// FetchPolicies returns the policy catalog.
func (c *Client) FetchPolicies(ctx context.Context) ([]model.Policy, error) {
	var policies []model.Policy
	if err := c.getJSON(ctx, policiesPath, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// FetchAuditLogs returns the system activity log.
func (c *Client) FetchAuditLogs(ctx context.Context) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	if err := c.getJSON(ctx, auditLogsPath, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// FetchAll pulls every collection concurrently. The fetch is all or
// nothing: if any request fails the rest are canceled and no partial
// dataset is returned.
func (c *Client) FetchAll(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{FetchedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds.Claims, err = c.FetchClaims(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Employees, err = c.FetchEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.HR, err = c.FetchHRStaff(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Agents, err = c.FetchAgents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Policies, err = c.FetchPolicies(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.AuditLogs, err = c.FetchAuditLogs(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", common.ErrPortalConnection, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: GET %s returned %d", common.ErrPortalUnauthorized, path, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: GET %s", common.ErrRateLimit, path)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
