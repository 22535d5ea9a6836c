package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/solarplan/internal/server/models"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://127.0.0.1:3000/api". timeout bounds each round trip.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type projectBody struct {
	Name   string `json:"nome"`
	Cost   string `json:"custo"`
	Status string `json:"status"`
	UserID string `json:"user_id"`
}

type estimateBody struct {
	UserID         string  `json:"user_id"`
	ConsumptionKwh float64 `json:"consumo_kwh"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, credentials{email, password}, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	var id models.Identity
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentials{email, password}, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *HTTPClient) ListProjects(ctx context.Context, userID string) ([]*models.Project, error) {
	out := make([]*models.Project, 0)
	if err := c.do(ctx, http.MethodGet, "/projetos", url.Values{"user_id": {userID}}, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	var p models.Project
	if err := c.do(ctx, http.MethodPost, "/projetos", nil, toBody(in), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	var p models.Project
	if err := c.do(ctx, http.MethodPut, "/projetos/"+url.PathEscape(id), nil, toBody(in), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id, userID string) error {
	return c.do(ctx, http.MethodDelete, "/projetos/"+url.PathEscape(id), url.Values{"user_id": {userID}}, nil, nil)
}

func (c *HTTPClient) SaveEstimate(ctx context.Context, userID string, consumptionKwh float64) (*models.SavedEstimate, error) {
	var e models.SavedEstimate
	if err := c.do(ctx, http.MethodPost, "/orcamentos", nil, estimateBody{userID, consumptionKwh}, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) ListEstimates(ctx context.Context, userID string) ([]*models.SavedEstimate, error) {
	out := make([]*models.SavedEstimate, 0)
	if err := c.do(ctx, http.MethodGet, "/orcamentos", url.Values{"user_id": {userID}}, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func toBody(in models.ProjectInput) projectBody {
	return projectBody{Name: in.Name, Cost: in.Cost, Status: string(in.Status), UserID: in.UserID}
}

// do sends in as JSON (when non-nil) and decodes a 2xx body into out (when
// non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var e struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &e); err != nil || e.Error == "" {
		e.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: e.Error}
}
