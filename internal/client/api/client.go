// Package api is the client's view of the StaffView backend HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/staffview/internal/client/models"
	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/logging"
)

var (
	ErrUnauthorized = fmt.Errorf("api: %w", common.ErrorUnauthorized)
	ErrUnavailable  = errors.New("api: backend unavailable")
	ErrBadRequest   = fmt.Errorf("api: %w", common.ErrorValidation)
	ErrUnexpected   = errors.New("api: unexpected response")
)

// Client is the set of backend calls the services need.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	Employees(ctx context.Context, page models.Page) (models.EmployeeList, error)
}

// HTTPClient talks JSON to the backend. Authorization, request signing and
// timeouts are the job of the transport in hc.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, hc *http.Client, log logging.Logger) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc, log: log}
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth", nil, creds, &out, nil); err != nil {
		return models.LoginResponse{}, err
	}
	return out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/auth", nil, nil, nil, nil)
}

func (c *HTTPClient) Employees(ctx context.Context, page models.Page) (models.EmployeeList, error) {
	q := url.Values{}
	if page.Number > 0 {
		q.Set("page", strconv.Itoa(page.Number))
	}
	if page.Size > 0 {
		q.Set("size", strconv.Itoa(page.Size))
	}

	var items []models.Employee
	var header http.Header
	if err := c.do(ctx, http.MethodGet, "/employee", q, nil, &items, &header); err != nil {
		return models.EmployeeList{}, err
	}

	total := -1
	if v := header.Get(common.TotalCountHeaderName); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			total = n
		}
	}
	if items == nil {
		items = []models.Employee{}
	}
	return models.EmployeeList{Items: items, Total: total}, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any, header *http.Header) error {
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
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "backend response", "method", method, "path", path, "status", resp.StatusCode)

	if err := statusError(resp); err != nil {
		return err
	}
	if header != nil {
		*header = resp.Header
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: reading %s", common.ErrRequestTimeout, path)
		}
		return fmt.Errorf("%w: decode %s: %v", ErrUnexpected, path, err)
	}
	return nil
}

func (c *HTTPClient) transportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrRequestTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", common.ErrRequestTimeout, err)
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func statusError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := http.StatusText(resp.StatusCode)
	var er errorResponse
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil && json.Unmarshal(b, &er) == nil && er.Message != "" {
		msg = er.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %d %s", ErrUnavailable, resp.StatusCode, msg)
	default:
		return fmt.Errorf("%w: %d %s", ErrUnexpected, resp.StatusCode, msg)
	}
}

var _ Client = (*HTTPClient)(nil)
