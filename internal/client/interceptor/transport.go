// Package interceptor decorates every outgoing backend request: it attaches
// the session token, signs the payload in production mode, and bounds the
// request with a timeout.
package interceptor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/requesthash"
)

// DefaultTimeout applies when a request carries no usable timeout header.
const DefaultTimeout = 180000 * time.Millisecond

// TokenSource yields the current session token, or "" when there is none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Options tune the transport. Zero values select the defaults.
type Options struct {
	Production     bool
	HashKey        []byte
	DefaultTimeout time.Duration
	Now            func() time.Time
}

// Transport is an http.RoundTripper that decorates requests before handing
// them to Base.
type Transport struct {
	base   http.RoundTripper
	tokens TokenSource
	opts   Options
	log    logging.Logger
}

// New wraps base. A nil base uses http.DefaultTransport.
func New(base http.RoundTripper, tokens TokenSource, opts Options, log logging.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if opts.DefaultTimeout <= 0 {
		opts.DefaultTimeout = DefaultTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &Transport{base: base, tokens: tokens, opts: opts, log: log}
}

// RoundTrip implements http.RoundTripper. The caller's request is never
// modified; all changes are made on a clone.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	out := req.Clone(ctx)

	timeout := t.timeoutFor(out.Header.Get(common.TimeoutHeaderName))
	out.Header.Del(common.TimeoutHeaderName)

	if t.tokens != nil {
		token, err := t.tokens.Token(ctx)
		if err != nil {
			t.log.Warn(ctx, "cannot read session token", "error", err)
		}
		if token != "" {
			out.Header.Set(common.AuthorizationHeaderName, common.AuthorizationScheme+" "+token)
		}
	}

	if t.opts.Production {
		if err := t.sign(out); err != nil {
			return nil, err
		}
	}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	out = out.WithContext(tctx)

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		timedOut := errors.Is(tctx.Err(), context.DeadlineExceeded)
		cancel()
		if timedOut {
			return nil, fmt.Errorf("%w: %s %s after %s", common.ErrRequestTimeout, req.Method, req.URL.Redacted(), timeout)
		}
		return nil, err
	}

	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (t *Transport) timeoutFor(header string) time.Duration {
	if header == "" {
		return t.opts.DefaultTimeout
	}
	ms, err := strconv.Atoi(header)
	if err != nil || ms <= 0 {
		return t.opts.DefaultTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

// sign attaches the hash header. The body is buffered so it can be both
// hashed and sent.
func (t *Transport) sign(out *http.Request) error {
	var body []byte
	if out.Body != nil && out.Body != http.NoBody {
		var err error
		if out.GetBody != nil {
			rc, gerr := out.GetBody()
			if gerr != nil {
				return fmt.Errorf("read request body: %w", gerr)
			}
			body, err = io.ReadAll(rc)
			_ = rc.Close()
		} else {
			body, err = io.ReadAll(out.Body)
			_ = out.Body.Close()
		}
		if err != nil {
			return fmt.Errorf("read request body: %w", err)
		}
		out.Body = io.NopCloser(bytes.NewReader(body))
		out.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}

	hash, err := requesthash.Sign(t.opts.HashKey, requesthash.Payload(body, out.URL.RawQuery), t.opts.Now())
	if err != nil {
		return err
	}
	out.Header.Set(common.HashHeaderName, hash)
	return nil
}

// cancelOnClose releases the per-request timeout once the body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
