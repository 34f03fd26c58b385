package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/staffview/internal/logging"
)

const maxRedirects = 10

var (
	ErrRouteNotFound     = errors.New("route not found")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrNavigationDenied  = errors.New("navigation denied")
	ErrNoComponent       = errors.New("matched route has no component")
	ErrNavigationFailure = errors.New("navigation failed")
)

// Router owns the route table and the current URL.
type Router struct {
	routes []*Route
	log    logging.Logger

	mu      sync.RWMutex
	current string
	active  *Route
	seq     uint64
}

func New(routes []*Route, log logging.Logger) *Router {
	if log == nil {
		log = logging.Nop{}
	}
	return &Router{routes: routes, log: log}
}

// URL returns the URL of the last successful navigation. A navigation whose
// component fails to render leaves it unchanged.
func (r *Router) URL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate moves to rawURL. On failure the current URL is left unchanged.
// Components may call Navigate from Render; the inner navigation wins.
// Entering a route other than the active one deactivates the previous
// route's component.
func (r *Router) Navigate(ctx context.Context, rawURL string) error {
	return r.navigate(ctx, rawURL, 0)
}

// outcome of matching one URL against the table
type match struct {
	chain    []*Route
	redirect string

	// route redirects carry the query string over, guard redirects do not
	keepQuery bool
}

func (r *Router) navigate(ctx context.Context, rawURL string, hops int) error {
	if hops > maxRedirects {
		return fmt.Errorf("%w: stopped at %s", ErrTooManyRedirects, rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRouteNotFound, err)
	}

	snap := &Snapshot{
		URL:   normalizeURL(u),
		Path:  "/" + strings.Trim(u.Path, "/"),
		Query: u.Query(),
		Data:  map[string]any{},
	}

	m, err := r.match(ctx, r.routes, splitPath(u.Path), snap)
	if err != nil {
		return err
	}

	if m.redirect != "" {
		target := m.redirect
		if m.keepQuery && !strings.Contains(target, "?") && u.RawQuery != "" {
			target += "?" + u.RawQuery
		}
		r.log.Debug(ctx, "redirect", "from", snap.URL, "to", target)
		return r.navigate(ctx, target, hops+1)
	}

	for _, route := range m.chain {
		for k, v := range route.Data {
			snap.Data[k] = v
		}
	}

	for _, route := range m.chain {
		if err := resolveAll(ctx, route, snap); err != nil {
			r.log.Warn(ctx, "navigation failed", "url", snap.URL, "error", err)
			return err
		}
	}

	target := m.chain[len(m.chain)-1]
	if target.Component == nil {
		return fmt.Errorf("%w: %s", ErrNoComponent, snap.URL)
	}

	r.mu.Lock()
	r.seq++
	seq := r.seq
	prev := r.active
	r.active = target
	r.mu.Unlock()

	if prev != nil && prev != target {
		deactivate(ctx, prev)
	}

	r.log.Info(ctx, "navigated", "url", snap.URL)
	if err := target.Component.Render(ctx, snap); err != nil {
		return err
	}

	// a navigation started from Render owns the URL
	r.mu.Lock()
	if r.seq == seq {
		r.current = snap.URL
	}
	r.mu.Unlock()
	return nil
}

// Deactivate tells the active component to drop its state, as if the user
// had navigated away. The current URL is kept.
func (r *Router) Deactivate(ctx context.Context) {
	r.mu.Lock()
	prev := r.active
	r.active = nil
	r.mu.Unlock()

	if prev != nil {
		deactivate(ctx, prev)
	}
}

func deactivate(ctx context.Context, route *Route) {
	if d, ok := route.Component.(Deactivator); ok {
		d.Deactivate(ctx)
	}
}

// match finds the route chain for segs. Guards run as soon as their route is
// matched, before its children are loaded.
func (r *Router) match(ctx context.Context, routes []*Route, segs []string, snap *Snapshot) (match, error) {
	for _, route := range routes {
		rs := route.segments()
		if !hasPrefix(segs, rs) {
			continue
		}
		rest := segs[len(rs):]
		if !route.hasChildren() && len(rest) > 0 {
			continue
		}

		if route.RedirectTo != "" {
			return match{redirect: absolute(route.RedirectTo), keepQuery: true}, nil
		}

		for _, g := range route.CanActivate {
			d := g.CanActivate(ctx, snap)
			if d.Allow {
				continue
			}
			if d.RedirectTo != "" {
				return match{redirect: absolute(d.RedirectTo)}, nil
			}
			return match{}, fmt.Errorf("%w: %s", ErrNavigationDenied, snap.URL)
		}

		if !route.hasChildren() {
			return match{chain: []*Route{route}}, nil
		}

		children, err := route.children(ctx)
		if err != nil {
			return match{}, err
		}

		sub, err := r.match(ctx, children, rest, snap)
		switch {
		case err == nil:
			if sub.redirect != "" {
				return sub, nil
			}
			return match{chain: append([]*Route{route}, sub.chain...)}, nil
		case errors.Is(err, ErrRouteNotFound) && len(rest) == 0 && route.Component != nil:
			return match{chain: []*Route{route}}, nil
		default:
			return match{}, err
		}
	}

	return match{}, fmt.Errorf("%w: %s", ErrRouteNotFound, snap.URL)
}

func resolveAll(ctx context.Context, route *Route, snap *Snapshot) error {
	keys := make([]string, 0, len(route.Resolve))
	for k := range route.Resolve {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, err := route.Resolve[k].Resolve(ctx, snap)
		if err != nil {
			return fmt.Errorf("%w: resolve %q: %w", ErrNavigationFailure, k, err)
		}
		snap.Data[k] = v
	}
	return nil
}

func absolute(target string) string {
	if strings.HasPrefix(target, "/") {
		return target
	}
	return "/" + target
}

func normalizeURL(u *url.URL) string {
	s := "/" + strings.Trim(u.Path, "/")
	if u.RawQuery != "" {
		s += "?" + u.RawQuery
	}
	return s
}
