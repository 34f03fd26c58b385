// Package router maps client URLs to views. Navigation runs the matched
// routes' guards, loads feature modules on first use, runs resolvers and
// finally renders the target component with the resolved data.
package router

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Snapshot is the state of one navigation handed to guards, resolvers and
// the rendered component.
type Snapshot struct {
	URL   string
	Path  string
	Query url.Values
	Data  map[string]any
}

// QueryValue returns the first value of a query parameter or "".
func (s *Snapshot) QueryValue(name string) string {
	return s.Query.Get(name)
}

// Decision is a guard's verdict. A denied decision with a RedirectTo starts a
// navigation to that URL instead.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func Allow() Decision { return Decision{Allow: true} }

func Deny(redirectTo string) Decision { return Decision{RedirectTo: redirectTo} }

type Guard interface {
	CanActivate(ctx context.Context, snap *Snapshot) Decision
}

type GuardFunc func(ctx context.Context, snap *Snapshot) Decision

func (f GuardFunc) CanActivate(ctx context.Context, snap *Snapshot) Decision { return f(ctx, snap) }

// Resolver produces a value stored in Snapshot.Data before the component is
// rendered.
type Resolver interface {
	Resolve(ctx context.Context, snap *Snapshot) (any, error)
}

type ResolverFunc func(ctx context.Context, snap *Snapshot) (any, error)

func (f ResolverFunc) Resolve(ctx context.Context, snap *Snapshot) (any, error) { return f(ctx, snap) }

type Component interface {
	Render(ctx context.Context, snap *Snapshot) error
}

type ComponentFunc func(ctx context.Context, snap *Snapshot) error

func (f ComponentFunc) Render(ctx context.Context, snap *Snapshot) error { return f(ctx, snap) }

// Deactivator is implemented by components that keep state between renders.
// Deactivate runs when another route becomes active, so the next visit
// starts fresh.
type Deactivator interface {
	Deactivate(ctx context.Context)
}

// Navigator is what components need to move elsewhere.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}

// Route is one entry of the route table.
//
// Path is matched segment by segment. A route without children must match
// the rest of the URL exactly; a route with Children or LoadChildren matches
// a prefix and hands the remainder to its children.
type Route struct {
	Path         string
	RedirectTo   string
	CanActivate  []Guard
	Resolve      map[string]Resolver
	Data         map[string]any
	Component    Component
	Children     []*Route
	LoadChildren func(ctx context.Context) ([]*Route, error)

	mu     sync.Mutex
	loaded []*Route
	isLoad bool
}

func (r *Route) segments() []string {
	return splitPath(r.Path)
}

func (r *Route) hasChildren() bool {
	return len(r.Children) > 0 || r.LoadChildren != nil
}

// children returns the static children followed by the lazily loaded ones.
// LoadChildren runs at most once successfully; a failed load is retried on
// the next navigation.
func (r *Route) children(ctx context.Context) ([]*Route, error) {
	if r.LoadChildren == nil {
		return r.Children, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isLoad {
		loaded, err := r.LoadChildren(ctx)
		if err != nil {
			return nil, fmt.Errorf("load children of %q: %w", r.Path, err)
		}
		r.loaded = loaded
		r.isLoad = true
	}

	out := make([]*Route, 0, len(r.Children)+len(r.loaded))
	out = append(out, r.Children...)
	return append(out, r.loaded...), nil
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func hasPrefix(url, prefix []string) bool {
	if len(prefix) > len(url) {
		return false
	}
	for i := range prefix {
		if prefix[i] != url[i] {
			return false
		}
	}
	return true
}
