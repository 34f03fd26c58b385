package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	rendered []string
	last     *Snapshot
}

func (r *recorder) component(name string) Component {
	return ComponentFunc(func(_ context.Context, snap *Snapshot) error {
		r.rendered = append(r.rendered, name)
		r.last = snap
		return nil
	})
}

func TestNavigate_Redirect(t *testing.T) {
	rec := &recorder{}
	r := New([]*Route{
		{Path: "", RedirectTo: "/employee"},
		{Path: "employee", Component: rec.component("employee")},
	}, nil)

	require.NoError(t, r.Navigate(context.Background(), "/?page=2"))
	assert.Equal(t, []string{"employee"}, rec.rendered)
	assert.Equal(t, "/employee?page=2", r.URL())
	assert.Equal(t, "2", rec.last.QueryValue("page"))
}

func TestNavigate_NotFound(t *testing.T) {
	r := New([]*Route{{Path: "employee", Component: (&recorder{}).component("e")}}, nil)

	err := r.Navigate(context.Background(), "/nope")
	require.ErrorIs(t, err, ErrRouteNotFound)
	assert.Empty(t, r.URL())

	err = r.Navigate(context.Background(), "/employee/extra")
	require.ErrorIs(t, err, ErrRouteNotFound, "leaf routes match exactly")
}

func TestNavigate_RedirectLoop(t *testing.T) {
	r := New([]*Route{
		{Path: "a", RedirectTo: "b"},
		{Path: "b", RedirectTo: "a"},
	}, nil)

	require.ErrorIs(t, r.Navigate(context.Background(), "/a"), ErrTooManyRedirects)
}

func TestNavigate_GuardDenyRedirects(t *testing.T) {
	rec := &recorder{}
	deny := GuardFunc(func(context.Context, *Snapshot) Decision { return Deny("/auth") })

	r := New([]*Route{
		{Path: "auth", Component: rec.component("login")},
		{Path: "employee", CanActivate: []Guard{deny}, Component: rec.component("employee")},
	}, nil)

	require.NoError(t, r.Navigate(context.Background(), "/employee?page=3"))
	assert.Equal(t, []string{"login"}, rec.rendered)
	assert.Equal(t, "/auth", r.URL(), "guard redirects drop the query")
}

func TestNavigate_GuardDenyWithoutRedirect(t *testing.T) {
	rec := &recorder{}
	deny := GuardFunc(func(context.Context, *Snapshot) Decision { return Decision{} })

	r := New([]*Route{{Path: "x", CanActivate: []Guard{deny}, Component: rec.component("x")}}, nil)

	require.ErrorIs(t, r.Navigate(context.Background(), "/x"), ErrNavigationDenied)
	assert.Empty(t, rec.rendered)
}

func TestNavigate_GuardsRunInOrderAndStopOnDeny(t *testing.T) {
	var calls []string
	g := func(name string, allow bool) Guard {
		return GuardFunc(func(context.Context, *Snapshot) Decision {
			calls = append(calls, name)
			return Decision{Allow: allow}
		})
	}

	r := New([]*Route{{Path: "x", CanActivate: []Guard{g("a", true), g("b", false), g("c", true)}, Component: (&recorder{}).component("x")}}, nil)

	_ = r.Navigate(context.Background(), "/x")
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestNavigate_LazyChildrenLoadedOnce(t *testing.T) {
	rec := &recorder{}
	loads := 0

	r := New([]*Route{{
		Path: "employee",
		LoadChildren: func(context.Context) ([]*Route, error) {
			loads++
			return []*Route{
				{Path: "", Component: rec.component("list")},
				{Path: "detail", Component: rec.component("detail")},
			}, nil
		},
	}}, nil)

	ctx := context.Background()
	require.NoError(t, r.Navigate(ctx, "/employee"))
	require.NoError(t, r.Navigate(ctx, "/employee/detail"))
	require.NoError(t, r.Navigate(ctx, "/employee"))

	assert.Equal(t, 1, loads)
	assert.Equal(t, []string{"list", "detail", "list"}, rec.rendered)
}

func TestNavigate_LazyLoadFailureIsRetried(t *testing.T) {
	rec := &recorder{}
	loads := 0

	r := New([]*Route{{
		Path: "auth",
		LoadChildren: func(context.Context) ([]*Route, error) {
			loads++
			if loads == 1 {
				return nil, errors.New("boom")
			}
			return []*Route{{Path: "", Component: rec.component("login")}}, nil
		},
	}}, nil)

	require.Error(t, r.Navigate(context.Background(), "/auth"))
	require.NoError(t, r.Navigate(context.Background(), "/auth"))
	assert.Equal(t, 2, loads)
}

func TestNavigate_GuardRunsBeforeLazyLoad(t *testing.T) {
	loaded := false
	deny := GuardFunc(func(context.Context, *Snapshot) Decision { return Decision{} })

	r := New([]*Route{{
		Path:        "employee",
		CanActivate: []Guard{deny},
		LoadChildren: func(context.Context) ([]*Route, error) {
			loaded = true
			return nil, nil
		},
	}}, nil)

	_ = r.Navigate(context.Background(), "/employee")
	assert.False(t, loaded)
}

func TestNavigate_ResolversFillData(t *testing.T) {
	rec := &recorder{}

	r := New([]*Route{{
		Path: "employee",
		Data: map[string]any{"title": "Employees"},
		Resolve: map[string]Resolver{
			"employees": ResolverFunc(func(_ context.Context, snap *Snapshot) (any, error) {
				return []string{"a", snap.QueryValue("page")}, nil
			}),
		},
		Component: rec.component("employee"),
	}}, nil)

	require.NoError(t, r.Navigate(context.Background(), "/employee?page=4"))
	assert.Equal(t, []string{"a", "4"}, rec.last.Data["employees"])
	assert.Equal(t, "Employees", rec.last.Data["title"])
}

func TestNavigate_ResolverFailureKeepsURL(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("backend down")

	r := New([]*Route{
		{Path: "home", Component: rec.component("home")},
		{
			Path: "employee",
			Resolve: map[string]Resolver{
				"employees": ResolverFunc(func(context.Context, *Snapshot) (any, error) { return nil, boom }),
			},
			Component: rec.component("employee"),
		},
	}, nil)

	ctx := context.Background()
	require.NoError(t, r.Navigate(ctx, "/home"))

	err := r.Navigate(ctx, "/employee")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, ErrNavigationFailure)
	assert.Equal(t, "/home", r.URL())
	assert.Equal(t, []string{"home"}, rec.rendered)
}

func TestNavigate_NestedNavigationFromRender(t *testing.T) {
	rec := &recorder{}
	var r *Router

	r = New([]*Route{
		{Path: "auth", Component: ComponentFunc(func(ctx context.Context, _ *Snapshot) error {
			rec.rendered = append(rec.rendered, "login")
			return r.Navigate(ctx, "/employee")
		})},
		{Path: "employee", Component: rec.component("employee")},
	}, nil)

	require.NoError(t, r.Navigate(context.Background(), "/auth"))
	assert.Equal(t, []string{"login", "employee"}, rec.rendered)
	assert.Equal(t, "/employee", r.URL())
}

func TestNavigate_NoComponent(t *testing.T) {
	r := New([]*Route{{Path: "empty"}}, nil)
	require.ErrorIs(t, r.Navigate(context.Background(), "/empty"), ErrNoComponent)
}

type statefulComponent struct {
	renders     int
	deactivated int
}

func (c *statefulComponent) Render(context.Context, *Snapshot) error {
	c.renders++
	return nil
}

func (c *statefulComponent) Deactivate(context.Context) {
	c.deactivated++
}

func TestNavigate_LeavingRouteDeactivatesComponent(t *testing.T) {
	ctx := context.Background()
	list := &statefulComponent{}
	rec := &recorder{}

	r := New([]*Route{
		{Path: "employee", Component: list},
		{Path: "auth", Component: rec.component("login")},
	}, nil)

	require.NoError(t, r.Navigate(ctx, "/employee"))
	require.NoError(t, r.Navigate(ctx, "/employee?page=2"))
	assert.Equal(t, 0, list.deactivated, "staying on the route keeps state")

	require.NoError(t, r.Navigate(ctx, "/auth"))
	assert.Equal(t, 1, list.deactivated)

	require.NoError(t, r.Navigate(ctx, "/employee"))
	assert.Equal(t, 3, list.renders)
	assert.Equal(t, 1, list.deactivated)
}

func TestRouter_Deactivate(t *testing.T) {
	ctx := context.Background()
	list := &statefulComponent{}
	r := New([]*Route{{Path: "employee", Component: list}}, nil)

	require.NoError(t, r.Navigate(ctx, "/employee"))
	r.Deactivate(ctx)
	assert.Equal(t, 1, list.deactivated)
	assert.Equal(t, "/employee", r.URL())

	r.Deactivate(ctx)
	assert.Equal(t, 1, list.deactivated, "nothing active any more")
}

func TestNavigate_RenderFailureKeepsURL(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	boom := errors.New("no input")

	r := New([]*Route{
		{Path: "home", Component: rec.component("home")},
		{Path: "auth", Component: ComponentFunc(func(context.Context, *Snapshot) error { return boom })},
	}, nil)

	require.NoError(t, r.Navigate(ctx, "/home"))
	require.ErrorIs(t, r.Navigate(ctx, "/auth"), boom)
	assert.Equal(t, "/home", r.URL())
}
