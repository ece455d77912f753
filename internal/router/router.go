package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

// ErrRouteNotFound is returned when no route matches the requested path
var ErrRouteNotFound = errors.New("route not found")

// SessionSource exposes the persisted session the guard consults.
// Implemented by localstore.Store.
type SessionSource interface {
	User() *model.User
}

// Navigation is a resolved, guard-approved route change
type Navigation struct {
	Route  Route
	Params map[string]string
	Query  url.Values
}

// Router resolves paths against the route table and runs the guard on
// every navigation. Views are shown through the registered callbacks;
// the router itself holds no widgets.
type Router struct {
	mu      sync.RWMutex
	routes  []Route
	session SessionSource
	current *Navigation
	log     zerolog.Logger

	onShow   func(Navigation)
	onTitle  func(string)
	onNotice func(string)
}

// New creates a router over the default route table
func New(session SessionSource, log zerolog.Logger) *Router {
	return &Router{
		routes:  Routes(),
		session: session,
		log:     log,
	}
}

// SetShowCallback registers the view presenter
func (r *Router) SetShowCallback(fn func(Navigation)) {
	r.mu.Lock()
	r.onShow = fn
	r.mu.Unlock()
}

// SetTitleCallback registers the window title setter
func (r *Router) SetTitleCallback(fn func(string)) {
	r.mu.Lock()
	r.onTitle = fn
	r.mu.Unlock()
}

// SetNoticeCallback registers the handler for guard denial notices
func (r *Router) SetNoticeCallback(fn func(string)) {
	r.mu.Lock()
	r.onNotice = fn
	r.mu.Unlock()
}

// Navigate resolves the path, runs the guard, and either shows the
// target view or redirects. The guard reads only the persisted session,
// so a stale in-memory state can never widen access.
func (r *Router) Navigate(path string) error {
	target, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	route, params, ok := r.match(target.Path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRouteNotFound, target.Path)
	}

	user := r.session.User()

	if route.Meta.RequiresAuth && user == nil {
		r.log.Debug().Str("path", path).Msg("unauthenticated; redirecting to login")
		q := url.Values{}
		q.Set("redirect", path)
		return r.Navigate("/login?" + q.Encode())
	}

	if route.Meta.RequiresAdmin {
		allowed := route.Meta.AllowedRoles
		if len(allowed) == 0 {
			allowed = model.AdminRoles
		}
		var roles []string
		if user != nil {
			roles = user.Roles
		}
		if !model.HasAnyRole(roles, allowed) {
			r.log.Debug().Str("path", path).Msg("insufficient role; redirecting home")
			r.notify(PermissionDeniedNotice)
			return r.Navigate("/")
		}
	}

	nav := Navigation{Route: route, Params: params, Query: target.Query()}

	r.mu.Lock()
	r.current = &nav
	onShow, onTitle := r.onShow, r.onTitle
	r.mu.Unlock()

	if onTitle != nil {
		onTitle(Title(route))
	}
	if onShow != nil {
		onShow(nav)
	}
	return nil
}

// Current returns the last guard-approved navigation, or nil
func (r *Router) Current() *Navigation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil
	}
	nav := *r.current
	return &nav
}

// Title returns the window title for a route
func Title(route Route) string {
	if route.Meta.Title == "" {
		return DefaultTitle
	}
	return route.Meta.Title + " - " + DefaultTitle
}

func (r *Router) notify(message string) {
	r.mu.RLock()
	onNotice := r.onNotice
	r.mu.RUnlock()
	if onNotice != nil {
		onNotice(message)
	}
}

// match resolves a path against the table, binding ':name' segments as
// parameters. Exact matches win over parameterized ones by table order.
func (r *Router) match(path string) (Route, map[string]string, bool) {
	segments := splitPath(path)
	for _, route := range r.routes {
		pattern := splitPath(route.Path)
		if len(pattern) != len(segments) {
			continue
		}
		params := make(map[string]string)
		matched := true
		for i, part := range pattern {
			if strings.HasPrefix(part, ":") {
				params[part[1:]] = segments[i]
				continue
			}
			if part != segments[i] {
				matched = false
				break
			}
		}
		if matched {
			return route, params, true
		}
	}
	return Route{}, nil, false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
