// Package router maps console paths to screens and guards every screen but
// login behind the session credential.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Screen string

const (
	Login          Screen = "/login"
	Cases          Screen = "/cases"
	CaseDetail     Screen = "/cases/{id}"
	Receipts       Screen = "/recebimentos"
	Import         Screen = "/import"
	PendingAlvaras Screen = "/alvaras/pendentes"
)

// Home is where "/" lands.
const Home = Cases

var ErrUnknownRoute = errors.New("unknown route")

var screens = []Screen{Login, Cases, CaseDetail, Receipts, Import, PendingAlvaras}

type Route struct {
	Screen Screen
	Path   string
	// CaseID is set for CaseDetail.
	CaseID string
	// From is the path a guarded login was redirected from.
	From string
}

func (r Route) Public() bool {
	return r.Screen == Login
}

type Credential interface {
	Present() bool
}

type Router struct {
	mux        *chi.Mux
	credential Credential
}

func New(credential Credential) *Router {
	mux := chi.NewRouter()
	for _, s := range screens {
		mux.Get(string(s), func(http.ResponseWriter, *http.Request) {})
	}
	return &Router{mux: mux, credential: credential}
}

// Match resolves a path to its screen without consulting the credential.
func (r *Router) Match(path string) (Route, error) {
	path = clean(path)
	if path == "/" {
		path = string(Home)
	}

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	route := Route{Screen: Screen(rctx.RoutePattern()), Path: path}
	if route.Screen == CaseDetail {
		route.CaseID = rctx.URLParam("id")
	}
	return route, nil
}

// Resolve matches the path and applies the guard: without a credential any
// screen but login resolves to login, remembering the requested path.
func (r *Router) Resolve(path string) (Route, error) {
	route, err := r.Match(path)
	if err != nil {
		return Route{}, err
	}
	if route.Public() || r.credential.Present() {
		return route, nil
	}
	zap.L().Debug("route guarded", zap.String("path", route.Path))
	return LoginFrom(route.Path), nil
}

func LoginFrom(from string) Route {
	if from == string(Login) {
		from = ""
	}
	return Route{Screen: Login, Path: string(Login), From: from}
}

// CasePath builds the detail path of one case.
func CasePath(id string) string {
	return strings.Replace(string(CaseDetail), "{id}", id, 1)
}

func clean(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// Navigator remembers the current route. Redirect is safe to call from the
// transport's unauthorized hook.
type Navigator struct {
	mu      sync.Mutex
	router  *Router
	current Route
}

func NewNavigator(router *Router) *Navigator {
	return &Navigator{router: router}
}

func (n *Navigator) Navigate(path string) (Route, error) {
	route, err := n.router.Resolve(path)
	if err != nil {
		return Route{}, err
	}
	n.mu.Lock()
	n.current = route
	n.mu.Unlock()
	return route, nil
}

func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Redirect sends the console to login, keeping the screen that was open.
func (n *Navigator) Redirect() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current.Screen == Login {
		return
	}
	zap.L().Info("redirecting to login", zap.String("from", n.current.Path))
	n.current = LoginFrom(n.current.Path)
}
