package router

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Router dispatches simulated requests against an ordered route table. The
// first registered route whose method and pattern match wins. Dispatches are
// serialized by a mutex so that each handler's load-mutate-save cycle runs to
// completion before the next one starts.
type Router struct {
	mu     sync.Mutex
	routes []route
	delay  time.Duration
	logFn  func(method, path string, status int, elapsed time.Duration)
}

type route struct {
	method   string
	pattern  string
	segments []string
	handler  Handler
}

// New creates a router that sleeps for delay before releasing every response,
// emulating network latency.
func New(delay time.Duration) *Router {
	return &Router{delay: delay}
}

// SetLogFunc installs a callback invoked after every dispatch.
func (r *Router) SetLogFunc(fn func(method, path string, status int, elapsed time.Duration)) {
	r.logFn = fn
}

// Add registers a route. A pattern is an exact path or a path with exactly one
// {name} wildcard segment binding an entity id. Registration order matters.
func (r *Router) Add(method, pattern string, h Handler) {
	segments := strings.Split(strings.Trim(pattern, "/"), "/")
	wildcards := 0
	for _, seg := range segments {
		if isWildcard(seg) {
			wildcards++
		}
	}
	if wildcards > 1 {
		panic(fmt.Sprintf("router: pattern %q has more than one wildcard segment", pattern))
	}
	r.routes = append(r.routes, route{method: method, pattern: pattern, segments: segments, handler: h})
}

func (r *Router) Get(pattern string, h Handler)    { r.Add("GET", pattern, h) }
func (r *Router) Post(pattern string, h Handler)   { r.Add("POST", pattern, h) }
func (r *Router) Put(pattern string, h Handler)    { r.Add("PUT", pattern, h) }
func (r *Router) Patch(pattern string, h Handler)  { r.Add("PATCH", pattern, h) }
func (r *Router) Delete(pattern string, h Handler) { r.Add("DELETE", pattern, h) }

// Dispatch runs the request through the first matching route and returns its
// response. Unmatched requests fail closed with 404 rather than falling
// through to anything outside the simulation.
func (r *Router) Dispatch(req Request) Response {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	if r.delay > 0 {
		time.Sleep(r.delay)
	}

	resp := r.dispatch(&req)
	if r.logFn != nil {
		r.logFn(req.Method, req.Path, resp.Status, time.Since(start))
	}
	return resp
}

func (r *Router) dispatch(req *Request) Response {
	for i := range r.routes {
		rt := &r.routes[i]
		if rt.method != req.Method {
			continue
		}
		params, ok := matchPath(rt.segments, req.Path)
		if !ok {
			continue
		}
		c := newCtx(req, params)
		if err := rt.handler(c); err != nil {
			return Response{Status: 500, Body: Map{"message": err.Error()}}
		}
		return Response{Status: c.status, Body: c.body}
	}
	return Response{Status: 404, Body: Map{"message": "Route not found"}}
}

// matchPath matches a request path against pattern segments. Literal segments
// must match exactly; a {name} segment matches any single segment and binds it
// as a path parameter.
func matchPath(segments []string, path string) (map[string]string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range segments {
		if isWildcard(seg) {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[seg[1:len(seg)-1]] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

func isWildcard(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
