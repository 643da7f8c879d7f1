package router

import "encoding/json"

// Map is a shorthand for JSON-shaped payloads.
type Map map[string]interface{}

// Request is the tuple the view layer hands to the simulated backend. Query
// and Headers may be nil. Body is the raw JSON payload, if any.
type Request struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
}

// Response is what the view layer gets back: a status code and a JSON-shaped
// payload.
type Response struct {
	Status int
	Body   interface{}
}

// Handler processes one dispatched request through the context.
type Handler func(c *Ctx) error

// Ctx carries one request through a handler and collects the response.
type Ctx struct {
	req    *Request
	params map[string]string
	locals map[string]interface{}
	status int
	body   interface{}
}

func newCtx(req *Request, params map[string]string) *Ctx {
	return &Ctx{req: req, params: params, status: 200}
}

func (c *Ctx) Method() string { return c.req.Method }

func (c *Ctx) Path() string { return c.req.Path }

// BodyParser decodes the request body into out. An empty body is not an
// error; out keeps its zero value.
func (c *Ctx) BodyParser(out interface{}) error {
	if len(c.req.Body) == 0 {
		return nil
	}
	return json.Unmarshal(c.req.Body, out)
}

// Query returns the named query parameter, or the optional default.
func (c *Ctx) Query(key string, defaultValue ...string) string {
	if v, ok := c.req.Query[key]; ok && v != "" {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// Params returns the path parameter bound by the matched route pattern.
func (c *Ctx) Params(key string) string {
	return c.params[key]
}

// Get returns a request header value.
func (c *Ctx) Get(key string) string {
	if c.req.Headers == nil {
		return ""
	}
	return c.req.Headers[key]
}

// Locals stores or retrieves a request-scoped value, such as the resolved
// session profile.
func (c *Ctx) Locals(key string, value ...interface{}) interface{} {
	if len(value) > 0 {
		if c.locals == nil {
			c.locals = make(map[string]interface{})
		}
		c.locals[key] = value[0]
		return value[0]
	}
	if c.locals == nil {
		return nil
	}
	return c.locals[key]
}

// Status sets the response status code and returns the context for chaining.
func (c *Ctx) Status(code int) *Ctx {
	c.status = code
	return c
}

// JSON sets the response payload.
func (c *Ctx) JSON(body interface{}) error {
	c.body = body
	return nil
}

// SendStatus sets the status code with no payload.
func (c *Ctx) SendStatus(code int) error {
	c.status = code
	c.body = nil
	return nil
}

func (c *Ctx) StatusCode() int { return c.status }
