package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler(body interface{}) Handler {
	return func(c *Ctx) error {
		return c.Status(200).JSON(body)
	}
}

func TestDispatchExactMatch(t *testing.T) {
	r := New(0)
	r.Get("/programs", okHandler("programs"))
	r.Get("/resources", okHandler("resources"))

	resp := r.Dispatch(Request{Method: "GET", Path: "/resources"})
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "resources", resp.Body)
}

func TestDispatchMethodMustMatch(t *testing.T) {
	r := New(0)
	r.Get("/programs", okHandler("list"))

	resp := r.Dispatch(Request{Method: "POST", Path: "/programs"})
	assert.Equal(t, 404, resp.Status)
}

func TestDispatchWildcardBindsParam(t *testing.T) {
	r := New(0)
	r.Post("/programs/{id}/enroll", func(c *Ctx) error {
		return c.Status(200).JSON(c.Params("id"))
	})

	resp := r.Dispatch(Request{Method: "POST", Path: "/programs/p42/enroll"})
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "p42", resp.Body)
}

func TestDispatchRegistrationOrderWins(t *testing.T) {
	r := New(0)
	r.Get("/programs/my", okHandler("mine"))
	r.Get("/programs/{id}", okHandler("detail"))

	resp := r.Dispatch(Request{Method: "GET", Path: "/programs/my"})
	assert.Equal(t, "mine", resp.Body)

	resp = r.Dispatch(Request{Method: "GET", Path: "/programs/p1"})
	assert.Equal(t, "detail", resp.Body)
}

func TestDispatchUnmatchedFailsClosed(t *testing.T) {
	r := New(0)
	r.Get("/programs", okHandler("list"))

	resp := r.Dispatch(Request{Method: "GET", Path: "/nope"})
	assert.Equal(t, 404, resp.Status)
	assert.Equal(t, Map{"message": "Route not found"}, resp.Body)
}

func TestDispatchSegmentCountMustMatch(t *testing.T) {
	r := New(0)
	r.Get("/admin/resources/{id}", okHandler("one"))

	resp := r.Dispatch(Request{Method: "GET", Path: "/admin/resources"})
	assert.Equal(t, 404, resp.Status)

	resp = r.Dispatch(Request{Method: "GET", Path: "/admin/resources/r1/extra"})
	assert.Equal(t, 404, resp.Status)
}

func TestDispatchHandlerErrorIs500(t *testing.T) {
	r := New(0)
	r.Get("/boom", func(c *Ctx) error {
		return assert.AnError
	})

	resp := r.Dispatch(Request{Method: "GET", Path: "/boom"})
	assert.Equal(t, 500, resp.Status)
}

func TestDispatchAppliesArtificialLatency(t *testing.T) {
	delay := 30 * time.Millisecond
	r := New(delay)
	r.Get("/ping", okHandler("pong"))

	start := time.Now()
	r.Dispatch(Request{Method: "GET", Path: "/ping"})
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestDispatchLogsEveryRequest(t *testing.T) {
	r := New(0)
	r.Get("/ping", okHandler("pong"))

	var gotMethod, gotPath string
	var gotStatus int
	r.SetLogFunc(func(method, path string, status int, elapsed time.Duration) {
		gotMethod, gotPath, gotStatus = method, path, status
	})

	r.Dispatch(Request{Method: "GET", Path: "/missing"})
	assert.Equal(t, "GET", gotMethod)
	assert.Equal(t, "/missing", gotPath)
	assert.Equal(t, 404, gotStatus)
}

func TestAddRejectsMultipleWildcards(t *testing.T) {
	r := New(0)
	assert.Panics(t, func() {
		r.Get("/a/{x}/b/{y}", okHandler(nil))
	})
}

func TestCtxQueryDefaults(t *testing.T) {
	c := newCtx(&Request{Query: map[string]string{"category": "FITNESS"}}, nil)
	assert.Equal(t, "FITNESS", c.Query("category"))
	assert.Equal(t, "", c.Query("missing"))
	assert.Equal(t, "all", c.Query("missing", "all"))
}

func TestCtxBodyParserEmptyBody(t *testing.T) {
	c := newCtx(&Request{}, nil)
	var out struct {
		Mood string `json:"mood"`
	}
	assert.NoError(t, c.BodyParser(&out))
	assert.Equal(t, "", out.Mood)
}
