package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutes(t *testing.T) {
	var order []string
	middleware := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var instrumented []string
	rt := New(
		WithInstrumentation(func(path string, next http.Handler) http.Handler {
			instrumented = append(instrumented, path)
			return next
		}),
		WithRoutes(Route{
			Path:   "/v1/posts/:id",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
			}),
			Middlewares: []func(http.Handler) http.Handler{middleware("primeiro"), middleware("segundo")},
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/p1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p1", rec.Body.String())
	assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
	assert.Equal(t, []string{"/v1/posts/:id"}, instrumented)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
