package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func header(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(header("X-Root"))

	r.Get("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte("ok")) })

	r.Group(func(gr Router) {
		gr.Use(header("X-Group"))
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Post("/g", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusCreated) })
	})

	r.Route("/v1/filter", func(sr Router) {
		sr.Use(header("X-Route"))
		sr.Get("/dictionary", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte("dict")) })
		sr.Handle("/raw", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusAccepted)
		}))
	})

	cases := []struct {
		method, path string
		code         int
		headers      []string
		absent       []string
	}{
		{"GET", "/healthz", 200, []string{"X-Root"}, []string{"X-Group", "X-Route"}},
		{"POST", "/g", 201, []string{"X-Root", "X-Group"}, []string{"X-Route"}},
		{"GET", "/v1/filter/dictionary", 200, []string{"X-Root", "X-Route"}, []string{"X-Group"}},
		{"PUT", "/v1/filter/raw", 202, []string{"X-Route"}, nil},
		{"POST", "/healthz", 405, nil, nil},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if rec.Code != c.code {
			t.Fatalf("%s %s => %d, want %d", c.method, c.path, rec.Code, c.code)
		}
		for _, h := range c.headers {
			if rec.Header().Get(h) != "1" {
				t.Fatalf("%s %s missing %s", c.method, c.path, h)
			}
		}
		for _, h := range c.absent {
			if rec.Header().Get(h) != "" {
				t.Fatalf("%s %s unexpected %s", c.method, c.path, h)
			}
		}
	}
}
