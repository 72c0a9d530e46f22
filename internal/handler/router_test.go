package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknook/catalog-lambdas/internal/config"
	"github.com/booknook/catalog-lambdas/internal/domain"
	"github.com/booknook/catalog-lambdas/internal/validation"
)

func newTestRouter(t *testing.T, finder *fakeFinder, tr *fakeTranslator) func(method, path, body string, params map[string]string) (int, string, map[string]string) {
	t.Helper()

	cfg := config.Default()
	router, err := NewRouter(finder, tr, validation.New(cfg.Translate.Languages()), cfg)
	require.NoError(t, err)

	return func(method, path, body string, params map[string]string) (int, string, map[string]string) {
		req := lookupRequest(params)
		req.HTTPMethod = method
		req.Path = path
		req.Body = body

		resp, err := router.Route(context.Background(), req)
		require.NoError(t, err)
		return resp.StatusCode, resp.Body, resp.Headers
	}
}

func TestRouter_Books(t *testing.T) {
	finder := &fakeFinder{book: domain.Book{"Title": "Dune"}}
	do := newTestRouter(t, finder, &fakeTranslator{})

	status, body, headers := do("GET", "/books", "", map[string]string{"title": "Dune"})

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"Title": "Dune"}`, body)
	assert.Equal(t, testOrigin, headers["Access-Control-Allow-Origin"])
	assert.NotContains(t, headers, "Access-Control-Allow-Methods")
}

func TestRouter_Translate(t *testing.T) {
	tr := &fakeTranslator{result: "Привет"}
	do := newTestRouter(t, &fakeFinder{}, tr)

	status, body, headers := do("POST", "/translate/", `{"text": "Hello", "targetLang": "ru"}`, nil)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"translatedText": "Привет"}`, body)
	assert.Equal(t, "GET,POST,OPTIONS", headers["Access-Control-Allow-Methods"])
}

func TestRouter_Preflight(t *testing.T) {
	do := newTestRouter(t, &fakeFinder{}, &fakeTranslator{})

	for _, path := range []string{"/translate", "/books"} {
		status, body, headers := do("OPTIONS", path, "", nil)

		assert.Equal(t, http.StatusNoContent, status)
		assert.Empty(t, body)
		assert.Equal(t, "Content-Type", headers["Access-Control-Allow-Headers"])
		assert.Equal(t, testOrigin, headers["Access-Control-Allow-Origin"])
	}
}

func TestRouter_NotFound(t *testing.T) {
	finder := &fakeFinder{}
	do := newTestRouter(t, finder, &fakeTranslator{})

	status, body, headers := do("DELETE", "/books", "", map[string]string{"title": "Dune"})

	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message": "Not found"}`, body)
	assert.Equal(t, testOrigin, headers["Access-Control-Allow-Origin"])
	assert.Empty(t, finder.titles)
}
