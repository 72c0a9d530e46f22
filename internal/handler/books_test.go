package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknook/catalog-lambdas/internal/books"
	"github.com/booknook/catalog-lambdas/internal/domain"
)

func TestBooks_MissingTitle(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{name: "no query string", params: nil},
		{name: "other parameters only", params: map[string]string{"author": "Austen"}},
		{name: "empty title", params: map[string]string{"title": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &fakeFinder{}
			resp, err := newTestBooks(finder).Handle(context.Background(), lookupRequest(tt.params))

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `{"message": "Title parameter is required"}`, resp.Body)
			assert.Equal(t, testOrigin, resp.Headers["Access-Control-Allow-Origin"])
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])
			assert.Empty(t, finder.titles)
		})
	}
}

func TestBooks_NotFound(t *testing.T) {
	finder := &fakeFinder{err: books.ErrNotFound}

	resp, err := newTestBooks(finder).Handle(context.Background(), lookupRequest(map[string]string{"title": "Nope"}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Book not found"}`, resp.Body)
	assert.Equal(t, testOrigin, resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, []string{"Nope"}, finder.titles)
}

func TestBooks_Found(t *testing.T) {
	finder := &fakeFinder{book: domain.Book{
		"BookId":      "42",
		"Title":       "Dune",
		"Author":      "Frank Herbert",
		"Description": "Spice.",
	}}

	resp, err := newTestBooks(finder).Handle(context.Background(), lookupRequest(map[string]string{"title": "Dune"}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"BookId": "42", "Title": "Dune", "Author": "Frank Herbert", "Description": "Spice."}`, resp.Body)
	assert.Equal(t, map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": testOrigin,
	}, resp.Headers)
}

func TestBooks_TitlePassedVerbatim(t *testing.T) {
	finder := &fakeFinder{book: domain.Book{"Title": " the hobbit "}}

	_, err := newTestBooks(finder).Handle(context.Background(), lookupRequest(map[string]string{"title": " the hobbit "}))

	require.NoError(t, err)
	assert.Equal(t, []string{" the hobbit "}, finder.titles)
}

func TestBooks_BackendFault(t *testing.T) {
	cause := errors.New("ProvisionedThroughputExceededException")
	finder := &fakeFinder{err: errors.Wrap(cause, "failed to scan table BookCatalog")}

	resp, err := newTestBooks(finder).Handle(context.Background(), lookupRequest(map[string]string{"title": "Dune"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, resp.StatusCode)
}
