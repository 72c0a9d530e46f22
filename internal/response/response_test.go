package response

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknook/catalog-lambdas/internal/errs"
)

const origin = "https://example.cloudfront.net"

func TestLookupHeaders(t *testing.T) {
	h := LookupHeaders(origin)

	assert.Equal(t, map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": origin,
	}, map[string]string(h))
}

func TestTranslateHeaders(t *testing.T) {
	h := TranslateHeaders(origin)

	assert.Equal(t, "application/json", h["Content-Type"])
	assert.Equal(t, origin, h["Access-Control-Allow-Origin"])
	assert.Equal(t, "GET,POST,OPTIONS", h["Access-Control-Allow-Methods"])
	assert.Equal(t, "Content-Type", h["Access-Control-Allow-Headers"])
}

func TestHeaders_JSON(t *testing.T) {
	h := LookupHeaders(origin)

	resp, err := h.JSON(http.StatusOK, map[string]any{"Title": "Dune"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"Title": "Dune"}`, resp.Body)
	assert.Equal(t, map[string]string(h), resp.Headers)
}

func TestHeaders_JSON_copiesHeaders(t *testing.T) {
	h := LookupHeaders(origin)

	resp, err := h.JSON(http.StatusOK, struct{}{})
	require.NoError(t, err)

	resp.Headers["Access-Control-Allow-Origin"] = "*"
	assert.Equal(t, origin, h["Access-Control-Allow-Origin"])
}

func TestHeaders_JSON_encodeError(t *testing.T) {
	_, err := LookupHeaders(origin).JSON(http.StatusOK, math.Inf(1))
	assert.Error(t, err)
}

func TestHeaders_Error(t *testing.T) {
	h := TranslateHeaders(origin)

	resp, err := h.Error(errs.NewBadRequestError("Text is required"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Text is required"}`, resp.Body)
	assert.Equal(t, map[string]string(h), resp.Headers)
}

func TestHeaders_NoContent(t *testing.T) {
	h := TranslateHeaders(origin)
	resp := h.NoContent()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Equal(t, map[string]string(h), resp.Headers)
}
