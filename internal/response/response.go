// Package response formats API Gateway proxy responses with a fixed JSON
// content type and CORS header set per handler.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"

	"github.com/booknook/catalog-lambdas/internal/errs"
)

// Headers is an immutable header set. Every response built from it gets its
// own copy.
type Headers map[string]string

// LookupHeaders returns the header set of the lookup handler.
func LookupHeaders(origin string) Headers {
	return Headers{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": origin,
	}
}

// TranslateHeaders returns the header set of the translation handler, which
// also answers preflight requests.
func TranslateHeaders(origin string) Headers {
	return Headers{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

func (h Headers) clone() map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// JSON encodes v as the response body with the given status.
func (h Headers) JSON(status int, v any) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed to encode response body")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    h.clone(),
		Body:       string(b),
	}, nil
}

// Error renders a locally handled failure as {"message": ...}.
func (h Headers) Error(err *errs.HTTPError) (events.APIGatewayProxyResponse, error) {
	return h.JSON(err.Status, err)
}

// NoContent is the empty 204 answer to a preflight request.
func (h Headers) NoContent() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers:    h.clone(),
	}
}
