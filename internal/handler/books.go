// Package handler provides the Lambda handlers of the book catalog: a title
// lookup against the record store and a text translation relay.
//
// Both follow the same steps: normalize the event, validate it, make one
// backend call, and format the response. Client errors become 400/404
// responses; backend faults are returned as errors for the platform to report.
package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/booknook/catalog-lambdas/internal/books"
	"github.com/booknook/catalog-lambdas/internal/errs"
	"github.com/booknook/catalog-lambdas/internal/request"
	"github.com/booknook/catalog-lambdas/internal/response"
	"github.com/booknook/catalog-lambdas/internal/validation"
)

// MsgBookNotFound is the 404 message of the lookup handler.
const MsgBookNotFound = "Book not found"

// Books looks a book up by its exact title.
type Books struct {
	finder    books.Finder
	validator *validation.Validator
	headers   response.Headers
}

// NewBooks returns a lookup handler answering with headers.
func NewBooks(finder books.Finder, validator *validation.Validator, headers response.Headers) *Books {
	return &Books{finder: finder, validator: validator, headers: headers}
}

// Handle processes GET /books?title=...
func (h *Books) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := zerolog.Ctx(ctx)

	q := request.BookQuery(req)
	if httpErr := h.validator.BookQuery(q); httpErr != nil {
		log.Debug().Str("reason", httpErr.Message).Msg("rejected lookup request")
		return h.headers.Error(httpErr)
	}

	book, err := h.finder.FindByTitle(ctx, q.Title)
	if errors.Is(err, books.ErrNotFound) {
		log.Info().Str("title", q.Title).Msg("book not found")
		return h.headers.Error(errs.NewNotFoundError(MsgBookNotFound))
	}
	if err != nil {
		log.Error().Err(err).Str("title", q.Title).Msg("book lookup failed")
		return events.APIGatewayProxyResponse{}, err
	}

	log.Debug().Str("title", book.Title()).Msg("book found")
	return h.headers.JSON(http.StatusOK, book)
}
