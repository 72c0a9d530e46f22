package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/booknook/catalog-lambdas/internal/books"
	"github.com/booknook/catalog-lambdas/internal/config"
	"github.com/booknook/catalog-lambdas/internal/errs"
	"github.com/booknook/catalog-lambdas/internal/proxy"
	"github.com/booknook/catalog-lambdas/internal/response"
	"github.com/booknook/catalog-lambdas/internal/translation"
	"github.com/booknook/catalog-lambdas/internal/validation"
)

// MsgRouteNotFound is returned for unknown method/path pairs.
const MsgRouteNotFound = "Not found"

// NewRouter serves GET /books, POST /translate and CORS preflight requests
// from one function.
func NewRouter(finder books.Finder, translator translation.Translator, v *validation.Validator, cfg *config.Config) (*proxy.Router, error) {
	lookupHeaders := response.LookupHeaders(cfg.CORS.AllowedOrigin)
	translateHeaders := response.TranslateHeaders(cfg.CORS.AllowedOrigin)

	lookup := NewBooks(finder, v, lookupHeaders)
	translate := NewTranslate(translator, v, translateHeaders, cfg.Translate)

	router := &proxy.Router{
		CatchAll: func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return lookupHeaders.Error(errs.NewNotFoundError(MsgRouteNotFound))
		},
	}
	router.GET("/books", lookup.Handle)
	router.POST("/translate", translate.Handle)
	router.OPTIONS(".*", func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return translateHeaders.NoContent(), nil
	})

	if !router.Valid() {
		return nil, router.BuildErrors()
	}

	return router, nil
}
