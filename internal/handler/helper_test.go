package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/booknook/catalog-lambdas/internal/config"
	"github.com/booknook/catalog-lambdas/internal/domain"
	"github.com/booknook/catalog-lambdas/internal/response"
	"github.com/booknook/catalog-lambdas/internal/validation"
)

const testOrigin = "https://d31opzenb97zag.cloudfront.net"

type fakeFinder struct {
	book   domain.Book
	err    error
	titles []string
}

func (f *fakeFinder) FindByTitle(ctx context.Context, title string) (domain.Book, error) {
	f.titles = append(f.titles, title)
	return f.book, f.err
}

type translateCall struct {
	text, source, target string
}

type fakeTranslator struct {
	result string
	err    error
	calls  []translateCall
}

func (f *fakeTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	f.calls = append(f.calls, translateCall{text: text, source: sourceLang, target: targetLang})
	return f.result, f.err
}

func newTestBooks(f *fakeFinder) *Books {
	cfg := config.Default()
	return NewBooks(f, validation.New(cfg.Translate.Languages()), response.LookupHeaders(testOrigin))
}

func newTestTranslate(f *fakeTranslator) *Translate {
	cfg := config.Default()
	return NewTranslate(f, validation.New(cfg.Translate.Languages()), response.TranslateHeaders(testOrigin), cfg.Translate)
}

func lookupRequest(params map[string]string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Path:                  "/books",
		QueryStringParameters: params,
	}
}

func translateRequest(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/translate",
		Body:       body,
	}
}
