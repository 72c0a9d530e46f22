// Package main is the entry point for the book lookup Lambda function.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/booknook/catalog-lambdas/internal/books"
	"github.com/booknook/catalog-lambdas/internal/handler"
	"github.com/booknook/catalog-lambdas/internal/lambdafn"
	"github.com/booknook/catalog-lambdas/internal/response"
	"github.com/booknook/catalog-lambdas/internal/validation"
	"github.com/booknook/catalog-lambdas/internal/warmup"
)

func main() {
	ctx := context.Background()

	cfg, log, awsCfg := lambdafn.Bootstrap(ctx, "getbook")

	h := handler.NewBooks(
		books.NewDynamoStore(awsCfg, cfg.Books.Table),
		validation.New(cfg.Translate.Languages()),
		response.LookupHeaders(cfg.CORS.AllowedOrigin),
	)

	fn := lambdafn.New(h.Handle, warmup.NewFromConfig(awsCfg), log)
	lambda.Start(fn.Invoke)
}
