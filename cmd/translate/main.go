// Package main is the entry point for the description translation Lambda function.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/booknook/catalog-lambdas/internal/handler"
	"github.com/booknook/catalog-lambdas/internal/lambdafn"
	"github.com/booknook/catalog-lambdas/internal/response"
	"github.com/booknook/catalog-lambdas/internal/translation"
	"github.com/booknook/catalog-lambdas/internal/validation"
	"github.com/booknook/catalog-lambdas/internal/warmup"
)

func main() {
	ctx := context.Background()

	cfg, log, awsCfg := lambdafn.Bootstrap(ctx, "translate")

	h := handler.NewTranslate(
		translation.New(awsCfg),
		validation.New(cfg.Translate.Languages()),
		response.TranslateHeaders(cfg.CORS.AllowedOrigin),
		cfg.Translate,
	)

	fn := lambdafn.New(h.Handle, warmup.NewFromConfig(awsCfg), log)
	lambda.Start(fn.Invoke)
}
