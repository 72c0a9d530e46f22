// Package main is the entry point for a single Lambda function serving both
// catalog endpoints behind one API Gateway proxy integration.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/booknook/catalog-lambdas/internal/books"
	"github.com/booknook/catalog-lambdas/internal/handler"
	"github.com/booknook/catalog-lambdas/internal/lambdafn"
	"github.com/booknook/catalog-lambdas/internal/translation"
	"github.com/booknook/catalog-lambdas/internal/validation"
	"github.com/booknook/catalog-lambdas/internal/warmup"
)

func main() {
	ctx := context.Background()

	cfg, log, awsCfg := lambdafn.Bootstrap(ctx, "api")

	v := validation.New(cfg.Translate.Languages())
	router, err := handler.NewRouter(
		books.NewDynamoStore(awsCfg, cfg.Books.Table),
		translation.New(awsCfg),
		v,
		cfg,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build router")
	}

	fn := lambdafn.New(router.Route, warmup.NewFromConfig(awsCfg), log)
	lambda.Start(fn.Invoke)
}
