// Package lambdafn holds the cold-start bootstrap and per-invocation entry
// point shared by the catalog functions.
package lambdafn

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog"

	"github.com/booknook/catalog-lambdas/internal/config"
	"github.com/booknook/catalog-lambdas/internal/logger"
	"github.com/booknook/catalog-lambdas/internal/proxy"
	"github.com/booknook/catalog-lambdas/internal/warmup"
)

// Bootstrap loads configuration, the logger and the AWS SDK configuration
// once per process. Any failure is fatal.
func Bootstrap(ctx context.Context, service string) (*config.Config, zerolog.Logger, aws.Config) {
	boot := zerolog.New(os.Stderr).With().Timestamp().Str("service", service).Logger()

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("could not load config")
	}

	log := logger.New(cfg.Log, service)

	awsCfg, err := cfg.AWS.LoadAWS(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load AWS config")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("region", cfg.AWS.Region).
		Msg("function initialized")

	return cfg, log, awsCfg
}

// Function adapts an API Gateway handler to the raw Lambda payload so that
// warmup events can be told apart from requests.
type Function struct {
	handler proxy.HandlerFunc
	warmer  *warmup.Warmer
	log     zerolog.Logger
}

// New returns a Function serving handler.
func New(handler proxy.HandlerFunc, warmer *warmup.Warmer, log zerolog.Logger) *Function {
	return &Function{handler: handler, warmer: warmer, log: log}
}

// Invoke is passed to lambda.Start.
func (f *Function) Invoke(ctx context.Context, event json.RawMessage) (interface{}, error) {
	ctx = logger.WithInvocation(ctx, f.log)

	// Warmup detection must come before request decoding.
	if ev, ok := warmup.Parse(event); ok {
		return f.warmer.Handle(ctx, ev)
	}

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(event, &req); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("could not decode event")
		return nil, err
	}

	return f.handler(ctx, req)
}
