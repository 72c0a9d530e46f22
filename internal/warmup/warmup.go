// Package warmup answers scheduled keep-warm events so the catalog functions
// avoid cold starts on user traffic.
package warmup

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// Source identifies warmup events from the scheduler.
	Source = "warmup"

	// Delay keeps this instance busy long enough for the self-invocations to
	// land on other instances.
	Delay = 75 * time.Millisecond

	// MaxConcurrency caps the self-invocations one warmup event can trigger.
	MaxConcurrency = 50
)

// Event is the scheduled warmup payload.
type Event struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// Response is returned in place of an API response for warmup events.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       Status `json:"body"`
}

// Status reports how many instances were warmed.
type Status struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// InvokeAPIClient is the subset of the Lambda client used to self-invoke.
type InvokeAPIClient interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// Parse reports whether event is a warmup event. Any other payload, including
// API Gateway requests, yields false. Concurrency is clamped to
// [0, MaxConcurrency].
func Parse(event json.RawMessage) (*Event, bool) {
	var in struct {
		Source      *string  `json:"source"`
		Concurrency *float64 `json:"concurrency"`
	}
	if err := json.Unmarshal(event, &in); err != nil {
		return nil, false
	}

	if in.Source == nil || *in.Source != Source {
		return nil, false
	}

	ev := &Event{Source: Source}
	if in.Concurrency != nil && *in.Concurrency > 0 {
		ev.Concurrency = int(min(*in.Concurrency, MaxConcurrency))
	}

	return ev, true
}

// Warmer handles warmup events for one function.
type Warmer struct {
	client       InvokeAPIClient
	functionName string
	delay        time.Duration
}

// New returns a Warmer that self-invokes the running function via client.
func New(client InvokeAPIClient) *Warmer {
	return &Warmer{
		client:       client,
		functionName: lambdacontext.FunctionName,
		delay:        Delay,
	}
}

// NewFromConfig builds a Warmer on a Lambda client for cfg.
func NewFromConfig(cfg aws.Config) *Warmer {
	return New(lambdasdk.NewFromConfig(cfg))
}

// Handle counts this instance, asynchronously invokes the function
// ev.Concurrency more times (at most MaxConcurrency) and waits Delay so the
// instances overlap. Failed invocations are logged and not counted.
func (w *Warmer) Handle(ctx context.Context, ev *Event) (*Response, error) {
	count := min(max(ev.Concurrency, 0), MaxConcurrency)

	warmed, err := w.selfInvoke(ctx, count)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Int("concurrency", count).
			Int("invoked", warmed).
			Msg("warmup self-invoke failed")
	}

	time.Sleep(w.delay)

	return &Response{
		StatusCode: 200,
		Body: Status{
			Status:          "warm",
			InstancesWarmed: 1 + warmed,
		},
	}, nil
}

// selfInvoke fires count event invocations in parallel and returns how many
// were accepted. The error reports the first failure and the failure count.
func (w *Warmer) selfInvoke(ctx context.Context, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}

	// Children get concurrency 0 so they do not fan out again.
	payload, err := json.Marshal(Event{Source: Source, Concurrency: 0})
	if err != nil {
		return 0, errors.Wrap(err, "failed to encode warmup payload")
	}

	results := make(chan error, count)
	for range count {
		go func() {
			_, err := w.client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			results <- err
		}()
	}

	var (
		warmed int
		failed int
		first  error
	)
	for range count {
		if err := <-results; err != nil {
			failed++
			if first == nil {
				first = err
			}
			continue
		}
		warmed++
	}

	if failed > 0 {
		return warmed, errors.Wrapf(first, "%d of %d self-invocations failed", failed, count)
	}
	return warmed, nil
}
