// Package request normalizes API Gateway proxy events into the typed inputs
// the handlers validate. Missing fields are never an error here.
package request

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"

	"github.com/booknook/catalog-lambdas/internal/domain"
)

// BookQuery extracts the title query parameter, "" when absent.
func BookQuery(req events.APIGatewayProxyRequest) domain.BookQuery {
	// Indexing a nil map is safe and yields "".
	return domain.BookQuery{Title: req.QueryStringParameters["title"]}
}

// TranslateInput decodes the JSON body and applies defaultTargetLang only when
// the targetLang key is absent. A null or non-string targetLang becomes "",
// which no allowlist accepts. An absent or empty body is treated as {}.
func TranslateInput(req events.APIGatewayProxyRequest, defaultTargetLang string) (domain.TranslateInput, error) {
	raw, err := Body(req)
	if err != nil {
		return domain.TranslateInput{}, err
	}

	var body domain.TranslateBody
	var fields map[string]json.RawMessage
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return domain.TranslateInput{}, errors.Wrap(err, "failed to decode request body")
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return domain.TranslateInput{}, errors.Wrap(err, "failed to decode request body")
		}
	}

	in := domain.TranslateInput{TargetLang: defaultTargetLang}
	if body.Text != nil {
		in.Text = *body.Text
	}
	if v, ok := fields["targetLang"]; ok {
		in.TargetLang = stringValue(v)
	}

	return in, nil
}

func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Body returns the raw request body, decoding it when API Gateway delivered
// it base64 encoded.
func Body(req events.APIGatewayProxyRequest) ([]byte, error) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), nil
	}

	b, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode base64 request body")
	}

	return b, nil
}
