// Package translation sends text to Amazon Translate.
package translation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/pkg/errors"
)

// Translator is what the translation handler needs from the backend.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TranslateTextAPIClient is the subset of *translate.Client used here.
type TranslateTextAPIClient interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// AWSTranslator issues exactly one TranslateText call per Translate, with no
// retry beyond what the SDK client is configured for.
type AWSTranslator struct {
	client TranslateTextAPIClient
}

// NewAWSTranslator wraps an existing client.
func NewAWSTranslator(client TranslateTextAPIClient) *AWSTranslator {
	return &AWSTranslator{client: client}
}

// New builds an AWSTranslator on an Amazon Translate client for cfg.
func New(cfg aws.Config) *AWSTranslator {
	return NewAWSTranslator(translate.NewFromConfig(cfg))
}

// Translate returns text translated from sourceLang to targetLang.
func (t *AWSTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String(targetLang),
	})
	if err != nil {
		return "", errors.Wrapf(err, "translate %s→%s failed", sourceLang, targetLang)
	}

	return aws.ToString(out.TranslatedText), nil
}
