package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/booknook/catalog-lambdas/internal/config"
	"github.com/booknook/catalog-lambdas/internal/domain"
	"github.com/booknook/catalog-lambdas/internal/request"
	"github.com/booknook/catalog-lambdas/internal/response"
	"github.com/booknook/catalog-lambdas/internal/translation"
	"github.com/booknook/catalog-lambdas/internal/validation"
)

// Translate relays text to the translation backend.
type Translate struct {
	translator        translation.Translator
	validator         *validation.Validator
	headers           response.Headers
	sourceLang        string
	defaultTargetLang string
}

// NewTranslate returns a translation handler using the languages in cfg.
func NewTranslate(translator translation.Translator, validator *validation.Validator, headers response.Headers, cfg config.TranslateConfig) *Translate {
	return &Translate{
		translator:        translator,
		validator:         validator,
		headers:           headers,
		sourceLang:        cfg.SourceLang,
		defaultTargetLang: cfg.DefaultTargetLang,
	}
}

// Handle processes POST /translate with {"text": ..., "targetLang": ...}.
func (h *Translate) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := zerolog.Ctx(ctx)

	in, err := request.TranslateInput(req, h.defaultTargetLang)
	if err != nil {
		log.Error().Err(err).Msg("unreadable translation request")
		return events.APIGatewayProxyResponse{}, err
	}

	if httpErr := h.validator.TranslateInput(in); httpErr != nil {
		log.Debug().Str("target_lang", in.TargetLang).Str("reason", httpErr.Message).Msg("rejected translation request")
		return h.headers.Error(httpErr)
	}

	translated, err := h.translator.Translate(ctx, in.Text, h.sourceLang, in.TargetLang)
	if err != nil {
		log.Error().Err(err).Str("target_lang", in.TargetLang).Msg("translation failed")
		return events.APIGatewayProxyResponse{}, err
	}

	return h.headers.JSON(http.StatusOK, domain.TranslateResponse{TranslatedText: translated})
}
