// Package validation checks normalized requests and reports failures as
// 400 errors carrying the exact client message.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/booknook/catalog-lambdas/internal/domain"
	"github.com/booknook/catalog-lambdas/internal/errs"
)

const (
	MsgTitleRequired = "Title parameter is required"
	MsgTextRequired  = "Text is required"
)

// Validator is safe for concurrent use; build it once per process.
type Validator struct {
	validate     *validator.Validate
	allowedLangs []string
	langRule     string
}

// New returns a Validator that accepts target languages from allowedLangs.
func New(allowedLangs []string) *Validator {
	langs := make([]string, len(allowedLangs))
	copy(langs, allowedLangs)

	return &Validator{
		validate:     validator.New(),
		allowedLangs: langs,
		langRule:     "oneof=" + strings.Join(langs, " "),
	}
}

// BookQuery requires a non-empty title.
func (v *Validator) BookQuery(q domain.BookQuery) *errs.HTTPError {
	if err := v.validate.Var(q.Title, "required"); err != nil {
		return errs.NewBadRequestError(MsgTitleRequired)
	}
	return nil
}

// TranslateInput checks the target language first, then the text.
func (v *Validator) TranslateInput(in domain.TranslateInput) *errs.HTTPError {
	if !v.AllowedLang(in.TargetLang) {
		return errs.NewBadRequestError(InvalidLangMessage(v.allowedLangs))
	}
	if err := v.validate.Var(in.Text, "required"); err != nil {
		return errs.NewBadRequestError(MsgTextRequired)
	}
	return nil
}

// AllowedLang reports whether lang is in the allowlist. Empty is never allowed.
func (v *Validator) AllowedLang(lang string) bool {
	if lang == "" {
		return false
	}
	return v.validate.Var(lang, v.langRule) == nil
}

// InvalidLangMessage renders the allowlist as ['it', 'pl', 'ru'].
func InvalidLangMessage(allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, lang := range allowed {
		quoted[i] = "'" + lang + "'"
	}
	return fmt.Sprintf("Invalid target language. Choose one of [%s]", strings.Join(quoted, ", "))
}
