// Package domain contains the request and response types shared by the
// catalog handlers.
package domain

import "encoding/json"

// Book is a record from the catalog table, kept as a generic attribute map so
// every stored attribute is relayed to the caller unchanged.
type Book map[string]any

// Title returns the Title attribute, or "" when it is missing or not a string.
func (b Book) Title() string {
	title, _ := b["Title"].(string)
	return title
}

// BookQuery is the normalized lookup request.
type BookQuery struct {
	Title string
}

// TranslateBody is the JSON body of a translation request. Text is nil when
// absent or null. TargetLang keeps the raw value; whether the key was present
// at all is decided by the normalizer.
type TranslateBody struct {
	Text       *string         `json:"text"`
	TargetLang json.RawMessage `json:"targetLang"`
}

// TranslateInput is the normalized translation request with defaults applied.
type TranslateInput struct {
	Text       string
	TargetLang string
}

// TranslateResponse is the success body of the translation handler.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}
