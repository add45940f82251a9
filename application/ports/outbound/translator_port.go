package outbound

import "context"

// TranslatorPort translates text into the target language. Callers fall back
// to the original text on error, so a failing translator degrades a single
// field, never a whole script.
type TranslatorPort interface {
	Translate(ctx context.Context, text string, targetLang string) (string, error)
}
