package i18n

import (
	"embed"
	"log/slog"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

type Localizer struct {
	bundle *goi18n.Bundle
}

// NewLocalizer loads the embedded message files of the given languages.
// Unknown languages are skipped.
func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range langs {
		if !ALLOW_LANG[lang] {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+lang+".toml"); err != nil {
			slog.Error("failed to load locale file", slog.String("lang", lang), slog.String("error", err.Error()))
		}
	}
	return &Localizer{bundle: bundle}
}

// Get returns the message for id in the best language matching acceptLanguage.
// The id itself is returned when no translation exists.
func (l *Localizer) Get(acceptLanguage, id string) string {
	loc := goi18n.NewLocalizer(l.bundle, acceptLanguage, DEFAULT_LANG)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
