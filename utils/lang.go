package utils

import (
	"embed"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var locales embed.FS

var bundle *i18n.Bundle

// InitI18NBundle loads the bundled message files. English is the fallback.
func InitI18NBundle() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		panic(err)
	}
	for _, f := range files {
		data, err := locales.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			panic(err)
		}
		b.MustParseMessageFileBytes(data, f.Name())
	}

	bundle = b
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize returns the message for id in the first matching language, or
// fallback when the bundle is not loaded or has no such message
func Localize(id, fallback string, langs ...string) string {
	if bundle == nil {
		return fallback
	}

	msg, err := NewLocalizer(langs...).Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if err != nil {
		return fallback
	}
	return msg
}
