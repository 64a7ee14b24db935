// Package i18n provides localized response messages. It uses the
// go-i18n library with JSON message files embedded into the binary,
// one file per supported language.
package i18n

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var bundle *i18n.Bundle

// Init parses the embedded locale files. Call once at startup.
func Init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			log.Printf("⚠️ Failed to parse locale file %s: %v", f.Name(), err)
		}
	}
}

// T translates a message ID into the given language. Unknown IDs come
// back as the ID itself; unknown languages fall back to English.
func T(lang, messageID string) string {
	if bundle == nil {
		Init()
	}
	localizer := i18n.NewLocalizer(bundle, lang, "en")
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
