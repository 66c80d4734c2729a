// Package i18n resolves user-facing messages. Hungarian is the default
// language; English is served when the caller asks for it.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	Hungarian = "hu"
	English   = "en"
)

var matcher = language.NewMatcher([]language.Tag{
	language.Hungarian,
	language.English,
})

var defaultLang = Hungarian

// SetDefault changes the fallback language. Only hu and en are accepted.
func SetDefault(lang string) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case English:
		defaultLang = English
	case Hungarian:
		defaultLang = Hungarian
	}
}

func Default() string {
	return defaultLang
}

// Negotiate picks hu or en from an explicit ?lang= value first and the
// Accept-Language header second.
func Negotiate(explicit, acceptLanguage string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			return match(tag)
		}
	}

	if acceptLanguage == "" {
		return defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}
	return match(tags...)
}

func match(tags ...language.Tag) string {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultLang
	}
	if idx == 1 {
		return English
	}
	return Hungarian
}

// Message returns the localized text for code, falling back to the generic
// error text when the code is unknown.
func Message(lang, code string) string {
	m, ok := catalog[code]
	if !ok {
		m = catalog["internal_error"]
	}
	if lang == English {
		return m.en
	}
	return m.hu
}
