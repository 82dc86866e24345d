package format

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when nothing better can be matched.
var DefaultLocale = language.AmericanEnglish

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Polish,
	language.Russian,
	language.Czech,
}

var matcher = language.NewMatcher(supported)

// ParseLocale resolves a BCP 47 tag against the supported display locales,
// falling back to fallback when raw is empty or unparseable.
func ParseLocale(raw string, fallback language.Tag) language.Tag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}

// NegotiateLocale picks a locale from an explicit override, then an
// Accept-Language header, then fallback.
func NegotiateLocale(override, acceptLanguage string, fallback language.Tag) language.Tag {
	if strings.TrimSpace(override) != "" {
		return ParseLocale(override, fallback)
	}
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}
