package i18n

import "golang.org/x/text/language"

// DetectLanguage picks the initial language from an ordered list of
// user-preferred locale tags. The first entry wins; fallback is used when
// the list is empty. The chosen tag is truncated to its two-letter code, so
// "en-US" and "en" both yield "en". The result is not validated against the
// available translation documents; an unsupported choice simply fails at
// load time.
func DetectLanguage(prefs []string, fallback string) string {
	tag := fallback
	if len(prefs) > 0 {
		tag = prefs[0]
	}
	if len(tag) > 2 {
		tag = tag[:2]
	}
	return tag
}

// MatchLanguage negotiates the best supported language for an
// Accept-Language header value. The first supported entry doubles as the
// fallback when the header is empty, unparsable, or matches nothing.
func MatchLanguage(acceptLanguage string, supported []string) string {
	if len(supported) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tags = append(tags, language.Make(code))
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return supported[0]
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}
