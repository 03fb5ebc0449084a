package android

import (
	"fmt"

	"golang.org/x/text/language"
)

// SplitLocaleTag parses a BCP-47 locale tag and returns its language and
// region subtags. The region is empty when the tag does not carry one.
func SplitLocaleTag(tag string) (lang, region string, err error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", "", fmt.Errorf("invalid locale tag %q: %w", tag, err)
	}

	base, _, reg := t.Raw()
	lang = base.String()
	// Raw reports ZZ for tags without an explicit region subtag.
	if s := reg.String(); s != "ZZ" {
		region = s
	}
	return lang, region, nil
}

// JoinLocaleTag combines a language and an optional region into a BCP-47
// locale tag, the inverse of SplitLocaleTag.
func JoinLocaleTag(lang, region string) string {
	if region == "" {
		return lang
	}
	return lang + "-" + region
}
