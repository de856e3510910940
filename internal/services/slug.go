package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	turkishLower = cases.Lower(language.Turkish)
	slugSplitter = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify "İş Dünyası" -> "is-dunyasi". Türkçe büyük/küçük harf kurallarıyla
// küçültür, aksanları atar, harf/rakam dışını tireye çevirir.
func Slugify(name string) string {
	s := turkishLower.String(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "ı", "i")

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	s = slugSplitter.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
