package repositories

import "strings"

// diacriticFold maps the accented letters that show up in city names onto
// their ASCII base. A hand-maintained table keeps matching predictable; an
// unmatched city degrades to the synthesized-code / generic-guide path
// instead of erroring.
var diacriticFold = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a", "ā", "a",
	"ç", "c", "č", "c",
	"è", "e", "é", "e", "ê", "e", "ë", "e", "ě", "e", "ē", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i", "ī", "i",
	"ñ", "n", "ň", "n",
	"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o", "ø", "o", "ō", "o",
	"ù", "u", "ú", "u", "û", "u", "ü", "u", "ů", "u", "ū", "u",
	"ý", "y", "ÿ", "y",
	"ş", "s", "š", "s", "ß", "ss",
	"ž", "z", "ź", "z", "ż", "z",
	"ł", "l", "đ", "d", "ğ", "g", "ř", "r", "ť", "t",
)

// NormalizeCityKey lowercases, folds diacritics, drops punctuation and
// collapses whitespace so "São Paulo", "sao  paulo" and "SAO PAULO" all hit
// the same table entry.
func NormalizeCityKey(city string) string {
	s := strings.ToLower(strings.TrimSpace(city))
	s = diacriticFold.Replace(s)

	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '-' || r == '\'' || r == '.':
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}
