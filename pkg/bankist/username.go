package bankist

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Username returns the lowercase initials of every word in owner.
func Username(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(owner) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// DeriveUsernames assigns Username to every account from its owner.
// NewStore calls it once; Owner never changes afterwards.
func DeriveUsernames(accounts []*Account) {
	for _, a := range accounts {
		a.Username = Username(a.Owner)
	}
}
