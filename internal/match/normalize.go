package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison:
// "OrderID", "order_id", "order-id" and "orderId" all become "orderid".
func NormalizeIdent(s string) string {
	return strings.Join(Tokenize(s), "")
}

// Tokenize splits an identifier on separators and CamelCase boundaries and
// lower-cases every token: "getHTTPResponse" -> [get http response].
func Tokenize(s string) []string {
	runes := []rune(s)

	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken is true at a lower-to-upper transition ("orderID" before 'I')
// and at the end of an acronym ("XMLParser" before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return unicode.IsDigit(r) != unicode.IsDigit(prev) && !isSeparator(prev)
	}

	if !unicode.IsUpper(prev) {
		return !isSeparator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
