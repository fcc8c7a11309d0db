package feed

import (
	"strings"
	"unicode"

	"github.com/ecloudclub/threadpool/stringx"
)

// tokenize lowercases and splits an article body into words. The raw HTTP
// response body is never reused after this call, so converting it with
// stringx.UnsafeToString avoids a copy that plain string(body) would
// otherwise make on every article — this runs once per article on the
// articles pool, so it is the hot path of the whole pipeline.
func tokenize(body []byte) []string {
	text := stringx.UnsafeToString(body)
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
