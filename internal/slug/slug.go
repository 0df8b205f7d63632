// Package slug builds URL- and filename-safe tokens from free text
package slug

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Whitespace as understood by browsers: ASCII whitespace incl. vertical tab, all Unicode separators and the BOM
const space = `[\s\v\p{Z}\x{FEFF}]+`

var (
	edges      = regexp.MustCompile(`^` + space + `|` + space + `$`)
	whitespace = regexp.MustCompile(space)
	illegal    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Make creates the slug for the given name
//
// The name is lowercased, surrounding whitespace is dropped and every remaining run of whitespace becomes a single
// hyphen. Everything that is not a lowercase ASCII letter, a digit or a hyphen is removed afterwards, so the result
// may be empty.
func Make(name string) string {
	s := cases.Lower(language.Und).String(name)
	s = edges.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return illegal.ReplaceAllString(s, "")
}
