// Package nls holds the fixed table of Oracle linguistic sorts probed by
// the generator, along with the locale-aware upper-casing each sort is
// compared against.
package nls

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sort pairs an Oracle upper-casing expression with the language whose
// casing rules it is expected to follow. Format contains exactly one %s
// placeholder for the string operand.
type Sort struct {
	Name   string
	Format string
	Lang   string
}

// BaselineName is the control entry. Esperanto has no Oracle-specific
// casing rules, so its table is generated without exception probes and
// acts as a known-empty reference.
const BaselineName = "ESPERANTO"

// SQL interpolates the operand into the sort's upper-casing expression.
func (s Sort) SQL(operand string) string {
	return fmt.Sprintf(s.Format, operand)
}

// Tag returns the language tag for the sort. Legacy ISO codes in the
// table ("in", "iw") are canonicalized by language.Make.
func (s Sort) Tag() language.Tag {
	return language.Make(s.Lang)
}

// Upper returns the locale-aware upper-casing of r for this sort's
// language. The result may be longer than one character, e.g. ß
// upper-cases to SS.
func (s Sort) Upper(r rune) string {
	return cases.Upper(s.Tag()).String(string(r))
}

// Baseline reports whether this is the control entry.
func (s Sort) Baseline() bool {
	return s.Name == BaselineName
}

// All returns a copy of the full linguistic sort table in declaration
// order. Callers may reorder or modify the result freely.
func All() []Sort {
	return slices.Clone(sorts)
}

// ByName looks up a sort by its identifier.
func ByName(name string) (Sort, bool) {
	for _, s := range sorts {
		if s.Name == name {
			return s, true
		}
	}
	return Sort{}, false
}

// TestChars returns a copy of the probe characters: codepoints known to
// upper-case differently across locales or between Oracle and the Go
// libraries.
func TestChars() []rune {
	return slices.Clone(testChars)
}

// CharNote explains why a probe character's upper-casing is
// locale-sensitive. Returns "" for runes outside the probe set.
func CharNote(r rune) string {
	switch {
	case r == 'i':
		return "upper-cases to dotted İ under Turkic casing rules"
	case r == 'ß':
		return "may upper-case to SS or stay as-is, depending on the sort"
	case r >= 'Ά' && r <= 'ώ' && slices.Contains(testChars, r):
		return "Oracle strips the tonos when upper-casing"
	}
	return ""
}

var testChars = []rune{
	// i upper-cases to dotted İ under Turkic casing rules.
	'i',
	// Sharp s may upper-case to SS or stay as-is, depending on the sort.
	'ß',
	// Oracle strips the tonos from all of these when upper-casing.
	'Ά', 'Έ', 'Ή', 'Ί', 'Ό', 'Ύ', 'Ώ',
	'ά', 'έ', 'ή', 'ί', 'ό', 'ύ', 'ώ',
}
