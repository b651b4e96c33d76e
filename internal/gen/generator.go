// Package gen assembles the Oracle probe script. The script, run under
// SQL*Plus with serveroutput enabled, prints Go source for a lookup
// table recording where Oracle's upper-casing per linguistic sort
// diverges from the locale-aware result on the application side.
//
// The generator never computes a divergence itself: only the target
// database can answer whether its upper-casing matches, so every
// comparison is emitted as a conditional for the database to evaluate.
package gen

import (
	"io"
	"strconv"
	"time"

	"github.com/leapstack-labs/nlsupper/internal/nls"
	"github.com/leapstack-labs/nlsupper/internal/plsql"
)

// DefaultPackage is the package clause for the emitted Go source.
const DefaultPackage = "i18n"

// Generator emits the probe script for a fixed set of linguistic sorts
// and probe characters.
type Generator struct {
	// Package is the package name in the emitted Go source. Defaults to
	// DefaultPackage.
	Package string

	// Year is stamped into the emitted source header. Defaults to the
	// current year.
	Year int

	// Sorts and Chars default to the full nls tables. Overridable so
	// tests can probe small or synthetic inputs.
	Sorts []nls.Sort
	Chars []rune
}

// New returns a Generator over the full linguistic sort table.
func New() *Generator {
	return &Generator{
		Package: DefaultPackage,
		Year:    time.Now().Year(),
		Sorts:   nls.All(),
		Chars:   nls.TestChars(),
	}
}

// Generate writes the probe script to w. The only failure mode is the
// sink itself; the first write error is returned unmodified.
func (g *Generator) Generate(w io.Writer) error {
	sw := plsql.NewWriter(w)

	// Environment setup. define off so ampersands in emitted text are
	// not treated as substitution variables.
	sw.Line("set serveroutput on;")
	sw.Line("set define off;")
	sw.Line("/")
	sw.Line("BEGIN")

	g.header(sw)
	g.tableType(sw)
	g.tableEntries(sw)
	g.exceptionChars(sw)
	g.exceptionMapping(sw)
	g.accessors(sw)

	sw.Line("END;")
	return sw.Err()
}

// header prints the generated-file marker, the probe character list, and
// the package clause with imports.
func (g *Generator) header(sw *plsql.Writer) {
	sw.PutLine("// Code generated by nlsupper. DO NOT EDIT.")
	sw.PutLine("// Source: Oracle dbms_output probe script, %s run.", strconv.Itoa(g.Year))
	sw.PutLine("//")
	sw.PutLine("// Each entry codifies the difference between evaluating its Format")
	sw.PutLine("// expression in Oracle and locale-aware upper-casing for its Lang on")
	sw.PutLine("// the application side. Divergent characters are recorded in")
	sw.PutLine("// Exceptions and resolved through ExceptionMapping; ToUpper uses them")
	sw.PutLine("// to produce output consistent with the database for every probed")
	sw.PutLine("// character.")
	sw.PutLine("//")
	sw.PutLine("// Characters probed:")
	for _, c := range g.Chars {
		sw.PutLine("//   - U+%s", plsql.HexCodePoint(c))
	}
	sw.PutLine("package %s", g.Package)
	sw.PutLine("")
	sw.PutLine("import (")
	sw.PutLine("	\"fmt\"")
	sw.PutLine("")
	sw.PutLine("	\"golang.org/x/text/language\"")
	sw.PutLine(")")
	sw.PutLine("")
}

func (g *Generator) tableType(sw *plsql.Writer) {
	sw.PutLine("// Table records, for one linguistic sort, the characters whose Oracle")
	sw.PutLine("// upper-casing deviates from the locale-aware result.")
	sw.PutLine("type Table struct {")
	sw.PutLine("	Name       string")
	sw.PutLine("	Format     string")
	sw.PutLine("	Lang       string")
	sw.PutLine("	Exceptions string")
	sw.PutLine("}")
	sw.PutLine("")
}

// tableEntries emits one Tables element per sort. The Exceptions field
// is left open mid-line; the database appends each divergent character
// before the closing quote. The baseline entry is emitted with no
// probes so its exception string is known empty.
func (g *Generator) tableEntries(sw *plsql.Writer) {
	sw.PutLine("var Tables = []Table{")
	for _, s := range g.Sorts {
		sw.Put("	{%q, %q, %q, \"", s.Name, s.Format, s.Lang)
		if !s.Baseline() {
			for _, c := range g.Chars {
				sw.Line("IF %s <> '%s' THEN dbms_output.put(%s); END IF;",
					s.SQL(plsql.Unistr(c)), s.Upper(c), plsql.Unistr(c))
			}
		}
		sw.PutLine("\"},")
	}
	sw.PutLine("}")
	sw.PutLine("")
}

func (g *Generator) exceptionChars(sw *plsql.Writer) {
	sw.PutLine("// ExceptionChars returns the probed characters whose Oracle")
	sw.PutLine("// upper-casing under this sort deviates from the locale-aware result.")
	sw.PutLine("func (t Table) ExceptionChars() []rune {")
	sw.PutLine("	return []rune(t.Exceptions)")
	sw.PutLine("}")
	sw.PutLine("")
}

// exceptionMapping emits the divergence dispatch. The case bodies are
// printed by the database, one conditional per (sort, char) pair, each
// returning the Oracle result as a Go string literal with the
// locale-aware result trailing in a comment.
func (g *Generator) exceptionMapping(sw *plsql.Writer) {
	sw.PutLine("// ExceptionMapping returns the anticipated Oracle upper-casing of an")
	sw.PutLine("// exception character under this sort. It fails for any character not")
	sw.PutLine("// returned by ExceptionChars.")
	sw.PutLine("func (t Table) ExceptionMapping(r rune) (string, error) {")
	sw.PutLine("	switch r {")
	for _, c := range g.Chars {
		sw.PutLine("	case '%s':", string(c))
		sw.PutLine("		switch t.Name {")
		for _, s := range g.Sorts {
			if s.Baseline() {
				continue
			}
			sql := s.SQL(plsql.Unistr(c))
			sw.Line("IF %s <> '%s' THEN dbms_output.put_line('		case %q: return \"' || %s || '\", nil // %s'); END IF;",
				sql, s.Upper(c), s.Name, sql, s.Upper(c))
		}
		sw.PutLine("		}")
	}
	sw.PutLine("	}")
	sw.PutLine("	return \"\", fmt.Errorf(\"no oracle upper-case mapping for %q under %s\", r, t.Name)")
	sw.PutLine("}")
	sw.PutLine("")
}

// accessors emits the remaining declarations: format interpolation,
// locale, corrected upper-casing, and lookup by sort name. ToUpper
// delegates to the consuming package's corrector, which patches the
// locale-aware result with the exception mapping where applicable.
func (g *Generator) accessors(sw *plsql.Writer) {
	sw.PutLine("// SQL interpolates expr into the sort's upper-casing expression.")
	sw.PutLine("func (t Table) SQL(expr string) string {")
	sw.PutLine("	return fmt.Sprintf(t.Format, expr)")
	sw.PutLine("}")
	sw.PutLine("")
	sw.PutLine("// Locale returns the language whose casing rules this sort follows.")
	sw.PutLine("func (t Table) Locale() language.Tag {")
	sw.PutLine("	return language.Make(t.Lang)")
	sw.PutLine("}")
	sw.PutLine("")
	sw.PutLine("// ToUpper upper-cases s consistently with Oracle for this sort.")
	sw.PutLine("func (t Table) ToUpper(s string) string {")
	sw.PutLine("	return upperWithExceptions(t, s)")
	sw.PutLine("}")
	sw.PutLine("")
	sw.PutLine("// ForSort returns the table for a linguistic sort name.")
	sw.PutLine("func ForSort(name string) (Table, bool) {")
	sw.PutLine("	for _, t := range Tables {")
	sw.PutLine("		if t.Name == name {")
	sw.PutLine("			return t, true")
	sw.PutLine("		}")
	sw.PutLine("	}")
	sw.PutLine("	return Table{}, false")
	sw.PutLine("}")
}
