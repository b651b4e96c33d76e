// Package plsql provides helpers for emitting SQL*Plus / PL/SQL script
// text: quote escaping, unistr codepoint literals, and a line writer
// wrapping dbms_output calls.
package plsql

import (
	"fmt"
	"io"
	"strings"
)

// Escape doubles every single quote so the text can sit inside a
// single-quote-delimited PL/SQL string literal. Ampersands are left
// alone; the emitted scripts disable substitution with "set define off".
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// HexCodePoint renders the rune's codepoint as exactly four lowercase
// hex digits, left-zero-padded.
func HexCodePoint(r rune) string {
	return fmt.Sprintf("%04x", r)
}

// Unistr renders the rune as an Oracle unistr literal, e.g.
// unistr('\0069') for 'i'.
func Unistr(r rune) string {
	return fmt.Sprintf(`unistr('\%s')`, HexCodePoint(r))
}

// Writer emits script lines to an output sink. The first write error is
// retained; subsequent calls become no-ops so callers can emit a whole
// script and check Err once.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Line writes a raw script line, formatted with args.
func (sw *Writer) Line(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format+"\n", args...)
}

// Put emits a dbms_output.put call printing the formatted text. Both the
// format string and every argument are quote-escaped before formatting.
func (sw *Writer) Put(format string, args ...string) {
	sw.Line("dbms_output.put('%s');", escapeFormat(format, args))
}

// PutLine emits a dbms_output.put_line call printing the formatted text.
// Both the format string and every argument are quote-escaped before
// formatting.
func (sw *Writer) PutLine(format string, args ...string) {
	sw.Line("dbms_output.put_line('%s');", escapeFormat(format, args))
}

// Err returns the first error encountered writing to the sink.
func (sw *Writer) Err() error {
	return sw.err
}

func escapeFormat(format string, args []string) string {
	format = Escape(format)
	if len(args) == 0 {
		return format
	}
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = Escape(a)
	}
	return fmt.Sprintf(format, escaped...)
}
