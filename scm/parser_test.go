/*
Copyright (C) 2026 The goschemecore Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "testing"

func mustParse(t *testing.T, text string) Value {
	t.Helper()
	v, err := Parse("test", text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return v
}

func TestParseIntegerRadixFamily(t *testing.T) {
	cases := map[string]int64{
		"#b1011": 11,
		"#x1F":   31,
		"#o17":   15,
		"#d42":   42,
		"42":     42,
		"-7":     -7,
	}
	for text, want := range cases {
		v := mustParse(t, text)
		if !v.IsInteger() || v.Int().Int64() != want {
			t.Fatalf("Parse(%q) = %v, want integer %d", text, v, want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	v := mustParse(t, "3.14")
	if !v.IsFloat() || v.Float() != 3.14 {
		t.Fatalf("expected float 3.14, got %v", v)
	}
}

func TestParseRatio(t *testing.T) {
	v := mustParse(t, "6/4")
	if !v.IsRatio() || v.Ratio().Num().Int64() != 3 || v.Ratio().Denom().Int64() != 2 {
		t.Fatalf("expected 6/4 to reduce to 3/2, got %s/%s", v.Ratio().Num(), v.Ratio().Denom())
	}
}

func TestParseComplex(t *testing.T) {
	v := mustParse(t, "2+3i")
	if !v.IsComplex() {
		t.Fatalf("expected complex, got %v", v.Kind())
	}
	c := v.Complex()
	if real(c) != 2 || imag(c) != 3 {
		t.Fatalf("expected 2+3i, got %v", c)
	}
}

func TestParseBool(t *testing.T) {
	if !mustParse(t, "#t").Bool() {
		t.Fatalf("expected #t to parse true")
	}
	if mustParse(t, "#f").Bool() {
		t.Fatalf("expected #f to parse false")
	}
}

func TestParseCharNamed(t *testing.T) {
	if mustParse(t, `#\space`).Char() != ' ' {
		t.Fatalf("expected #\\space to parse as a space")
	}
	if mustParse(t, `#\newline`).Char() != '\n' {
		t.Fatalf("expected #\\newline to parse as a newline")
	}
	if mustParse(t, `#\a`).Char() != 'a' {
		t.Fatalf("expected #\\a to parse as 'a'")
	}
}

func TestParseString(t *testing.T) {
	v := mustParse(t, `"hello\nworld"`)
	if v.Str() != "hello\nworld" {
		t.Fatalf("unexpected string: %q", v.Str())
	}
}

func TestParseQuoteSugar(t *testing.T) {
	v := mustParse(t, "'x")
	if !v.IsList() || len(v.List()) != 2 {
		t.Fatalf("expected (quote x), got %v", v)
	}
	if v.List()[0].Symbol() != "quote" {
		t.Fatalf("expected quote symbol, got %v", v.List()[0])
	}
}

func TestParseQuasiquoteSugarSpellsCorrectly(t *testing.T) {
	v := mustParse(t, "`x")
	if v.List()[0].Symbol() != "quasiquote" {
		t.Fatalf(`expected "quasiquote", got %q`, v.List()[0].Symbol())
	}
}

func TestParseUnquoteSugar(t *testing.T) {
	v := mustParse(t, ",x")
	if v.List()[0].Symbol() != "unquote" {
		t.Fatalf(`expected "unquote", got %q`, v.List()[0].Symbol())
	}
}

func TestParseList(t *testing.T) {
	v := mustParse(t, "(+ 1 2)")
	if !v.IsList() || len(v.List()) != 3 {
		t.Fatalf("expected 3-element list, got %v", v)
	}
}

func TestParseDottedList(t *testing.T) {
	v := mustParse(t, "(1 2 . 3)")
	if !v.IsDottedList() {
		t.Fatalf("expected dotted list, got %v", v.Kind())
	}
	if len(v.DottedHead()) != 2 || v.DottedTail().Int().Int64() != 3 {
		t.Fatalf("unexpected dotted list shape: %v", v)
	}
}

func TestParseVector(t *testing.T) {
	v := mustParse(t, "#(1 2 3)")
	if !v.IsVector() || len(v.Vector()) != 3 {
		t.Fatalf("expected 3-element vector, got %v", v)
	}
}

func TestParseProgramMultipleExpressions(t *testing.T) {
	program, err := ParseProgram("test", "(+ 1 2) (* 3 4)")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(program) != 2 {
		t.Fatalf("expected 2 top-level expressions, got %d", len(program))
	}
}

func TestShowParseRoundTrip(t *testing.T) {
	cases := []string{"42", "3.14", "#t", "#f", "\"hi\"", "(1 2 3)", "#(1 2 3)"}
	for _, text := range cases {
		v := mustParse(t, text)
		printed := Show(v)
		reparsed, err := Parse("test", printed)
		if err != nil {
			t.Fatalf("round-trip reparse of %q failed: %v", printed, err)
		}
		if Show(reparsed) != printed {
			t.Fatalf("round trip mismatch: %q -> %q -> %q", text, printed, Show(reparsed))
		}
	}
}
