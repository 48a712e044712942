/*
Copyright (C) 2023  Carl-Philip Hänsch
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

import (
	"fmt"
	"strconv"
	"strings"
)

// Show is the canonical printer (spec §3.1 "Printer"), adapted from
// scm/printer.go's String(Scmer) to the exact variant set and notation
// spec §3.1 specifies.
func Show(v Value) string {
	switch v.kind {
	case KindNil:
		return "()"
	case KindSymbol:
		return v.Symbol()
	case KindInteger:
		return v.Int().String()
	case KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case KindRatio:
		return v.Ratio().Num().String() + "/" + v.Ratio().Denom().String()
	case KindComplex:
		c := v.Complex()
		sign := "+"
		if imag(c) < 0 {
			sign = ""
		}
		return strconv.FormatFloat(real(c), 'g', -1, 64) + sign + strconv.FormatFloat(imag(c), 'g', -1, 64) + "i"
	case KindBool:
		if v.Bool() {
			return "#t"
		}
		return "#f"
	case KindChar:
		return "#\\" + showChar(v.Char())
	case KindString:
		return quoteString(v.Str())
	case KindList:
		parts := make([]string, len(v.List()))
		for i, e := range v.List() {
			parts[i] = Show(e)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindDottedList:
		head := v.DottedHead()
		parts := make([]string, len(head))
		for i, e := range head {
			parts[i] = Show(e)
		}
		return "(" + strings.Join(parts, " ") + " . " + Show(v.DottedTail()) + ")"
	case KindVector:
		parts := make([]string, len(v.Vector()))
		for i, e := range v.Vector() {
			parts[i] = Show(e)
		}
		return "#(" + strings.Join(parts, " ") + ")"
	case KindPrimitive:
		return "<primitive>"
	case KindIOFunc:
		return "<primitive>"
	case KindClosure:
		c := v.Closure()
		params := make([]string, len(c.Params))
		for i, p := range c.Params {
			params[i] = Show(p)
		}
		paramStr := strings.Join(params, " ")
		if c.Vararg != "" {
			if paramStr == "" {
				paramStr = c.Vararg
			} else {
				paramStr += " . " + c.Vararg
			}
		}
		return fmt.Sprintf("(lambda (%s) ...)", paramStr)
	case KindPort:
		return "<IO port>"
	default:
		return "#<unknown>"
	}
}

func showChar(c rune) string {
	switch c {
	case ' ':
		return "space"
	case '\n':
		return "newline"
	default:
		return string(c)
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
