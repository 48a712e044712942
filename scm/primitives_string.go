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

// unpackStr coerces its argument to a string the way scm/alu.go's
// printed-form coercion does: String passes through; Integer and Bool
// are coerced to their canonical printed form; anything else is a
// TypeMismatch.
func unpackStr(v Value) string {
	switch v.Kind() {
	case KindString:
		return v.Str()
	case KindInteger, KindBool:
		return Show(v)
	}
	throwTypeMismatch("string", v)
	return ""
}

// declareStrCompare implements spec §4.4's string comparisons: exactly
// two arguments.
func declareStrCompare(env *Env, name string, ok func(cmp int) bool) {
	Declare(env, &Declaration{
		name, "compares two strings", 2, 2,
		[]DeclarationParameter{{"a", "string", ""}, {"b", "string", ""}}, "bool",
		func(a []Value) Value {
			x, y := unpackStr(a[0]), unpackStr(a[1])
			cmp := 0
			switch {
			case x < y:
				cmp = -1
			case x > y:
				cmp = 1
			}
			return NewBool(ok(cmp))
		},
	})
}

func init_strings(env *Env) {
	DeclareTitle("Strings")
	declareStrCompare(env, "string=?", func(c int) bool { return c == 0 })
	declareStrCompare(env, "string<?", func(c int) bool { return c < 0 })
	declareStrCompare(env, "string>?", func(c int) bool { return c > 0 })
	declareStrCompare(env, "string<=?", func(c int) bool { return c <= 0 })
	declareStrCompare(env, "string>=?", func(c int) bool { return c >= 0 })

	Declare(env, &Declaration{
		"string-length", "length of a string", 1, 1,
		[]DeclarationParameter{{"s", "string", ""}}, "number",
		func(a []Value) Value { return NewInt(int64(len([]rune(unpackStr(a[0]))))) },
	})
	Declare(env, &Declaration{
		"string-append", "concatenates strings", 0, -1,
		[]DeclarationParameter{{"value...", "string", ""}}, "string",
		func(a []Value) Value {
			out := ""
			for _, v := range a {
				out += unpackStr(v)
			}
			return NewString(out)
		},
	})
	Declare(env, &Declaration{
		"symbol->string", "converts a symbol to a string", 1, 1,
		[]DeclarationParameter{{"sym", "symbol", ""}}, "string",
		func(a []Value) Value {
			if !a[0].IsSymbol() {
				throwTypeMismatch("symbol", a[0])
			}
			return NewString(a[0].Symbol())
		},
	})
	Declare(env, &Declaration{
		"string->symbol", "converts a string to a symbol", 1, 1,
		[]DeclarationParameter{{"s", "string", ""}}, "symbol",
		func(a []Value) Value { return NewSymbol(unpackStr(a[0])) },
	})
}
