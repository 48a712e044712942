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

// spec §9 flags a non-exhaustive unary-predicate arity bug in the
// original: every type predicate below is declared with MinParameter=
// MaxParameter=1, so Declare's wrapper always enforces exactly one
// argument instead of only some predicates checking it.
func declarePredicate(env *Env, name, desc string, test func(Value) bool) {
	Declare(env, &Declaration{
		name, desc, 1, 1,
		[]DeclarationParameter{{"value", "any", "value to test"}}, "bool",
		func(a []Value) Value { return NewBool(test(a[0])) },
	})
}

func init_predicates(env *Env) {
	DeclareTitle("Type predicates")
	declarePredicate(env, "symbol?", "true if value is a symbol", func(v Value) bool { return v.IsSymbol() })
	declarePredicate(env, "string?", "true if value is a string", func(v Value) bool { return v.IsString() })
	declarePredicate(env, "number?", "true if value is an integer, float, ratio or complex", func(v Value) bool {
		return v.IsInteger() || v.IsFloat() || v.IsRatio() || v.IsComplex()
	})
	declarePredicate(env, "integer?", "true if value is an integer", func(v Value) bool { return v.IsInteger() })
	declarePredicate(env, "float?", "true if value is a float", func(v Value) bool { return v.IsFloat() })
	declarePredicate(env, "ratio?", "true if value is a ratio", func(v Value) bool { return v.IsRatio() })
	declarePredicate(env, "complex?", "true if value is a complex number", func(v Value) bool { return v.IsComplex() })
	declarePredicate(env, "bool?", "true if value is a boolean", func(v Value) bool { return v.IsBool() })
	declarePredicate(env, "char?", "true if value is a character", func(v Value) bool { return v.IsChar() })
	declarePredicate(env, "list?", "true if value is a list, proper or dotted", func(v Value) bool {
		return v.IsList() || v.IsDottedList()
	})
	declarePredicate(env, "pair?", "true if value is a non-empty list or a dotted list", func(v Value) bool { return v.IsPair() })
	declarePredicate(env, "vector?", "true if value is a vector", func(v Value) bool { return v.IsVector() })
	declarePredicate(env, "procedure?", "true if value is callable", func(v Value) bool { return v.IsCallable() })
	declarePredicate(env, "port?", "true if value is an I/O port", func(v Value) bool { return v.IsPort() })
	declarePredicate(env, "null?", "true if value is the empty list", func(v Value) bool {
		return v.IsList() && len(v.List()) == 0
	})
}
