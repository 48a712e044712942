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

import "math/big"

// unpackNum deliberately does not implement a full numeric tower
// (§9 Non-goal): every arithmetic primitive works on Integer only, but
// it reaches an Integer through the same coercions scm/alu.go's
// unpackNum does — a String that parses as an integer is accepted, and
// a single-element List is unwrapped recursively (so a primitive fed
// the result of some other primitive's accidental single-element
// wrapping still works).
func unpackNum(v Value) (*big.Int, bool) {
	switch v.Kind() {
	case KindInteger:
		return v.Int(), true
	case KindString:
		return new(big.Int).SetString(v.Str(), 10)
	case KindList:
		items := v.List()
		if len(items) == 1 {
			return unpackNum(items[0])
		}
	}
	return nil, false
}

func unpackInt(v Value) *big.Int {
	n, ok := unpackNum(v)
	if !ok {
		throwTypeMismatch("number", v)
	}
	return n
}

func init_arith(env *Env) {
	DeclareTitle("Arithmetic / Logic")

	Declare(env, &Declaration{
		"+", "adds two or more integers", 2, -1,
		[]DeclarationParameter{{"value...", "number", "values to add"}}, "number",
		func(a []Value) Value {
			v := new(big.Int).Set(unpackInt(a[0]))
			for _, x := range a[1:] {
				v.Add(v, unpackInt(x))
			}
			return NewBigInt(v)
		},
	})
	Declare(env, &Declaration{
		"-", "subtracts two or more integers from the first one", 2, -1,
		[]DeclarationParameter{{"value...", "number", "values"}}, "number",
		func(a []Value) Value {
			v := new(big.Int).Set(unpackInt(a[0]))
			for _, x := range a[1:] {
				v.Sub(v, unpackInt(x))
			}
			return NewBigInt(v)
		},
	})
	Declare(env, &Declaration{
		"*", "multiplies two or more integers", 2, -1,
		[]DeclarationParameter{{"value...", "number", "values"}}, "number",
		func(a []Value) Value {
			v := new(big.Int).Set(unpackInt(a[0]))
			for _, x := range a[1:] {
				v.Mul(v, unpackInt(x))
			}
			return NewBigInt(v)
		},
	})
	Declare(env, &Declaration{
		"/", "integer-divides the first value by every following value", 2, -1,
		[]DeclarationParameter{{"value...", "number", "values"}}, "number",
		func(a []Value) Value {
			v := new(big.Int).Set(unpackInt(a[0]))
			for _, x := range a[1:] {
				d := unpackInt(x)
				if d.Sign() == 0 {
					throwDefault("division by zero")
				}
				v.Quo(v, d)
			}
			return NewBigInt(v)
		},
	})
	Declare(env, &Declaration{
		"quotient", "truncating integer division", 2, 2,
		[]DeclarationParameter{{"a", "number", ""}, {"b", "number", ""}}, "number",
		func(a []Value) Value {
			b := unpackInt(a[1])
			if b.Sign() == 0 {
				throwDefault("division by zero")
			}
			return NewBigInt(new(big.Int).Quo(unpackInt(a[0]), b))
		},
	})
	Declare(env, &Declaration{
		"remainder", "remainder of truncating integer division", 2, 2,
		[]DeclarationParameter{{"a", "number", ""}, {"b", "number", ""}}, "number",
		func(a []Value) Value {
			b := unpackInt(a[1])
			if b.Sign() == 0 {
				throwDefault("division by zero")
			}
			return NewBigInt(new(big.Int).Rem(unpackInt(a[0]), b))
		},
	})
	Declare(env, &Declaration{
		"mod", "modulo of flooring integer division", 2, 2,
		[]DeclarationParameter{{"a", "number", ""}, {"b", "number", ""}}, "number",
		func(a []Value) Value {
			b := unpackInt(a[1])
			if b.Sign() == 0 {
				throwDefault("division by zero")
			}
			// big.Int.Mod is Euclidean (never negative); shift it so the
			// result takes the divisor's sign, as flooring division does.
			m := new(big.Int).Mod(unpackInt(a[0]), b)
			if m.Sign() != 0 && b.Sign() < 0 {
				m.Add(m, b)
			}
			return NewBigInt(m)
		},
	})
	// modulo is an alias for mod, kept for readability at call sites that
	// spell it out; mod is the name spec §4.4 actually specifies.
	if d, ok := declarations["mod"]; ok {
		Declare(env, &Declaration{"modulo", d.Desc, d.MinParameter, d.MaxParameter, d.Params, d.ReturnType, d.Fn})
	}

	DeclareTitle("Numeric comparisons")
	declareNumCompare(env, "=", func(c int) bool { return c == 0 })
	declareNumCompare(env, "<", func(c int) bool { return c < 0 })
	declareNumCompare(env, ">", func(c int) bool { return c > 0 })
	declareNumCompare(env, "<=", func(c int) bool { return c <= 0 })
	declareNumCompare(env, ">=", func(c int) bool { return c >= 0 })
	declareNumCompare(env, "/=", func(c int) bool { return c != 0 })

	DeclareTitle("Boolean logic")
	Declare(env, &Declaration{
		"&&", "logical and of exactly two booleans", 2, 2,
		[]DeclarationParameter{{"a", "bool", ""}, {"b", "bool", ""}}, "bool",
		func(a []Value) Value {
			return NewBool(requireBool(a[0]).Bool() && requireBool(a[1]).Bool())
		},
	})
	Declare(env, &Declaration{
		"||", "logical or of exactly two booleans", 2, 2,
		[]DeclarationParameter{{"a", "bool", ""}, {"b", "bool", ""}}, "bool",
		func(a []Value) Value {
			return NewBool(requireBool(a[0]).Bool() || requireBool(a[1]).Bool())
		},
	})
}

// declareNumCompare implements spec §4.4's integer comparisons: exactly
// two arguments, both coerced via unpackNum.
func declareNumCompare(env *Env, name string, ok func(cmp int) bool) {
	Declare(env, &Declaration{
		name, "compares two integers", 2, 2,
		[]DeclarationParameter{{"a", "number", ""}, {"b", "number", ""}}, "bool",
		func(a []Value) Value {
			return NewBool(ok(unpackInt(a[0]).Cmp(unpackInt(a[1]))))
		},
	})
}
