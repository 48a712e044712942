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
	"math/big"
	"strconv"
)

// eq? is structural equality over same-variant values: Lists are equal
// iff same length and pointwise-equal, DottedLists are normalized by
// appending their tail into list form and recursing, but — unlike
// equal? — it never coerces across kinds.
func eqScm(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindBool:
		return a.Bool() == b.Bool()
	case KindChar:
		return a.Char() == b.Char()
	case KindSymbol:
		return a.Symbol() == b.Symbol()
	case KindInteger:
		return a.Int().Cmp(b.Int()) == 0
	case KindFloat, KindRatio, KindComplex, KindString:
		return eqvScm(a, b)
	case KindList:
		as, bs := a.List(), b.List()
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !eqScm(as[i], bs[i]) {
				return false
			}
		}
		return true
	case KindDottedList:
		ah, bh := a.DottedHead(), b.DottedHead()
		if len(ah) != len(bh) {
			return false
		}
		for i := range ah {
			if !eqScm(ah[i], bh[i]) {
				return false
			}
		}
		return eqScm(a.DottedTail(), b.DottedTail())
	case KindVector:
		av, bv := a.Vector(), b.Vector()
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !eqScm(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// eqv? gives the same answers as eq?: exact comparison of Float/Ratio/
// Complex/String values and the same List/DottedList/Vector structural
// recursion, and — unlike equal? — it never crosses kinds (spec §4.4
// scenario: (eqv? "2" 2) -> #f).
func eqvScm(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindFloat:
		return a.Float() == b.Float()
	case KindRatio:
		return a.Ratio().Cmp(b.Ratio()) == 0
	case KindComplex:
		return a.Complex() == b.Complex()
	case KindString:
		return a.Str() == b.Str()
	case KindList:
		as, bs := a.List(), b.List()
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !eqvScm(as[i], bs[i]) {
				return false
			}
		}
		return true
	case KindDottedList:
		ah, bh := a.DottedHead(), b.DottedHead()
		if len(ah) != len(bh) {
			return false
		}
		for i := range ah {
			if !eqvScm(ah[i], bh[i]) {
				return false
			}
		}
		return eqvScm(a.DottedTail(), b.DottedTail())
	case KindVector:
		av, bv := a.Vector(), b.Vector()
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !eqvScm(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return eqScm(a, b)
	}
}

// equalScm is structural equality with cross-kind numeric/string
// coercion, grounded on compare.go's Equal (its tagInt/tagString
// cross-branches: a string and a number compare equal when the string
// parses to that number). A malformed numeric string simply fails the
// coercion attempt (big.Int.SetString's ok return / strconv's err),
// rather than needing a recover the way compare.go's Scmer accessors
// would panic on a bad type assertion.
func equalScm(a, b Value) bool {
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case KindList:
			as, bs := a.List(), b.List()
			if len(as) != len(bs) {
				return false
			}
			for i := range as {
				if !equalScm(as[i], bs[i]) {
					return false
				}
			}
			return true
		case KindDottedList:
			ah, bh := a.DottedHead(), b.DottedHead()
			if len(ah) != len(bh) {
				return false
			}
			for i := range ah {
				if !equalScm(ah[i], bh[i]) {
					return false
				}
			}
			return equalScm(a.DottedTail(), b.DottedTail())
		case KindVector:
			av, bv := a.Vector(), b.Vector()
			if len(av) != len(bv) {
				return false
			}
			for i := range av {
				if !equalScm(av[i], bv[i]) {
					return false
				}
			}
			return true
		}
		return eqvScm(a, b)
	}

	// cross-kind coercion: string<->number compares the string's parsed
	// numeric value against the number.
	if numStr, ok := numericString(a); ok && b.IsInteger() {
		return numStr.Cmp(b.Int()) == 0
	}
	if numStr, ok := numericString(b); ok && a.IsInteger() {
		return numStr.Cmp(a.Int()) == 0
	}
	if a.IsString() && b.IsFloat() {
		f, err := strconv.ParseFloat(a.Str(), 64)
		return err == nil && f == b.Float()
	}
	if b.IsString() && a.IsFloat() {
		f, err := strconv.ParseFloat(b.Str(), 64)
		return err == nil && f == a.Float()
	}
	return false
}

func numericString(v Value) (*big.Int, bool) {
	if !v.IsString() {
		return nil, false
	}
	return new(big.Int).SetString(v.Str(), 10)
}

func init_equality(env *Env) {
	DeclareTitle("Equality")
	Declare(env, &Declaration{
		"eq?", "structural comparison that never coerces across kinds", 2, 2,
		[]DeclarationParameter{{"a", "any", ""}, {"b", "any", ""}}, "bool",
		func(a []Value) Value { return NewBool(eqScm(a[0], a[1])) },
	})
	Declare(env, &Declaration{
		"eqv?", "exact comparison that never coerces across kinds", 2, 2,
		[]DeclarationParameter{{"a", "any", ""}, {"b", "any", ""}}, "bool",
		func(a []Value) Value { return NewBool(eqvScm(a[0], a[1])) },
	})
	Declare(env, &Declaration{
		"equal?", "structural comparison that coerces strings and numbers", 2, 2,
		[]DeclarationParameter{{"a", "any", ""}, {"b", "any", ""}}, "bool",
		func(a []Value) Value { return NewBool(equalScm(a[0], a[1])) },
	})
}
