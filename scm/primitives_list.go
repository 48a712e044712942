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

// pairHeadTail splits a List or DottedList into (first element, rest),
// the shape both car and cdr need (spec §4.4: cons/car/cdr operate on
// both proper and dotted lists, unlike scm/scm.go's Proc-era cons/car/cdr
// which only ever saw []Scmer).
func pairHeadTail(v Value) (head Value, tail Value) {
	switch v.Kind() {
	case KindList:
		items := v.List()
		if len(items) == 0 {
			throwTypeMismatch("pair", v)
		}
		if len(items) == 1 {
			return items[0], NewList(nil)
		}
		return items[0], NewList(items[1:])
	case KindDottedList:
		h := v.DottedHead()
		if len(h) == 1 {
			return h[0], v.DottedTail()
		}
		return h[0], NewDottedList(h[1:], v.DottedTail())
	}
	throwTypeMismatch("pair", v)
	return Value{}, Value{}
}

func init_list(env *Env) {
	DeclareTitle("Lists")
	Declare(env, &Declaration{
		"cons", "prepends an element to a list, forming a dotted pair if the second argument is not a list", 2, 2,
		[]DeclarationParameter{{"head", "any", ""}, {"tail", "any", ""}}, "list",
		func(a []Value) Value {
			return NewDottedList([]Value{a[0]}, a[1])
		},
	})
	Declare(env, &Declaration{
		"car", "returns the first element of a pair", 1, 1,
		[]DeclarationParameter{{"pair", "list", ""}}, "any",
		func(a []Value) Value {
			head, _ := pairHeadTail(a[0])
			return head
		},
	})
	Declare(env, &Declaration{
		"cdr", "returns everything but the first element of a pair", 1, 1,
		[]DeclarationParameter{{"pair", "list", ""}}, "any",
		func(a []Value) Value {
			_, tail := pairHeadTail(a[0])
			return tail
		},
	})
	Declare(env, &Declaration{
		"list", "builds a proper list from its arguments", 0, -1,
		[]DeclarationParameter{{"value...", "any", ""}}, "list",
		func(a []Value) Value {
			items := make([]Value, len(a))
			copy(items, a)
			return NewList(items)
		},
	})
	Declare(env, &Declaration{
		"length", "length of a proper list", 1, 1,
		[]DeclarationParameter{{"list", "list", ""}}, "number",
		func(a []Value) Value {
			if !a[0].IsList() {
				throwTypeMismatch("list", a[0])
			}
			return NewInt(int64(len(a[0].List())))
		},
	})
	Declare(env, &Declaration{
		"append", "concatenates proper lists", 0, -1,
		[]DeclarationParameter{{"list...", "list", ""}}, "list",
		func(a []Value) Value {
			out := make([]Value, 0)
			for _, l := range a {
				if !l.IsList() {
					throwTypeMismatch("list", l)
				}
				out = append(out, l.List()...)
			}
			return NewList(out)
		},
	})
	Declare(env, &Declaration{
		"reverse", "reverses a proper list", 1, 1,
		[]DeclarationParameter{{"list", "list", ""}}, "list",
		func(a []Value) Value {
			if !a[0].IsList() {
				throwTypeMismatch("list", a[0])
			}
			items := a[0].List()
			out := make([]Value, len(items))
			for i, v := range items {
				out[len(items)-1-i] = v
			}
			return NewList(out)
		},
	})
}
