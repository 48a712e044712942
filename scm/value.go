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

import "math/big"

// Value is a tagged sum of every runtime value the evaluator can produce.
//
// A scripting-language value like this one could be packed into an
// unsafe 16-byte pointer+aux pair for cache-friendly storage in a hot
// query engine, but that packing can't be verified without a build, and
// this variant set is wider (Ratio, Complex, DottedList, Char, Port all
// get their own tag instead of folding into a generic "any" case), so
// Value keeps the familiar constructor/predicate/accessor shape (NewX,
// IsX) but stores the payload in a plain `any` field instead.
type Kind uint8

const (
	KindNil Kind = iota
	KindSymbol
	KindInteger
	KindFloat
	KindRatio
	KindComplex
	KindBool
	KindChar
	KindString
	KindList
	KindDottedList
	KindVector
	KindPrimitive
	KindIOFunc
	KindClosure
	KindPort
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindSymbol:
		return "symbol"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindRatio:
		return "ratio"
	case KindComplex:
		return "complex"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDottedList:
		return "dotted-list"
	case KindVector:
		return "vector"
	case KindPrimitive:
		return "primitive"
	case KindIOFunc:
		return "io-func"
	case KindClosure:
		return "closure"
	case KindPort:
		return "port"
	}
	return "unknown"
}

// Value is the Scmer of this implementation: a Kind tag plus a
// kind-specific payload.
type Value struct {
	kind    Kind
	payload any
}

func (v Value) Kind() Kind { return v.kind }

// dottedList is the payload of a KindDottedList value: a non-empty head
// sequence plus a tail that is never itself a List (normalized at
// construction, spec §3.1 invariant).
type dottedList struct {
	head []Value
	tail Value
}

// Closure pairs code with the environment captured at construction time
// (spec §3.1 Closure variant).
type Closure struct {
	Params  []Value // parameter names (Symbol values), in order
	Vararg  string  // name of the rest-parameter, "" if none
	AllArgs bool    // true for (lambda rest body...) where rest takes *all* args
	Body    []Value // non-empty sequence of body expressions
	Env     *Env
}

// Primitive is a pure builtin function (spec §3.1 PrimitiveFunc).
type Primitive struct {
	Name string
	Fn   func(args []Value) Value
}

// IOFunc is an effectful builtin function (spec §3.1 IOFunc).
type IOFunc struct {
	Name string
	Fn   func(args []Value) Value
}

//
// Constructors
//

func NewNil() Value           { return Value{KindNil, nil} }
func NewBool(b bool) Value    { return Value{KindBool, b} }
func NewChar(c rune) Value    { return Value{KindChar, c} }
func NewString(s string) Value { return Value{KindString, s} }
func NewSymbol(name string) Value { return Value{KindSymbol, name} }
func NewFloat(f float64) Value { return Value{KindFloat, f} }
func NewComplex(re, im float64) Value { return Value{KindComplex, complex(re, im)} }

// NewInt constructs an Integer Value from a native int64. Use NewBigInt
// for values already held as *big.Int (e.g. from the parser).
func NewInt(i int64) Value { return Value{KindInteger, big.NewInt(i)} }

func NewBigInt(i *big.Int) Value {
	if i == nil {
		i = new(big.Int)
	}
	return Value{KindInteger, new(big.Int).Set(i)}
}

// NewRatio builds a reduced ratio with a positive denominator (spec §3.1
// invariant); math/big.Rat guarantees both properties internally.
func NewRatio(num, den *big.Int) Value {
	r := new(big.Rat).SetFrac(num, den)
	return Value{KindRatio, r}
}

func NewBigRat(r *big.Rat) Value {
	if r == nil {
		r = new(big.Rat)
	}
	return Value{KindRatio, new(big.Rat).Set(r)}
}

// NewList constructs a proper list.
func NewList(items []Value) Value { return Value{KindList, items} }

// NewDottedList constructs an improper list. If tail is itself a List or
// a DottedList, it is flattened into head instead (spec §3.1 invariant:
// a DottedList's tail is never itself a List or DottedList) — this is
// what makes (cons x (cons y z)) build the single flat dotted pair
// (x y . z) instead of nesting dotted pairs inside each other.
func NewDottedList(head []Value, tail Value) Value {
	if tail.kind == KindList {
		merged := make([]Value, 0, len(head)+len(tail.List()))
		merged = append(merged, head...)
		merged = append(merged, tail.List()...)
		return NewList(merged)
	}
	if tail.kind == KindDottedList {
		dl := tail.payload.(dottedList)
		merged := make([]Value, 0, len(head)+len(dl.head))
		merged = append(merged, head...)
		merged = append(merged, dl.head...)
		return NewDottedList(merged, dl.tail)
	}
	if len(head) == 0 {
		// a "dotted list" with no head is just its tail
		return tail
	}
	h := make([]Value, len(head))
	copy(h, head)
	return Value{KindDottedList, dottedList{h, tail}}
}

func NewVector(elements []Value) Value { return Value{KindVector, elements} }

func NewPrimitive(name string, fn func(args []Value) Value) Value {
	return Value{KindPrimitive, &Primitive{name, fn}}
}

func NewIOFunc(name string, fn func(args []Value) Value) Value {
	return Value{KindIOFunc, &IOFunc{name, fn}}
}

func NewClosure(c *Closure) Value { return Value{KindClosure, c} }

func NewPort(p *Port) Value { return Value{KindPort, p} }

//
// Predicates
//

func (v Value) IsNil() bool     { return v.kind == KindNil }
func (v Value) IsSymbol() bool  { return v.kind == KindSymbol }
func (v Value) IsInteger() bool { return v.kind == KindInteger }
func (v Value) IsFloat() bool   { return v.kind == KindFloat }
func (v Value) IsRatio() bool   { return v.kind == KindRatio }
func (v Value) IsComplex() bool { return v.kind == KindComplex }
func (v Value) IsBool() bool    { return v.kind == KindBool }
func (v Value) IsChar() bool    { return v.kind == KindChar }
func (v Value) IsString() bool  { return v.kind == KindString }
func (v Value) IsList() bool    { return v.kind == KindList }
func (v Value) IsDottedList() bool { return v.kind == KindDottedList }
func (v Value) IsPair() bool    { return v.kind == KindList && len(v.List()) > 0 || v.kind == KindDottedList }
func (v Value) IsVector() bool  { return v.kind == KindVector }
func (v Value) IsPrimitive() bool { return v.kind == KindPrimitive }
func (v Value) IsIOFunc() bool  { return v.kind == KindIOFunc }
func (v Value) IsClosure() bool { return v.kind == KindClosure }
func (v Value) IsPort() bool    { return v.kind == KindPort }
func (v Value) IsCallable() bool {
	return v.kind == KindPrimitive || v.kind == KindIOFunc || v.kind == KindClosure
}

//
// Accessors. Each panics if called on the wrong Kind: callers are
// expected to check with the matching IsX predicate first.
//

func (v Value) Symbol() string {
	return v.payload.(string)
}

func (v Value) Bool() bool {
	return v.payload.(bool)
}

func (v Value) Char() rune {
	return v.payload.(rune)
}

func (v Value) Str() string {
	return v.payload.(string)
}

func (v Value) Int() *big.Int {
	return v.payload.(*big.Int)
}

func (v Value) Float() float64 {
	return v.payload.(float64)
}

func (v Value) Ratio() *big.Rat {
	return v.payload.(*big.Rat)
}

func (v Value) Complex() complex128 {
	return v.payload.(complex128)
}

func (v Value) List() []Value {
	return v.payload.([]Value)
}

func (v Value) Vector() []Value {
	return v.payload.([]Value)
}

// DottedHead/DottedTail decompose a KindDottedList value.
func (v Value) DottedHead() []Value {
	return v.payload.(dottedList).head
}
func (v Value) DottedTail() Value {
	return v.payload.(dottedList).tail
}

func (v Value) Primitive() *Primitive {
	return v.payload.(*Primitive)
}

func (v Value) IOFuncVal() *IOFunc {
	return v.payload.(*IOFunc)
}

func (v Value) Closure() *Closure {
	return v.payload.(*Closure)
}

func (v Value) Port() *Port {
	return v.payload.(*Port)
}

// ComputeSize approximates the Value's memory footprint, the same
// contract scm/scmer.go's Sizable interface asks implementors to
// satisfy (and that NonLockingReadMap's KeyGetter embeds) — used by the
// `value-size` diagnostic primitive (sizing.go).
func (v Value) ComputeSize() uint {
	const overhead = uint(16) // Kind + interface header, approx.
	switch v.kind {
	case KindNil, KindBool, KindChar, KindFloat, KindComplex:
		return overhead + 8
	case KindInteger:
		if v.Int() == nil {
			return overhead
		}
		return overhead + uint(len(v.Int().Bits()))*8
	case KindRatio:
		return overhead + uint(len(v.Ratio().Num().Bits())+len(v.Ratio().Denom().Bits()))*8
	case KindSymbol, KindString:
		return overhead + uint(len(v.Str()))
	case KindList:
		sz := overhead
		for _, e := range v.List() {
			sz += e.ComputeSize()
		}
		return sz
	case KindDottedList:
		sz := overhead
		for _, e := range v.DottedHead() {
			sz += e.ComputeSize()
		}
		return sz + v.DottedTail().ComputeSize()
	case KindVector:
		sz := overhead
		for _, e := range v.Vector() {
			sz += e.ComputeSize()
		}
		return sz
	case KindClosure:
		c := v.Closure()
		sz := overhead
		for _, b := range c.Body {
			sz += b.ComputeSize()
		}
		return sz
	default:
		return overhead
	}
}
