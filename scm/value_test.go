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

import (
	"math/big"
	"testing"
)

func TestNewDottedList_SplicesListTail(t *testing.T) {
	v := NewDottedList([]Value{NewInt(1)}, NewList([]Value{NewInt(2), NewInt(3)}))
	if !v.IsList() {
		t.Fatalf("expected splicing to yield a List, got %v", v.Kind())
	}
	items := v.List()
	if len(items) != 3 || items[0].Int().Int64() != 1 || items[2].Int().Int64() != 3 {
		t.Fatalf("unexpected splice result: %v", items)
	}
}

func TestNewDottedList_EmptyHeadIsJustTail(t *testing.T) {
	tail := NewInt(5)
	v := NewDottedList(nil, tail)
	if !v.IsInteger() || v.Int().Int64() != 5 {
		t.Fatalf("expected empty-head dotted list to collapse to its tail, got %v", v)
	}
}

func TestNewRatio_AlwaysReducedPositiveDenominator(t *testing.T) {
	v := NewRatio(big.NewInt(-4), big.NewInt(-6))
	if v.Ratio().Num().Int64() != 2 || v.Ratio().Denom().Int64() != 3 {
		t.Fatalf("expected -4/-6 to reduce to 2/3, got %s/%s", v.Ratio().Num(), v.Ratio().Denom())
	}
}

func TestIsPair(t *testing.T) {
	if NewList(nil).IsPair() {
		t.Fatalf("empty list should not be a pair")
	}
	if !NewList([]Value{NewInt(1)}).IsPair() {
		t.Fatalf("non-empty list should be a pair")
	}
	if !NewDottedList([]Value{NewInt(1)}, NewInt(2)).IsPair() {
		t.Fatalf("dotted list should be a pair")
	}
}
