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

// TestDefineOnlyAffectsInnermostFrame pins the §9 Open Question: define
// inside a nested frame creates a new binding there even if a variable
// of the same name already exists in an outer frame, instead of
// overwriting the outer binding the way set!/assign would.
func TestDefineOnlyAffectsInnermostFrame(t *testing.T) {
	outer := NewGlobalEnv()
	outer.define("x", NewInt(1))

	inner := outer.extend(nil, nil)
	inner.define("x", NewInt(2))

	innerVal, ok := inner.lookup("x")
	if !ok || innerVal.Int().Int64() != 2 {
		t.Fatalf("expected inner frame's x to be 2, got %v", innerVal)
	}
	outerVal, ok := outer.lookup("x")
	if !ok || outerVal.Int().Int64() != 1 {
		t.Fatalf("expected outer frame's x to remain 1, got %v", outerVal)
	}
}

func TestAssignWritesThroughToDefiningFrame(t *testing.T) {
	outer := NewGlobalEnv()
	outer.define("x", NewInt(1))
	inner := outer.extend(nil, nil)

	if _, ok := inner.assign("x", NewInt(9)); !ok {
		t.Fatalf("expected assign to find x in an outer frame")
	}
	v, _ := outer.lookup("x")
	if v.Int().Int64() != 9 {
		t.Fatalf("expected outer x to be mutated to 9, got %v", v)
	}
}

func TestAssignUnboundFails(t *testing.T) {
	env := NewGlobalEnv()
	if _, ok := env.assign("nope", NewInt(1)); ok {
		t.Fatalf("expected assign on an unbound variable to fail")
	}
}

func TestLookupInnermostFirst(t *testing.T) {
	outer := NewGlobalEnv()
	outer.define("x", NewInt(1))
	inner := outer.extend([]string{"x"}, []Value{NewInt(2)})

	v, ok := inner.lookup("x")
	if !ok || v.Int().Int64() != 2 {
		t.Fatalf("expected innermost binding to shadow outer, got %v", v)
	}
}

func TestSymbolsDeduplicatesAcrossFrames(t *testing.T) {
	outer := NewGlobalEnv()
	outer.define("a", NewInt(1))
	outer.define("b", NewInt(2))
	inner := outer.extend([]string{"a"}, []Value{NewInt(9)})

	syms := inner.Symbols()
	count := 0
	for _, s := range syms {
		if s == "a" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected \"a\" to appear exactly once in Symbols(), got %d", count)
	}
}
