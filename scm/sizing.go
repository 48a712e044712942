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
	"github.com/google/btree"
	units "github.com/docker/go-units"
)

// btreeNew builds the sorted-string set Env.Symbols() populates for
// REPL completion; a tiny wrapper so env.go doesn't need to know btree's
// generic constructor signature.
func btreeNew() *btree.BTreeG[string] {
	return btree.NewG(32, func(a, b string) bool { return a < b })
}

// HumanSize renders a Value's approximate memory footprint
// (Value.ComputeSize, ported from scm/scmer.go's Sizable contract) the
// way the `value-size` primitive and the REPL's `:size` meta-command
// report it to a human.
func HumanSize(v Value) string {
	return units.HumanSize(float64(v.ComputeSize()))
}

func init_sizing(env *Env) {
	DeclareTitle("Diagnostics")
	Declare(env, &Declaration{
		"value-size", "approximates the memory footprint of a value and renders it in human units (e.g. \"1.2kB\")",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "the value to measure"},
		}, "string",
		func(a []Value) Value {
			return NewString(HumanSize(a[0]))
		},
	})
}
