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
	nlrm "github.com/launix-de/NonLockingReadMap"
)

// Cell is a mutable, aliasable binding slot. Closures that capture the
// same frame observe each other's set!/define through the shared *Cell
// — one indirection beyond a plain map value so multiple lookups alias
// the same mutable slot even if the frame itself were ever copied.
type Cell struct {
	Value Value
}

// frame is the storage strategy for one Environment level. mapFrame
// backs ordinary call frames (spec §4.2 "extend"): small, short-lived,
// written once per parameter and then read a handful of times.
// globalFrame backs the top-level frame: large, long-lived, read on
// essentially every symbol lookup in the program and written only at
// startup (primitive registration) and by top-level `define`.
type frame interface {
	get(name string) (*Cell, bool)
	define(name string, v Value) *Cell
	names() []string
}

type mapFrame map[string]*Cell

func (f mapFrame) get(name string) (*Cell, bool) {
	c, ok := f[name]
	return c, ok
}

func (f mapFrame) define(name string, v Value) *Cell {
	if c, ok := f[name]; ok {
		c.Value = v
		return c
	}
	c := &Cell{Value: v}
	f[name] = c
	return c
}

func (f mapFrame) names() []string {
	out := make([]string, 0, len(f))
	for n := range f {
		out = append(out, n)
	}
	return out
}

// binding is the element type stored in the global frame's
// NonLockingReadMap[binding, string] — it must satisfy nlrm.KeyGetter,
// i.e. GetKey() string + ComputeSize() uint.
type binding struct {
	name string
	cell *Cell
}

func (b binding) GetKey() string    { return b.name }
func (b binding) ComputeSize() uint { return uint(len(b.name)) + 16 + b.cell.Value.ComputeSize() }

type globalFrame struct {
	m *nlrm.NonLockingReadMap[binding, string]
}

func newGlobalFrame() *globalFrame {
	m := nlrm.New[binding, string]()
	return &globalFrame{m: &m}
}

func (f *globalFrame) get(name string) (*Cell, bool) {
	b := f.m.Get(name)
	if b == nil {
		return nil, false
	}
	return (*b).cell, true
}

func (f *globalFrame) define(name string, v Value) *Cell {
	if b := f.m.Get(name); b != nil {
		(*b).cell.Value = v
		return (*b).cell
	}
	c := &Cell{Value: v}
	f.m.Set(&binding{name: name, cell: c})
	return c
}

func (f *globalFrame) names() []string {
	out := make([]string, 0)
	for _, b := range f.m.GetAll() {
		out = append(out, (*b).name)
	}
	return out
}

// Env is one level of the lexical frame chain (spec §3.2). Environments
// are shared by reference: a Closure keeps a pointer to the *Env active
// at its construction, and multiple closures may point at the very same
// frame, so mutation through one is visible through all (spec §3.2
// "Ownership").
type Env struct {
	fr    frame
	Outer *Env
}

// NewGlobalEnv creates the outermost environment. Its frame is backed by
// NonLockingReadMap (see globalFrame above).
func NewGlobalEnv() *Env {
	return &Env{fr: newGlobalFrame()}
}

// extend pushes a fresh call frame (spec §4.2 "extend"), used for every
// function application. bindings are applied in order, later entries
// overwriting earlier ones with the same name (matches ordinary
// left-to-right parameter binding).
func (e *Env) extend(names []string, values []Value) *Env {
	f := make(mapFrame, len(names))
	child := &Env{fr: f, Outer: e}
	for i, n := range names {
		f.define(n, values[i])
	}
	return child
}

// lookup implements spec §4.2's "lookup": search frames innermost-first.
func (e *Env) lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.Outer {
		if c, ok := env.fr.get(name); ok {
			return c.Value, true
		}
	}
	return Value{}, false
}

// assign implements spec §4.2's "assign": find the cell and overwrite it;
// no new binding is ever created here.
func (e *Env) assign(name string, v Value) (Value, bool) {
	for env := e; env != nil; env = env.Outer {
		if c, ok := env.fr.get(name); ok {
			c.Value = v
			return v, true
		}
	}
	return Value{}, false
}

// define implements spec §4.2's "define": create-or-overwrite in the
// *innermost* frame only. This pins the §9 Open Question to the
// stricter reading documented in SPEC_FULL.md §1 — define never walks
// outward through the chain to overwrite an existing outer binding.
func (e *Env) define(name string, v Value) Value {
	e.fr.define(name, v)
	return v
}

// Define is define's exported form, for drivers (cmd/lisp) that need to
// inject host bindings (print, args) into the global frame before a
// program runs.
func (e *Env) Define(name string, v Value) Value {
	return e.define(name, v)
}

// Symbols returns every name bound anywhere in the frame chain, sorted
// and de-duplicated (innermost binding wins on a name collision) — used
// by the REPL's tab completion and by a `(help)` style introspection.
// Built with github.com/google/btree so name collisions across nested
// frames resolve in O(log n) instead of a linear re-scan per name.
func (e *Env) Symbols() []string {
	bt := btreeNew()
	for env := e; env != nil; env = env.Outer {
		for _, n := range env.fr.names() {
			bt.ReplaceOrInsert(n)
		}
	}
	out := make([]string, 0, bt.Len())
	bt.Ascend(func(n string) bool {
		out = append(out, n)
		return true
	})
	return out
}
