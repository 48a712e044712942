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
	"fmt"
	"strings"
)

// Declaration documents and registers one primitive. MinParameter/
// MaxParameter do double duty: they drive the (help) text and Declare
// wraps Fn so arity is actually enforced (a NumArgs error on every
// out-of-range call), centralizing the check instead of repeating it in
// every primitive body.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 means unbounded
	Params       []DeclarationParameter
	ReturnType   string
	Fn           func(args []Value) Value
}

type DeclarationParameter struct {
	Name string
	Type string // any | string | number | func | list | symbol | bool
	Desc string
}

var declarations = make(map[string]*Declaration)

var currentTitle string

// DeclareTitle records the section heading for the Declare calls that
// follow it, matching scm/declare.go's style. Help does not print these
// headings: its listing is flat and ungrouped.
func DeclareTitle(title string) { currentTitle = title }

// Declare registers a primitive in env (normally the global environment)
// and records it for (help). A nil Fn registers documentation only (used
// for special forms, which aren't ordinary callables).
func Declare(env *Env, def *Declaration) {
	declarations[def.Name] = def
	if def.Fn == nil {
		return
	}
	min, max, fn := def.MinParameter, def.MaxParameter, def.Fn
	wrapped := func(args []Value) Value {
		if len(args) < min || (max >= 0 && len(args) > max) {
			// NumArgs carries a single "expected" count; spec's concrete
			// scenarios only ever pin the lower bound (e.g. "+ - * /" -> NumArgs 2).
			throwNumArgs(min, args)
		}
		return fn(args)
	}
	env.define(def.Name, NewPrimitive(def.Name, wrapped))
}

// DeclareIO is Declare's effectful-primitive counterpart (spec's
// IOFunc), used for apply/open-*-file/read/write/read-contents/read-all.
func DeclareIO(env *Env, def *Declaration) {
	declarations[def.Name] = def
	if def.Fn == nil {
		return
	}
	min, max, fn := def.MinParameter, def.MaxParameter, def.Fn
	wrapped := func(args []Value) Value {
		if len(args) < min || (max >= 0 && len(args) > max) {
			throwNumArgs(min, args)
		}
		return fn(args)
	}
	env.define(def.Name, NewIOFunc(def.Name, wrapped))
}

// Help renders documentation for every registered primitive, or detail
// for a single one, matching scm/declare.go's (help) / (help "name").
func Help(fn string) string {
	var b strings.Builder
	if fn == "" {
		b.WriteString("Available functions:\n\n")
		for fname, def := range declarations {
			fmt.Fprintf(&b, "  %s: %s\n", fname, strings.SplitN(def.Desc, "\n", 2)[0])
		}
		b.WriteString("\nget further information with (help \"functionname\")\n")
		return b.String()
	}
	def, ok := declarations[fn]
	if !ok {
		throwDefault("function not found: " + fn)
	}
	fmt.Fprintf(&b, "Help for: %s\n===\n\n%s\n\n", def.Name, def.Desc)
	fmt.Fprintf(&b, "Allowed number of parameters: %d-%d\n\n", def.MinParameter, def.MaxParameter)
	for _, p := range def.Params {
		fmt.Fprintf(&b, " - %s (%s): %s\n", p.Name, p.Type, p.Desc)
	}
	return b.String()
}
