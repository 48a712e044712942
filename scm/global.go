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

// NewStandardEnv builds the global environment with every primitive
// declared (spec §4 "standard library"), mirroring scm/scm.go's Init:
// one init_* call per concern, each living in its own primitives_*.go
// file so the Declare calls stay grouped by what they implement.
func NewStandardEnv() *Env {
	env := NewGlobalEnv()
	init_sizing(env)
	init_arith(env)
	init_predicates(env)
	init_equality(env)
	init_list(env)
	init_strings(env)
	init_io(env)
	return env
}
