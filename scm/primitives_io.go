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
	"io"
	"os"
)

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unpackPort(v Value) *Port {
	if !v.IsPort() {
		throwTypeMismatch("port", v)
	}
	return v.Port()
}

func init_io(env *Env) {
	DeclareTitle("I/O")

	DeclareIO(env, &Declaration{
		"apply", "calls a procedure with a list of arguments", 2, 2,
		[]DeclarationParameter{
			{"proc", "func", "procedure to call"},
			{"args", "list", "arguments"},
		}, "any",
		func(a []Value) Value {
			if !a[1].IsList() {
				throwTypeMismatch("list", a[1])
			}
			return Apply(a[0], a[1].List())
		},
	})

	DeclareIO(env, &Declaration{
		"open-input-file", "opens a file for reading", 1, 1,
		[]DeclarationParameter{{"path", "string", ""}}, "port",
		func(a []Value) Value {
			p, err := openInputPort(unpackStr(a[0]))
			if err != nil {
				throwDefault("open-input-file: " + err.Error())
			}
			registerPort(p)
			return NewPort(p)
		},
	})
	DeclareIO(env, &Declaration{
		"open-output-file", "opens a file for writing, truncating it", 1, 1,
		[]DeclarationParameter{{"path", "string", ""}}, "port",
		func(a []Value) Value {
			p, err := openOutputPort(unpackStr(a[0]))
			if err != nil {
				throwDefault("open-output-file: " + err.Error())
			}
			registerPort(p)
			return NewPort(p)
		},
	})
	DeclareIO(env, &Declaration{
		"close-input-port", "closes an input port, false on a non-port argument", 1, 1,
		[]DeclarationParameter{{"port", "port", ""}}, "bool",
		func(a []Value) Value {
			if !a[0].IsPort() {
				return NewBool(false)
			}
			p := a[0].Port()
			unregisterPort(p)
			return NewBool(p.Close() == nil)
		},
	})
	DeclareIO(env, &Declaration{
		"close-output-port", "closes an output port, false on a non-port argument", 1, 1,
		[]DeclarationParameter{{"port", "port", ""}}, "bool",
		func(a []Value) Value {
			if !a[0].IsPort() {
				return NewBool(false)
			}
			p := a[0].Port()
			unregisterPort(p)
			return NewBool(p.Close() == nil)
		},
	})
	DeclareIO(env, &Declaration{
		"read", "reads a single line from an input port", 1, 1,
		[]DeclarationParameter{{"port", "port", ""}}, "string",
		func(a []Value) Value {
			line, err := unpackPort(a[0]).ReadLine()
			if err == io.EOF {
				return NewBool(false)
			}
			if err != nil {
				throwDefault("read: " + err.Error())
			}
			return NewString(line)
		},
	})
	DeclareIO(env, &Declaration{
		"write", "writes a string to an output port", 2, 2,
		[]DeclarationParameter{{"port", "port", ""}, {"s", "string", ""}}, "bool",
		func(a []Value) Value {
			if err := unpackPort(a[0]).WriteString(unpackStr(a[1])); err != nil {
				throwDefault("write: " + err.Error())
			}
			return NewBool(true)
		},
	})
	DeclareIO(env, &Declaration{
		"read-contents", "reads every remaining byte from an input port as a string", 1, 1,
		[]DeclarationParameter{{"port", "port", ""}}, "string",
		func(a []Value) Value {
			s, err := unpackPort(a[0]).ReadAll()
			if err != nil {
				throwDefault("read-contents: " + err.Error())
			}
			return NewString(s)
		},
	})
	DeclareIO(env, &Declaration{
		"read-all", "parses every expression in a file and returns them as a list", 1, 1,
		[]DeclarationParameter{{"path", "string", ""}}, "list",
		func(a []Value) Value {
			path := unpackStr(a[0])
			data, err := readFile(path)
			if err != nil {
				throwDefault("read-all: " + err.Error())
			}
			program, perr := ParseProgram(path, data)
			if perr != nil {
				panic(perr)
			}
			return NewList(program)
		},
	})
	DeclareIO(env, &Declaration{
		"help", "prints documentation for every primitive, or for the named one", 0, 1,
		[]DeclarationParameter{{"name", "string", "function name"}}, "bool",
		func(a []Value) Value {
			name := ""
			if len(a) == 1 {
				name = unpackStr(a[0])
			}
			os.Stdout.WriteString(Help(name))
			return NewBool(true)
		},
	})
}
