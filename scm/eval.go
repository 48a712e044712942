/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)
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

// Eval implements spec §5's evaluator. The restart label reproduces
// scm/scm.go's goto-restart trick: Go has no tail-call elimination, so
// `if`'s taken branch and a closure's tail application overwrite
// (env, expression) and jump back to the top of the loop instead of
// recursing, giving `if`/closure-tail-call the constant stack depth
// spec §5 asks for (spec explicitly does not require this for every
// position — see Non-goals — only these).
func Eval(env *Env, expression Value) (value Value) {
restart:
	switch expression.Kind() {
	case KindSymbol:
		name := expression.Symbol()
		v, ok := env.lookup(name)
		if !ok {
			throwUnboundVar("Getting an unbound variable", name)
		}
		return v
	case KindList:
		items := expression.List()
		if len(items) == 0 {
			// () self-evaluates to the empty list.
			return expression
		}
		if items[0].Kind() == KindSymbol {
			switch items[0].Symbol() {
			case "quote":
				if len(items) != 2 {
					throwBadSpecialForm("Unrecognized special form", expression)
				}
				return items[1]
			case "if":
				if len(items) != 4 {
					throwBadSpecialForm("Unrecognized special form", expression)
				}
				test := requireBool(Eval(env, items[1]))
				if test.Bool() {
					expression = items[2]
				} else {
					expression = items[3]
				}
				goto restart
			case "set!":
				if len(items) != 3 {
					throwBadSpecialForm("Unrecognized special form", expression)
				}
				name := requireSymbol(items[1], expression)
				v := Eval(env, items[2])
				if _, ok := env.assign(name, v); !ok {
					throwUnboundVar("Setting an unbound variable", name)
				}
				return v
			case "define":
				return evalDefine(env, items, expression)
			case "lambda":
				return evalLambda(env, items, expression)
			case "cond":
				return evalCond(env, items[1:])
			case "load":
				if len(items) != 2 {
					throwBadSpecialForm("Unrecognized special form", expression)
				}
				path := requireString(Eval(env, items[1]), expression)
				return loadFile(env, path)
			}
		}
		// application (spec §5 "application"): strict left-to-right
		// argument evaluation, then Apply.
		callee := Eval(env, items[0])
		args := make([]Value, len(items)-1)
		for i, a := range items[1:] {
			args[i] = Eval(env, a)
		}
		switch callee.Kind() {
		case KindClosure:
			c := callee.Closure()
			env = bindClosureArgs(c, args)
			if len(c.Body) == 0 {
				return NewNil()
			}
			for _, b := range c.Body[:len(c.Body)-1] {
				Eval(env, b)
			}
			expression = c.Body[len(c.Body)-1]
			goto restart // closure tail call
		default:
			return Apply(callee, args)
		}
	default:
		// every other Kind self-evaluates: Integer, Float, Ratio, Complex,
		// Bool, Char, String, Vector, DottedList, PrimitiveFunc, IOFunc,
		// Closure, Port.
		return expression
	}
}

func requireSymbol(v, form Value) string {
	if !v.IsSymbol() {
		throwBadSpecialForm("Unrecognized special form", form)
	}
	return v.Symbol()
}

func requireString(v, form Value) string {
	if !v.IsString() {
		throwBadSpecialForm("Unrecognized special form", form)
	}
	return v.Str()
}

// requireBool enforces the strict-Bool test spec §5 asks `if` and `cond`
// to use (as opposed to general Scheme truthiness, where every value
// other than #f counts as true).
func requireBool(v Value) Value {
	if !v.IsBool() {
		throwTypeMismatch("bool", v)
	}
	return v
}

// evalDefine handles both spec §5 `define` forms: the variable form
// `(define name form)` and the function-defining sugar
// `(define (name p...) body...)` / `(define (name p... . rest) body...)`.
// define always writes to the innermost frame (spec §9 Open Question,
// pinned by TestDefineOnlyAffectsInnermostFrame).
func evalDefine(env *Env, items []Value, form Value) Value {
	if len(items) < 3 {
		throwBadSpecialForm("Unrecognized special form", form)
	}
	switch items[1].Kind() {
	case KindSymbol:
		if len(items) != 3 {
			throwBadSpecialForm("Unrecognized special form", form)
		}
		name := items[1].Symbol()
		v := Eval(env, items[2])
		return env.define(name, v)
	case KindList:
		sig := items[1].List()
		if len(sig) == 0 || !sig[0].IsSymbol() {
			throwBadSpecialForm("Unrecognized special form", form)
		}
		name := sig[0].Symbol()
		closure := makeClosure(env, sig[1:], items[2:])
		return env.define(name, closure)
	case KindDottedList:
		head := items[1].DottedHead()
		if len(head) == 0 || !head[0].IsSymbol() {
			throwBadSpecialForm("Unrecognized special form", form)
		}
		name := head[0].Symbol()
		rest := requireSymbol(items[1].DottedTail(), form)
		closure := NewClosure(&Closure{Params: head[1:], Vararg: rest, Body: items[2:], Env: env})
		return env.define(name, closure)
	}
	throwBadSpecialForm("Unrecognized special form", form)
	return Value{}
}

// evalLambda handles spec §5's three lambda forms: fixed-arity
// `(lambda (p...) body...)`, vararg-with-rest `(lambda (p... . rest) body...)`,
// and all-args-as-list `(lambda rest body...)`.
func evalLambda(env *Env, items []Value, form Value) Value {
	if len(items) < 3 {
		throwBadSpecialForm("Unrecognized special form", form)
	}
	switch items[1].Kind() {
	case KindList:
		return makeClosure(env, items[1].List(), items[2:])
	case KindDottedList:
		head := items[1].DottedHead()
		rest := requireSymbol(items[1].DottedTail(), form)
		return NewClosure(&Closure{Params: head, Vararg: rest, Body: items[2:], Env: env})
	case KindSymbol:
		return NewClosure(&Closure{AllArgs: true, Vararg: items[1].Symbol(), Body: items[2:], Env: env})
	}
	throwBadSpecialForm("Unrecognized special form", form)
	return Value{}
}

func makeClosure(env *Env, params []Value, body []Value) Value {
	for _, p := range params {
		requireSymbol(p, NewList(params))
	}
	return NewClosure(&Closure{Params: params, Body: body, Env: env})
}

// evalCond handles spec §4.3 cond: every clause is exactly `(test expr)`
// or `(else expr)`; anything else (not a 2-element list) is a NumArgs 2
// error, not a parse-level BadSpecialForm, matching spec's own wording.
func evalCond(env *Env, clauses []Value) Value {
	for i, clause := range clauses {
		if !clause.IsList() || len(clause.List()) != 2 {
			parts := []Value{}
			if clause.IsList() {
				parts = clause.List()
			}
			throwNumArgs(2, parts)
		}
		parts := clause.List()
		isElse := parts[0].IsSymbol() && parts[0].Symbol() == "else"
		if isElse && i != len(clauses)-1 {
			throwBadSpecialForm("else clause must be last", clause)
		}
		var test Value
		if isElse {
			test = NewBool(true)
		} else {
			test = requireBool(Eval(env, parts[0]))
		}
		if !test.Bool() {
			continue
		}
		return Eval(env, parts[1])
	}
	throwDefault("Not viable alternative in cond")
	return Value{}
}

func bindClosureArgs(c *Closure, args []Value) *Env {
	if c.AllArgs {
		return c.Env.extend([]string{c.Vararg}, []Value{NewList(args)})
	}
	if c.Vararg != "" {
		if len(args) < len(c.Params) {
			throwNumArgs(len(c.Params), args)
		}
		names := make([]string, len(c.Params)+1)
		values := make([]Value, len(c.Params)+1)
		for i, p := range c.Params {
			names[i] = p.Symbol()
			values[i] = args[i]
		}
		names[len(c.Params)] = c.Vararg
		values[len(c.Params)] = NewList(args[len(c.Params):])
		return c.Env.extend(names, values)
	}
	if len(args) != len(c.Params) {
		throwNumArgs(len(c.Params), args)
	}
	names := make([]string, len(c.Params))
	for i, p := range c.Params {
		names[i] = p.Symbol()
	}
	return c.Env.extend(names, args)
}

// Apply implements spec §5's Apply: PrimitiveFunc, IOFunc and Closure
// are callable; anything else is NotFunction. Mirrors scm/scm.go's Apply,
// the code-duplicate of Eval's application branch needed because a
// non-tail call (e.g. inside an argument list) must return instead of
// looping.
func Apply(callee Value, args []Value) Value {
	switch callee.Kind() {
	case KindPrimitive:
		return callee.Primitive().Fn(args)
	case KindIOFunc:
		return callee.IOFuncVal().Fn(args)
	case KindClosure:
		c := callee.Closure()
		env := bindClosureArgs(c, args)
		var result Value = NewNil()
		for _, b := range c.Body {
			result = Eval(env, b)
		}
		return result
	default:
		throwNotFunction("Not a function", Show(callee))
	}
	return Value{}
}

// SafeEval is the top-level entry point for drivers (REPL, file runner):
// it converts a panicking *SchemeError into a Go error instead of
// propagating the panic (spec §7).
func SafeEval(env *Env, form Value) (result Value, err error) {
	defer recoverSchemeError(&err)
	result = Eval(env, form)
	return
}

// loadFile implements the `load` special form: parse the file, evaluate
// every top-level expression, and return the value of the last one
// (spec §5 "load").
func loadFile(env *Env, path string) Value {
	data, err := readFile(path)
	if err != nil {
		throwDefault("load: " + err.Error())
	}
	program, perr := ParseProgram(path, data)
	if perr != nil {
		panic(perr)
	}
	var result Value = NewNil()
	for _, expr := range program {
		result = Eval(env, expr)
	}
	return result
}
