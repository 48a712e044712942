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

func evalText(t *testing.T, env *Env, text string) Value {
	t.Helper()
	form := mustParse(t, text)
	v, err := SafeEval(env, form)
	if err != nil {
		t.Fatalf("SafeEval(%q): %v", text, err)
	}
	return v
}

func TestEvalArithmetic(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, "(+ 2 3)")
	if v.Int().Int64() != 5 {
		t.Fatalf("expected 5, got %v", v)
	}
}

func TestEvalIfTakesFalseBranch(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, `(if #f "a" "b")`)
	if v.Str() != "b" {
		t.Fatalf("expected \"b\", got %v", v)
	}
}

func TestEvalIfRejectsNonBoolTest(t *testing.T) {
	env := NewStandardEnv()
	form := mustParse(t, `(if 0 "a" "b")`)
	_, err := SafeEval(env, form)
	if err == nil {
		t.Fatalf("expected a TypeMismatch error for a non-bool if test")
	}
	se, ok := err.(*SchemeError)
	if !ok || se.Kind != ErrTypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestEvalFactorialRecursion(t *testing.T) {
	env := NewStandardEnv()
	evalText(t, env, `
		(define (fact n)
		  (if (= n 0) 1 (* n (fact (- n 1)))))`)
	v := evalText(t, env, "(fact 10)")
	if v.Int().Int64() != 3628800 {
		t.Fatalf("expected 10! = 3628800, got %v", v)
	}
}

func TestEvalFactorialLargeUsesBigInt(t *testing.T) {
	env := NewStandardEnv()
	evalText(t, env, `
		(define (fact n)
		  (if (= n 0) 1 (* n (fact (- n 1)))))`)
	v := evalText(t, env, "(fact 25)")
	want := "15511210043330985984000000"
	if v.Int().String() != want {
		t.Fatalf("expected 25! = %s, got %s", want, v.Int().String())
	}
}

func TestEvalClosureCapturesMutableCounter(t *testing.T) {
	env := NewStandardEnv()
	evalText(t, env, `
		(define (mk)
		  (define x 0)
		  (lambda () (set! x (+ x 1)) x))`)
	evalText(t, env, "(define counter (mk))")
	first := evalText(t, env, "(counter)")
	second := evalText(t, env, "(counter)")
	if first.Int().Int64() != 1 || second.Int().Int64() != 2 {
		t.Fatalf("expected counter to accumulate state, got %v then %v", first, second)
	}
}

func TestEvalCondElse(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, `
		(cond
		  ((= 1 2) "no")
		  (else "yes"))`)
	if v.Str() != "yes" {
		t.Fatalf("expected \"yes\", got %v", v)
	}
}

func TestEvalCondNoMatchIsError(t *testing.T) {
	env := NewStandardEnv()
	form := mustParse(t, `(cond ((= 1 2) "no"))`)
	_, err := SafeEval(env, form)
	if err == nil {
		t.Fatalf("expected an error when no cond clause matches")
	}
}

func TestEvalSetOnUnboundVariableFails(t *testing.T) {
	env := NewStandardEnv()
	form := mustParse(t, "(set! nope 1)")
	_, err := SafeEval(env, form)
	if err == nil {
		t.Fatalf("expected an UnboundVar error")
	}
	se, ok := err.(*SchemeError)
	if !ok || se.Kind != ErrUnboundVar {
		t.Fatalf("expected UnboundVar, got %v", err)
	}
}

func TestEvalMalformedIfIsBadSpecialForm(t *testing.T) {
	env := NewStandardEnv()
	form := mustParse(t, "(if #t)")
	_, err := SafeEval(env, form)
	if err == nil {
		t.Fatalf("expected a BadSpecialForm error for a malformed if")
	}
	se, ok := err.(*SchemeError)
	if !ok || se.Kind != ErrBadSpecialForm {
		t.Fatalf("expected BadSpecialForm, got %v", err)
	}
}

func TestEvalLambdaVarargWithRest(t *testing.T) {
	env := NewStandardEnv()
	evalText(t, env, "(define (f a . rest) rest)")
	v := evalText(t, env, "(f 1 2 3)")
	if !v.IsList() || len(v.List()) != 2 {
		t.Fatalf("expected rest to capture (2 3), got %v", v)
	}
}

func TestEvalLambdaAllArgs(t *testing.T) {
	env := NewStandardEnv()
	evalText(t, env, "(define f (lambda all all))")
	v := evalText(t, env, "(f 1 2 3)")
	if !v.IsList() || len(v.List()) != 3 {
		t.Fatalf("expected all args captured as a list, got %v", v)
	}
}

func TestEvalQuote(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, "(quote (1 2 3))")
	if !v.IsList() || len(v.List()) != 3 {
		t.Fatalf("expected (1 2 3) unevaluated, got %v", v)
	}
}
