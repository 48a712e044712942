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

func TestConsPrintsDottedPair(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, "(cons 1 (cons 2 3))")
	if Show(v) != "(1 2 . 3)" {
		t.Fatalf("expected \"(1 2 . 3)\", got %q", Show(v))
	}
}

func TestEqualCoercesStringAndNumber(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, `(equal? "2" 2)`)
	if !v.Bool() {
		t.Fatalf("expected (equal? \"2\" 2) to be #t")
	}
}

func TestEqvNeverCoercesAcrossKinds(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, `(eqv? "2" 2)`)
	if v.Bool() {
		t.Fatalf("expected (eqv? \"2\" 2) to be #f")
	}
}

func TestDivisionByZeroIsAnError(t *testing.T) {
	env := NewStandardEnv()
	form := mustParse(t, "(/ 1 0)")
	_, err := SafeEval(env, form)
	if err == nil {
		t.Fatalf("expected an error dividing by zero")
	}
}

func TestArithmeticRequiresIntegerOperands(t *testing.T) {
	env := NewStandardEnv()
	form := mustParse(t, `(+ 1 "x")`)
	_, err := SafeEval(env, form)
	if err == nil {
		t.Fatalf("expected a TypeMismatch error")
	}
	se, ok := err.(*SchemeError)
	if !ok || se.Kind != ErrTypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestPredicateArityIsAlwaysEnforced(t *testing.T) {
	env := NewStandardEnv()
	cases := []string{"(symbol? 1 2)", "(symbol?)", "(null?)", "(procedure? 1 2 3)"}
	for _, text := range cases {
		form := mustParse(t, text)
		_, err := SafeEval(env, form)
		if err == nil {
			t.Fatalf("expected NumArgs error for %q", text)
		}
		se, ok := err.(*SchemeError)
		if !ok || se.Kind != ErrNumArgs {
			t.Fatalf("expected NumArgs for %q, got %v", text, err)
		}
	}
}

func TestListOperations(t *testing.T) {
	env := NewStandardEnv()
	if v := evalText(t, env, "(car (list 1 2 3))"); v.Int().Int64() != 1 {
		t.Fatalf("expected car to return 1, got %v", v)
	}
	if v := evalText(t, env, "(length (list 1 2 3))"); v.Int().Int64() != 3 {
		t.Fatalf("expected length 3, got %v", v)
	}
	if v := evalText(t, env, "(append (list 1 2) (list 3 4))"); len(v.List()) != 4 {
		t.Fatalf("expected append to concatenate to 4 elements, got %v", v)
	}
	if v := evalText(t, env, "(reverse (list 1 2 3))"); v.List()[0].Int().Int64() != 3 {
		t.Fatalf("expected reverse to put 3 first, got %v", v)
	}
}

func TestStringPrimitives(t *testing.T) {
	env := NewStandardEnv()
	if v := evalText(t, env, `(string-append "foo" "bar")`); v.Str() != "foobar" {
		t.Fatalf("expected \"foobar\", got %v", v)
	}
	if v := evalText(t, env, `(string-length "hello")`); v.Int().Int64() != 5 {
		t.Fatalf("expected length 5, got %v", v)
	}
	if v := evalText(t, env, `(symbol->string 'abc)`); v.Str() != "abc" {
		t.Fatalf("expected \"abc\", got %v", v)
	}
}

func TestQuotientRemainderModulo(t *testing.T) {
	env := NewStandardEnv()
	if v := evalText(t, env, "(quotient 7 2)"); v.Int().Int64() != 3 {
		t.Fatalf("expected quotient 3, got %v", v)
	}
	if v := evalText(t, env, "(remainder 7 2)"); v.Int().Int64() != 1 {
		t.Fatalf("expected remainder 1, got %v", v)
	}
	if v := evalText(t, env, "(modulo -7 2)"); v.Int().Int64() != 1 {
		t.Fatalf("expected modulo 1, got %v", v)
	}
}

func TestValueSizeDiagnostic(t *testing.T) {
	env := NewStandardEnv()
	v := evalText(t, env, `(value-size "hello")`)
	if !v.IsString() || v.Str() == "" {
		t.Fatalf("expected a non-empty human-readable size, got %v", v)
	}
}
