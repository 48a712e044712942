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

// The reader (spec §4.1) is built as a packrat/PEG grammar on top of
// github.com/launix-de/go-packrat/v2, the same library scm/packrat.go
// uses to build an in-language `(parser ...)` builtin elsewhere in the
// ecosystem. Packrat/PEG ordered choice backtracks by construction, which is
// exactly the "try more specific alternatives first" discipline spec
// §4.1 requires on the number/char family (a leading digit or `#` could
// start an Integer, Float, Ratio, Complex, Bool, Char or Vector): Complex
// is tried before Ratio before Float before the radix-prefixed integers
// before the plain decimal integer, and the whole number family is tried
// before falling through to a bare Symbol.
//
// Composite rule -> Value extraction follows scm/packrat.go's
// ExtractScmer convention: every custom rule wraps its underlying
// combinator in a small taggedParser whose Match result re-parents the
// inner Node under itself (lifted from packrat.go's (*ScmParser).Match),
// so a type-switch on Node.Parser recovers which grammar rule produced a
// given Node. AndParser is assumed to yield one child Node per
// sub-parser in sequence order; KleeneParser/MaybeParser are assumed to
// interleave item/separator children the way packrat.go's ExtractScmer
// steps over them (`i += 2`).

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	packrat "github.com/launix-de/go-packrat/v2"
)

// taggedParser re-parents an inner parser's match under itself so the
// extractor can recognize which grammar rule produced a Node.
type taggedParser struct {
	rule  string
	inner packrat.Parser
}

func (t *taggedParser) Match(s *packrat.Scanner) *packrat.Node {
	m := t.inner.Match(s)
	if m == nil {
		return nil
	}
	return &packrat.Node{Matched: m.Matched, Start: m.Start, Parser: t, Children: []*packrat.Node{m}}
}

// lazyParser lets grammar rules recurse into "expr" before expr itself
// has finished being constructed: list/vector/quote all reference expr,
// and expr's own alternatives include list/vector/quote.
type lazyParser struct {
	target packrat.Parser
}

func (l *lazyParser) Match(s *packrat.Scanner) *packrat.Node {
	return l.target.Match(s)
}

const symChars = `!$%&|*+\-/:<=>?@^_~`

var (
	atomRe    = `[A-Za-z` + symChars + `][A-Za-z0-9` + symChars + `]*`
	stringRe  = `"(\\.|[^"\\])*"`
	boolRe    = `#t|#f`
	charRe    = `#\\[A-Za-z0-9]+|#\\[^A-Za-z0-9]`
	complexRe = `[+-]?[0-9]+(\.[0-9]+)?[+-][0-9]+(\.[0-9]+)?i`
	ratioRe   = `[+-]?[0-9]+/[0-9]+`
	floatRe   = `[+-]?[0-9]+\.[0-9]+`
	hexRe     = `#x[0-9A-Fa-f]+`
	octRe     = `#o[0-7]+`
	binRe     = `#b[01]+`
	dRe       = `#d[+-]?[0-9]+`
	decRe     = `[+-]?[0-9]+`
)

var exprRef = &lazyParser{}
var grammar = buildGrammar()

func tag(rule string, p packrat.Parser) *taggedParser { return &taggedParser{rule, p} }

func atomTok(s string) packrat.Parser  { return packrat.NewAtomParser(s, false, true) }
func regexTok(r string) packrat.Parser { return packrat.NewRegexParser(r, false, true) }

func buildGrammar() packrat.Parser {
	complexP := tag("complex", regexTok(complexRe))
	ratioP := tag("ratio", regexTok(ratioRe))
	floatP := tag("float", regexTok(floatRe))
	hexP := tag("hex", regexTok(hexRe))
	octP := tag("oct", regexTok(octRe))
	binP := tag("bin", regexTok(binRe))
	dP := tag("decprefixed", regexTok(dRe))
	decP := tag("dec", regexTok(decRe))
	boolP := tag("bool", regexTok(boolRe))
	charP := tag("char", regexTok(charRe))
	stringP := tag("string", regexTok(stringRe))
	symbolP := tag("symbol", regexTok(atomRe))

	quotedP := tag("quoted", packrat.NewAndParser(atomTok("'"), exprRef))
	quasiP := tag("quasiquoted", packrat.NewAndParser(atomTok("`"), exprRef))
	unquotedP := tag("unquoted", packrat.NewAndParser(atomTok(","), exprRef))

	vectorP := tag("vector", packrat.NewAndParser(
		atomTok("#("),
		packrat.NewKleeneParser(exprRef, packrat.NewEmptyParser()),
		atomTok(")"),
	))

	listOrDottedP := tag("list", packrat.NewAndParser(
		atomTok("("),
		packrat.NewKleeneParser(exprRef, packrat.NewEmptyParser()),
		packrat.NewMaybeParser(packrat.NewAndParser(atomTok("."), exprRef)),
		atomTok(")"),
	))

	expr := packrat.NewOrParser(
		complexP, ratioP, floatP, hexP, octP, binP, dP, decP,
		boolP, charP,
		stringP,
		quotedP, quasiP, unquotedP,
		vectorP, listOrDottedP,
		symbolP,
	)
	exprRef.target = expr
	return expr
}

// kleeneItems steps over a Kleene/Many node's interleaved item/separator
// children (scm/packrat.go's ExtractScmer: `for i := 0; i < len(n.Children); i += 2`).
func kleeneItems(n *packrat.Node) []*packrat.Node {
	items := make([]*packrat.Node, 0, len(n.Children)/2+1)
	for i := 0; i < len(n.Children); i += 2 {
		items = append(items, n.Children[i])
	}
	return items
}

func valueOf(n *packrat.Node, source string) Value {
	tp, ok := n.Parser.(*taggedParser)
	if !ok {
		throwParser(source, 0, 0, "internal: untagged parse node")
	}
	inner := n.Children[0]
	switch tp.rule {
	case "complex":
		return parseComplexLiteral(n.Matched)
	case "ratio":
		parts := strings.SplitN(n.Matched, "/", 2)
		num, ok1 := new(big.Int).SetString(parts[0], 10)
		den, ok2 := new(big.Int).SetString(parts[1], 10)
		if !ok1 || !ok2 {
			throwParser(source, 0, 0, "malformed ratio literal: "+n.Matched)
		}
		return NewRatio(num, den)
	case "float":
		f, err := strconv.ParseFloat(n.Matched, 64)
		if err != nil {
			throwParser(source, 0, 0, "malformed float literal: "+n.Matched)
		}
		return NewFloat(f)
	case "hex":
		return parseRadixInt(source, n.Matched[2:], 16)
	case "oct":
		return parseRadixInt(source, n.Matched[2:], 8)
	case "bin":
		return parseRadixInt(source, n.Matched[2:], 2)
	case "decprefixed":
		return parseRadixInt(source, n.Matched[2:], 10)
	case "dec":
		return parseRadixInt(source, n.Matched, 10)
	case "bool":
		return NewBool(n.Matched == "#t")
	case "char":
		return parseCharLiteral(n.Matched)
	case "string":
		return NewString(unescapeString(n.Matched[1 : len(n.Matched)-1]))
	case "symbol":
		return NewSymbol(n.Matched)
	case "quoted":
		return NewList([]Value{NewSymbol("quote"), valueOf(inner.Children[1], source)})
	case "quasiquoted":
		// always emits the correctly spelled "quasiquote" symbol.
		return NewList([]Value{NewSymbol("quasiquote"), valueOf(inner.Children[1], source)})
	case "unquoted":
		return NewList([]Value{NewSymbol("unquote"), valueOf(inner.Children[1], source)})
	case "vector":
		items := kleeneItems(inner.Children[1])
		elems := make([]Value, len(items))
		for i, it := range items {
			elems[i] = valueOf(it, source)
		}
		return NewVector(elems)
	case "list":
		items := kleeneItems(inner.Children[1])
		head := make([]Value, len(items))
		for i, it := range items {
			head[i] = valueOf(it, source)
		}
		maybeNode := inner.Children[2]
		if len(maybeNode.Children) > 0 {
			dotPair := maybeNode.Children[0]
			if len(head) == 0 {
				throwParser(source, 0, 0, "dotted list requires at least one element before '.'")
			}
			tail := valueOf(dotPair.Children[1], source)
			return NewDottedList(head, tail)
		}
		return NewList(head)
	}
	throwParser(source, 0, 0, "internal: unknown parse rule "+tp.rule)
	return NewNil()
}

func parseRadixInt(source, digits string, base int) Value {
	sign := ""
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		if digits[0] == '-' {
			sign = "-"
		}
		digits = digits[1:]
	}
	i, ok := new(big.Int).SetString(sign+digits, base)
	if !ok {
		throwParser(source, 0, 0, fmt.Sprintf("malformed base-%d integer literal", base))
	}
	return NewBigInt(i)
}

var complexSplitRe = regexp.MustCompile(`^([+-]?[0-9]+(?:\.[0-9]+)?)([+-][0-9]+(?:\.[0-9]+)?)i$`)

func parseComplexLiteral(s string) Value {
	m := complexSplitRe.FindStringSubmatch(s)
	if m == nil {
		throwParser("", 0, 0, "malformed complex literal: "+s)
	}
	re, err1 := strconv.ParseFloat(m[1], 64)
	im, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		throwParser("", 0, 0, "malformed complex literal: "+s)
	}
	return NewComplex(re, im)
}

func parseCharLiteral(s string) Value {
	body := s[2:] // strip "#\"
	switch body {
	case "space":
		return NewChar(' ')
	case "newline":
		return NewChar('\n')
	}
	runes := []rune(body)
	return NewChar(runes[0])
}

func unescapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Parse reads exactly one expression from text (spec §4.1: "a successful
// parse of expr consumes exactly one expression").
func Parse(source, text string) (v Value, err error) {
	defer recoverSchemeError(&err)
	scanner := packrat.NewScanner(text, packrat.SkipWhitespaceAndCommentsRegex)
	node, perr := packrat.Parse(grammar, scanner)
	if perr != nil || node == nil {
		throwParser(source, 0, 0, fmt.Sprint(perr))
	}
	return valueOf(node, source), nil
}

// ParseProgram reads a whitespace-separated sequence of expressions until
// end of input (spec §4.1 "parse-program").
func ParseProgram(source, text string) (program []Value, err error) {
	defer recoverSchemeError(&err)
	root := packrat.NewAndParser(
		packrat.NewKleeneParser(exprRef, packrat.NewEmptyParser()),
		packrat.NewEndParser(true),
	)
	scanner := packrat.NewScanner(text, packrat.SkipWhitespaceAndCommentsRegex)
	node, perr := packrat.Parse(root, scanner)
	if perr != nil || node == nil {
		throwParser(source, 0, 0, fmt.Sprint(perr))
	}
	items := kleeneItems(node.Children[0])
	program = make([]Value, len(items))
	for i, it := range items {
		program[i] = valueOf(it, source)
	}
	return program, nil
}
