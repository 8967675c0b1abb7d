// Package parser reads the textual clause syntax that the fol package
// prints: predicates `mortal(X)`, connectives `(a and b)`, `(a or b)`,
// `(a -> b)`, negation `(not a)` and quantifiers `(for_all (X, Y) a)` /
// `(there_exists (X) a)`.
package parser

import (
	"github.com/folnorm/folnorm/internal/fol"
)

// Connective and quantifier keywords. Keywords cannot be used as
// predicate names in operator position.
const (
	kwNot         = "not"
	kwAnd         = "and"
	kwOr          = "or"
	kwForAll      = "for_all"
	kwThereExists = "there_exists"
)

func isKeyword(s string) bool {
	switch s {
	case kwNot, kwAnd, kwOr, kwForAll, kwThereExists:
		return true
	default:
		return false
	}
}

// Parse reads a single clause from input.
func Parse(input string) (fol.Clause, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	clause, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, errorf(tok.offset, "trailing input after clause")
	}
	return clause, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return token{}, errorf(tok.offset, "expected %s, found %s", kind, tok.kind)
	}
	return tok, nil
}

func (p *parser) parseClause() (fol.Clause, error) {
	tok := p.peek()
	switch tok.kind {
	case tokIdent:
		return p.parsePredicate()
	case tokLParen:
		return p.parseCompound()
	default:
		return nil, errorf(tok.offset, "expected clause, found %s", tok.kind)
	}
}

// parseCompound parses a parenthesized form: negation, quantifier, or
// binary connective.
func (p *parser) parseCompound() (fol.Clause, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind == tokIdent {
		switch tok.text {
		case kwNot:
			p.next()
			sub, err := p.parseClause()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRParen); err != nil {
				return nil, err
			}
			return &fol.Not{Sub: sub}, nil
		case kwForAll, kwThereExists:
			return p.parseQuantifier(tok.text)
		}
	}

	left, err := p.parseClause()
	if err != nil {
		return nil, err
	}

	op := p.next()
	var build func(l, r fol.Clause) fol.Clause
	switch {
	case op.kind == tokArrow:
		build = func(l, r fol.Clause) fol.Clause { return &fol.Implies{Left: l, Right: r} }
	case op.kind == tokIdent && op.text == kwAnd:
		build = func(l, r fol.Clause) fol.Clause { return &fol.And{Left: l, Right: r} }
	case op.kind == tokIdent && op.text == kwOr:
		build = func(l, r fol.Clause) fol.Clause { return &fol.Or{Left: l, Right: r} }
	default:
		return nil, errorf(op.offset, "expected 'and', 'or' or '->', found %q", op.text)
	}

	right, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return build(left, right), nil
}

// parseQuantifier parses the tail of `(for_all (X, Y) body)`; the
// keyword token is still pending.
func (p *parser) parseQuantifier(keyword string) (fol.Clause, error) {
	p.next() // keyword

	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	vars, err := p.parseVarList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	body, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	if keyword == kwForAll {
		return &fol.ForAll{Vars: vars, Body: body}, nil
	}
	return &fol.ThereExists{Vars: vars, Body: body}, nil
}

// parseVarList parses one or more identifiers separated by commas or
// whitespace.
func (p *parser) parseVarList() ([]fol.Symbol, error) {
	var vars []fol.Symbol
	for {
		tok, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		vars = append(vars, fol.Symbol(tok.text))

		switch p.peek().kind {
		case tokComma:
			p.next()
		case tokIdent:
			// whitespace-separated list, keep going
		default:
			return vars, nil
		}
	}
}

// parsePredicate parses `name`, `name(...)` with space- or
// comma-separated term arguments. An argument of the form `name(...)`
// is read as a skolem term.
func (p *parser) parsePredicate() (fol.Clause, error) {
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if isKeyword(name.text) {
		return nil, errorf(name.offset, "%q is reserved and cannot name a predicate", name.text)
	}

	pred := &fol.Predicate{Name: name.text}
	if p.peek().kind != tokLParen {
		return pred, nil
	}
	p.next()

	for p.peek().kind != tokRParen {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		pred.Args = append(pred.Args, arg)

		if p.peek().kind == tokComma {
			p.next()
		}
	}
	p.next() // ')'
	return pred, nil
}

func (p *parser) parseTerm() (fol.Term, error) {
	tok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}

	if p.peek().kind != tokLParen {
		return fol.Symbol(tok.text), nil
	}
	p.next()

	term := &fol.SkolemTerm{Name: tok.text}
	for p.peek().kind != tokRParen {
		v, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		term.Variables = append(term.Variables, fol.Symbol(v.text))

		if p.peek().kind == tokComma {
			p.next()
		}
	}
	p.next() // ')'
	return term, nil
}
