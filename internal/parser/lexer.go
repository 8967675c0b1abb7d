package parser

import "unicode"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokComma
	tokArrow
	tokIdent
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokArrow:
		return "'->'"
	case tokIdent:
		return "identifier"
	default:
		return "unknown token"
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lex splits the input into tokens. Whitespace separates tokens and is
// otherwise ignored.
func lex(input string) ([]token, error) {
	runes := []rune(input)
	var toks []token

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", offset: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", offset: i})
			i++
		case r == ',':
			toks = append(toks, token{kind: tokComma, text: ",", offset: i})
			i++
		case r == '-':
			if i+1 >= len(runes) || runes[i+1] != '>' {
				return nil, errorf(i, "unexpected character %q", r)
			}
			toks = append(toks, token{kind: tokArrow, text: "->", offset: i})
			i += 2
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[start:i]), offset: start})
		default:
			return nil, errorf(i, "unexpected character %q", r)
		}
	}

	toks = append(toks, token{kind: tokEOF, offset: len(runes)})
	return toks, nil
}
