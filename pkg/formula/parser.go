package formula

import "fmt"

// Parser is a recursive-descent parser over the formula grammar:
//
//	iff    ::= ifthen [ "<->" iff ]
//	ifthen ::= or [ "->" ifthen ]
//	or     ::= and [ "|" or ]
//	and    ::= unary [ "&" and ]
//	unary  ::= "~" unary | atom
//	atom   ::= SYMBOL calls | "[" iff "]" | "(" iff ")" calls
//	         | ("L" | "A" | "E") SYMBOL "." iff
//	calls  ::= { "(" [ iff { "," iff } ] ")" }
type Parser struct {
	tokens  []Token
	pos     int
	current Token
}

func NewParser(input string) (*Parser, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	p.current = tokens[0]
	return p, nil
}

func (p *Parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.current = p.tokens[p.pos]
}

func (p *Parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Line: p.current.Line, Column: p.current.Column, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) unexpected(want string) *ParseError {
	if p.current.Type == TokenEOF {
		return p.errorf("premature end of input, expected %s", want)
	}
	return p.errorf("expected %s, got %q", want, p.current.Literal)
}

func (p *Parser) expect(typ TokenType) (Token, error) {
	if p.current.Type != typ {
		return Token{}, p.unexpected(typ.String())
	}
	tok := p.current
	p.next()
	return tok, nil
}

// Parse parses the whole input as one formula.
func (p *Parser) Parse() (Formula, error) {
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("trailing tokens in formula, got %q", p.current.Literal)
	}
	return f, nil
}

func (p *Parser) parseIff() (Formula, error) {
	left, err := p.parseIfThen()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenIff {
		return left, nil
	}
	p.next()
	right, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	return IfAndOnlyIf{Left: left, Right: right}, nil
}

func (p *Parser) parseIfThen() (Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenIfThen {
		return left, nil
	}
	p.next()
	right, err := p.parseIfThen()
	if err != nil {
		return nil, err
	}
	return IfThen{Left: left, Right: right}, nil
}

func (p *Parser) parseOr() (Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenOr {
		return left, nil
	}
	p.next()
	right, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return Or{Left: left, Right: right}, nil
}

func (p *Parser) parseAnd() (Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenAnd {
		return left, nil
	}
	p.next()
	right, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	return And{Left: left, Right: right}, nil
}

func (p *Parser) parseUnary() (Formula, error) {
	if p.current.Type != TokenNot {
		return p.parseAtom()
	}
	p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Not{Operand: operand}, nil
}

func (p *Parser) parseAtom() (Formula, error) {
	switch p.current.Type {
	case TokenSymbol:
		v := Var{Name: p.current.Literal}
		p.next()
		return p.parseCalls(v)
	case TokenLBracket:
		p.next()
		inner, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRBracket); err != nil {
			return nil, err
		}
		return inner, nil
	case TokenLParen:
		// A parenthesised expression is only valid as the head of a call.
		p.next()
		head, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		if p.current.Type != TokenLParen {
			return nil, p.unexpected("( after parenthesised function")
		}
		return p.parseCalls(head)
	case TokenLambda, TokenForAll, TokenExists:
		return p.parseBinder()
	default:
		return nil, p.unexpected("symbol")
	}
}

func (p *Parser) parseBinder() (Formula, error) {
	binder := p.current.Type
	p.next()
	sym, err := p.expect(TokenSymbol)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDot); err != nil {
		return nil, err
	}
	body, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	switch binder {
	case TokenLambda:
		return Lambda{Parameter: sym.Literal, Body: body}, nil
	case TokenForAll:
		return ForAll{Symbol: sym.Literal, Body: body}, nil
	default:
		return Exists{Symbol: sym.Literal, Body: body}, nil
	}
}

// parseCalls folds any argument lists following head into left-nested
// Calls: f(a, b)(c) is Call{Call{Call{f, a}, b}, c}.
func (p *Parser) parseCalls(head Formula) (Formula, error) {
	for p.current.Type == TokenLParen {
		p.next()
		if p.current.Type == TokenRParen {
			p.next()
			continue
		}
		for {
			arg, err := p.parseIff()
			if err != nil {
				return nil, err
			}
			head = Call{Caller: head, Arg: arg}
			if p.current.Type == TokenComma {
				p.next()
				continue
			}
			if p.current.Type == TokenRParen {
				p.next()
				break
			}
			return nil, p.unexpected(", or )")
		}
	}
	return head, nil
}

// ParseFormula parses formula text into a tree.
func ParseFormula(input string) (Formula, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// MustParseFormula is like ParseFormula but panics on malformed input. It is
// meant for literals in tests and lexicon tables.
func MustParseFormula(input string) Formula {
	f, err := ParseFormula(input)
	if err != nil {
		panic(fmt.Sprintf("formula: %v", err))
	}
	return f
}
