package formula

// tokenizeType splits type text into <, >, ',' and runs of letters.
func tokenizeType(input string) ([]Token, error) {
	s := newScanner(input)
	var tokens []Token
	for {
		s.skipWhitespace()
		line, column := s.line, s.column
		if s.pos >= len(s.input) {
			return append(tokens, s.token(TokenEOF, "", line, column)), nil
		}
		ch := s.input[s.pos]
		switch {
		case isLetter(ch):
			start := s.pos
			for s.pos < len(s.input) && isLetter(s.input[s.pos]) {
				if !isAtomicLetter(s.input[s.pos]) {
					return nil, s.errorf("%q is not an atomic type", string(s.input[s.pos]))
				}
				s.advance()
			}
			tokens = append(tokens, s.token(TokenSymbol, s.input[start:s.pos], line, column))
		case ch == '<':
			s.advance()
			tokens = append(tokens, s.token(TokenLAngle, "<", line, column))
		case ch == '>':
			s.advance()
			tokens = append(tokens, s.token(TokenRAngle, ">", line, column))
		case ch == ',':
			s.advance()
			tokens = append(tokens, s.token(TokenComma, ",", line, column))
		default:
			return nil, s.errorf("%q not expected", string(ch))
		}
	}
}

// ParseType parses type text. Besides <d, r> and the atomic letters e, v, t
// and s, a run of two or more atomic letters abbreviates a right-nested
// function type: eet is <e, <e, t>>.
func ParseType(input string) (Type, error) {
	tokens, err := tokenizeType(input)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens, current: tokens[0]}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("trailing tokens in type, got %q", p.current.Literal)
	}
	return typ, nil
}

// MustParseType is like ParseType but panics on malformed input.
func MustParseType(input string) Type {
	typ, err := ParseType(input)
	if err != nil {
		panic("formula: " + err.Error())
	}
	return typ
}

func (p *Parser) parseType() (Type, error) {
	switch p.current.Type {
	case TokenSymbol:
		letters := p.current.Literal
		p.next()
		return expandAbbreviation(letters), nil
	case TokenLAngle:
		p.next()
		domain, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenComma); err != nil {
			return nil, err
		}
		rng, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRAngle); err != nil {
			return nil, err
		}
		return ComplexType{Domain: domain, Range: rng}, nil
	case TokenEOF:
		return nil, p.errorf("premature end of type")
	default:
		return nil, p.errorf("expected type, got %q", p.current.Literal)
	}
}

func expandAbbreviation(letters string) Type {
	var typ Type = AtomicType(letters[len(letters)-1:])
	for i := len(letters) - 2; i >= 0; i-- {
		typ = ComplexType{Domain: AtomicType(letters[i : i+1]), Range: typ}
	}
	return typ
}
