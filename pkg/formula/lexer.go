package formula

import "fmt"

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenSymbol
	TokenLambda
	TokenForAll
	TokenExists
	TokenAnd
	TokenOr
	TokenIfThen
	TokenIff
	TokenNot
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenComma
	TokenDot
	TokenLAngle
	TokenRAngle
)

var tokenNames = map[TokenType]string{
	TokenEOF:      "end of input",
	TokenSymbol:   "symbol",
	TokenLambda:   "L",
	TokenForAll:   "A",
	TokenExists:   "E",
	TokenAnd:      "&",
	TokenOr:       "|",
	TokenIfThen:   "->",
	TokenIff:      "<->",
	TokenNot:      "~",
	TokenLBracket: "[",
	TokenRBracket: "]",
	TokenLParen:   "(",
	TokenRParen:   ")",
	TokenComma:    ",",
	TokenDot:      ".",
	TokenLAngle:   "<",
	TokenRAngle:   ">",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical token. Line and Column are 1-based.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// ParseError reports malformed formula or type text.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s, line %d column %d", e.Msg, e.Line, e.Column)
}

var binderTokens = map[string]TokenType{
	"L": TokenLambda,
	"A": TokenForAll,
	"E": TokenExists,
}

// scanner walks the input byte by byte keeping line and column.
type scanner struct {
	input  string
	pos    int
	line   int
	column int
}

func newScanner(input string) *scanner {
	return &scanner{input: input, line: 1, column: 1}
}

func (s *scanner) peek(offset int) byte {
	if s.pos+offset >= len(s.input) {
		return 0
	}
	return s.input[s.pos+offset]
}

func (s *scanner) advance() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.pos++
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.advance()
	}
}

func (s *scanner) token(typ TokenType, lit string, line, column int) Token {
	return Token{Type: typ, Literal: lit, Line: line, Column: column}
}

func (s *scanner) errorf(format string, args ...any) *ParseError {
	return &ParseError{Line: s.line, Column: s.column, Msg: fmt.Sprintf(format, args...)}
}

// Tokenize splits formula text into tokens, ending with a TokenEOF.
func Tokenize(input string) ([]Token, error) {
	s := newScanner(input)
	var tokens []Token
	for {
		s.skipWhitespace()
		line, column := s.line, s.column
		if s.pos >= len(s.input) {
			tokens = append(tokens, s.token(TokenEOF, "", line, column))
			return tokens, nil
		}

		ch := s.input[s.pos]
		switch {
		case isLetter(ch):
			start := s.pos
			for s.pos < len(s.input) && isSymbolChar(s.input[s.pos]) {
				// "a->b" is a, ->, b rather than the symbol a-.
				if s.input[s.pos] == '-' && s.peek(1) == '>' {
					break
				}
				s.advance()
			}
			lit := s.input[start:s.pos]
			tokens = append(tokens, s.symbolTokens(lit, line, column)...)
		case ch == '-' && s.peek(1) == '>':
			s.advance()
			s.advance()
			tokens = append(tokens, s.token(TokenIfThen, "->", line, column))
		case ch == '<' && s.peek(1) == '-' && s.peek(2) == '>':
			s.advance()
			s.advance()
			s.advance()
			tokens = append(tokens, s.token(TokenIff, "<->", line, column))
		default:
			typ, ok := punctuation[ch]
			if !ok {
				return nil, s.errorf("%q not expected", string(ch))
			}
			s.advance()
			tokens = append(tokens, s.token(typ, string(ch), line, column))
		}
	}
}

var punctuation = map[byte]TokenType{
	'&': TokenAnd,
	'|': TokenOr,
	'~': TokenNot,
	'[': TokenLBracket,
	']': TokenRBracket,
	'(': TokenLParen,
	')': TokenRParen,
	',': TokenComma,
	'.': TokenDot,
}

// symbolTokens classifies an identifier. A bare L, A or E is a binder. An
// identifier such as Lx directly followed by '.' is the binder L and the
// symbol x; anywhere else Lx is an ordinary symbol.
func (s *scanner) symbolTokens(lit string, line, column int) []Token {
	if typ, ok := binderTokens[lit]; ok {
		return []Token{s.token(typ, lit, line, column)}
	}
	if typ, ok := binderTokens[lit[:1]]; ok && isLetter(lit[1]) && s.nextNonSpace() == '.' {
		return []Token{
			s.token(typ, lit[:1], line, column),
			s.token(TokenSymbol, lit[1:], line, column+1),
		}
	}
	return []Token{s.token(TokenSymbol, lit, line, column)}
}

func (s *scanner) nextNonSpace() byte {
	for i := s.pos; i < len(s.input); i++ {
		if !isSpace(s.input[i]) {
			return s.input[i]
		}
	}
	return 0
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSymbolChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '-' || ch == '\''
}
