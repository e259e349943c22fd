package gdl

import (
	"fmt"
	"strconv"
)

// ParseError is a fatal syntax error with source position.
// A half-parsed document is never returned alongside one.
type ParseError struct {
	Line    int
	Col     int
	Context string // innermost enclosing construct, e.g. `entity "goblin"`
	Msg     string
}

func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("gdl: line %d: %s (in %s)", e.Line, e.Msg, e.Context)
	}
	return fmt.Sprintf("gdl: line %d: %s", e.Line, e.Msg)
}

// Parser parses GDL tokens into a Document.
// Brace depth is tracked by recursive descent; nested objects like
// behavior property values `damage: { min: 1, max: 5 }` nest arbitrarily.
type Parser struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token
	openStack []*Block // enclosing blocks, for unbalanced-brace reporting
}

func NewParser(input []byte) *Parser {
	l := NewLexer(input)
	p := &Parser{lexer: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse consumes the full input and returns the document tree
func Parse(input []byte) (*Document, error) {
	return NewParser(input).Parse()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()

	// Skip comments automatically
	for p.peekToken.Type == TokenComment {
		p.peekToken = p.lexer.NextToken()
	}
}

func (p *Parser) Parse() (*Document, error) {
	doc := &Document{}
	for p.curToken.Type != TokenEOF {
		if p.curToken.Type == TokenNewline {
			p.nextToken()
			continue
		}
		if p.curToken.Type != TokenIdent {
			return nil, p.errorf("expected block keyword, got %s", p.curToken.String())
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc, nil
}

// parseBlock handles `keyword identifier? { ... }`
func (p *Parser) parseBlock() (*Block, error) {
	block := &Block{Keyword: p.curToken.Literal, Line: p.curToken.Line}
	p.nextToken()

	// Optional identifier: bare or quoted
	if p.curToken.Type == TokenIdent || p.curToken.Type == TokenString {
		block.Name = p.curToken.Literal
		p.nextToken()
	}

	if p.curToken.Type != TokenLBrace {
		return nil, p.errorf("expected '{' after %s", blockLabel(block))
	}
	p.nextToken() // consume {

	p.openStack = append(p.openStack, block)
	defer func() { p.openStack = p.openStack[:len(p.openStack)-1] }()

	for {
		switch p.curToken.Type {
		case TokenNewline, TokenComma:
			p.nextToken()
			continue
		case TokenRBrace:
			p.nextToken() // consume }
			return block, nil
		case TokenEOF:
			return nil, p.unbalanced()
		case TokenError:
			return nil, p.errorf("%s", p.curToken.Literal)
		case TokenIdent, TokenString:
			key := p.curToken.Literal
			line := p.curToken.Line
			if p.peekToken.Type == TokenColon {
				p.nextToken() // move to :
				p.nextToken() // consume :
				val, err := p.parseValue()
				if err != nil {
					return nil, err
				}
				block.Props = append(block.Props, Property{Key: key, Val: val, Line: line})
				continue
			}
			// Nested block: `transform { ... }` or `entity goblin { ... }`
			child, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			block.Blocks = append(block.Blocks, child)
		default:
			return nil, p.errorf("unexpected token %s in %s", p.curToken.String(), blockLabel(block))
		}
	}
}

func (p *Parser) parseValue() (Value, error) {
	switch p.curToken.Type {
	case TokenString:
		v := Value{Kind: KindString, Str: p.curToken.Literal}
		p.nextToken()
		return v, nil
	case TokenNumber:
		f, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			return Value{}, p.errorf("malformed number %q", p.curToken.Literal)
		}
		p.nextToken()
		return Value{Kind: KindNumber, Num: f}, nil
	case TokenBool:
		v := Value{Kind: KindBool, Bool: p.curToken.Literal == "true"}
		p.nextToken()
		return v, nil
	case TokenIdent:
		// Bare identifiers in value position are treated as strings,
		// so `texture: hero` and `texture: "hero"` are equivalent
		v := Value{Kind: KindString, Str: p.curToken.Literal}
		p.nextToken()
		return v, nil
	case TokenLBracket:
		return p.parseArray()
	case TokenLBrace:
		return p.parseObject()
	case TokenEOF:
		return Value{}, p.unbalanced()
	}
	return Value{}, p.errorf("unexpected value token %s", p.curToken.String())
}

func (p *Parser) parseArray() (Value, error) {
	p.nextToken() // consume [
	arr := make([]Value, 0)

	for p.curToken.Type != TokenRBracket {
		if p.curToken.Type == TokenNewline {
			p.nextToken()
			continue
		}
		if p.curToken.Type == TokenEOF {
			return Value{}, p.errorf("unterminated array")
		}

		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, val)

		if p.curToken.Type == TokenComma {
			p.nextToken()
		} else if p.curToken.Type != TokenRBracket && p.curToken.Type != TokenNewline {
			return Value{}, p.errorf("expected comma or closing bracket in array")
		}
	}
	p.nextToken() // consume ]
	return Value{Kind: KindArray, Arr: arr}, nil
}

// parseObject handles brace-delimited object values: { min: 1, max: 5 }
func (p *Parser) parseObject() (Value, error) {
	p.nextToken() // consume {
	obj := make([]Property, 0)

	for p.curToken.Type != TokenRBrace {
		switch p.curToken.Type {
		case TokenNewline, TokenComma:
			p.nextToken()
			continue
		case TokenEOF:
			return Value{}, p.unbalanced()
		case TokenIdent, TokenString:
			key := p.curToken.Literal
			line := p.curToken.Line
			p.nextToken()
			if p.curToken.Type != TokenColon {
				return Value{}, p.errorf("expected ':' after key %q in object", key)
			}
			p.nextToken() // consume :
			val, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			obj = append(obj, Property{Key: key, Val: val, Line: line})
		default:
			return Value{}, p.errorf("unexpected token %s in object", p.curToken.String())
		}
	}
	p.nextToken() // consume }
	return Value{Kind: KindObject, Obj: obj}, nil
}

func (p *Parser) errorf(format string, args ...any) *ParseError {
	e := &ParseError{
		Line: p.curToken.Line,
		Col:  p.curToken.Col,
		Msg:  fmt.Sprintf(format, args...),
	}
	if len(p.openStack) > 0 {
		e.Context = blockLabel(p.openStack[len(p.openStack)-1])
	}
	return e
}

// unbalanced reports end-of-input inside an open construct, naming the
// innermost block still waiting for its closing brace
func (p *Parser) unbalanced() *ParseError {
	if len(p.openStack) > 0 {
		open := p.openStack[len(p.openStack)-1]
		return &ParseError{
			Line:    open.Line,
			Msg:     "unbalanced braces: end of input before closing '}'",
			Context: blockLabel(open),
		}
	}
	return &ParseError{Line: p.curToken.Line, Msg: "unbalanced braces: end of input before closing '}'"}
}

func blockLabel(b *Block) string {
	if b.Name != "" {
		return fmt.Sprintf("%s %q", b.Keyword, b.Name)
	}
	return b.Keyword
}
