// Package toolkit provides the built-in tools the demo agents register:
// a calculator, clock and text utilities, file statistics, git history,
// GitHub repository lookups, and SQLite database inspection.
package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/loomworks/agentry/internal/agent"
)

var ErrBadExpression = errors.New("invalid expression")

// Calculator returns a tool that evaluates basic arithmetic expressions:
// +, -, *, /, parentheses, and unary minus.
func Calculator() agent.Tool {
	return agent.Tool{
		Name:        "calculate",
		Description: "Perform mathematical calculations",
		Properties: map[string]any{
			"expression": agent.StringProperty("Arithmetic expression to evaluate, e.g. (2+3)*4"),
		},
		Required: []string{"expression"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				Expression string `json:"expression"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error: %v", err)
			}

			value, err := Evaluate(args.Expression)
			if err != nil {
				return agent.ErrorResult("Error: %v", err)
			}
			return agent.TextResult("Result: %s", formatNumber(value))
		},
	}
}

// Evaluate computes the value of an arithmetic expression.
func Evaluate(expression string) (float64, error) {
	p := &exprParser{input: expression}
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrBadExpression, p.input[p.pos], p.pos)
	}
	return value, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// exprParser is a small recursive-descent evaluator:
// expr = term (('+' | '-') term)*, term = factor (('*' | '/') factor)*,
// factor = number | '-' factor | '(' expr ')'.
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		if p.peek() == '+' || p.peek() == '-' {
			op := p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			if op == '+' {
				left += right
			} else {
				left -= right
			}
			continue
		}
		return left, nil
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		if p.peek() == '*' || p.peek() == '/' {
			op := p.next()
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if op == '*' {
				left *= right
			} else {
				if right == 0 {
					return 0, fmt.Errorf("%w: division by zero", ErrBadExpression)
				}
				left /= right
			}
			continue
		}
		return left, nil
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	p.skipSpaces()
	switch {
	case p.peek() == '-':
		p.next()
		v, err := p.parseFactor()
		return -v, err
	case p.peek() == '(':
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrBadExpression)
		}
		p.next()
		return v, nil
	default:
		return p.parseNumber()
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		if p.pos >= len(p.input) {
			return 0, fmt.Errorf("%w: unexpected end of input", ErrBadExpression)
		}
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrBadExpression, p.input[p.pos], p.pos)
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrBadExpression, p.input[start:p.pos])
	}
	return v, nil
}

func (p *exprParser) skipSpaces() {
	p.pos += len(p.input[p.pos:]) - len(strings.TrimLeft(p.input[p.pos:], " \t"))
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) next() byte {
	b := p.input[p.pos]
	p.pos++
	return b
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
