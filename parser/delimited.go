package parser

import (
	"github.com/couch-lang/couch-lang/lexer"
)

type delimitedConfig struct {
	Closing   lexer.TokenType
	Separator lexer.TokenType

	AllowTrailing bool

	// MissingElementMsg is a full message; MissingSeparatorMsg describes the
	// expected tokens and is fed through reportExpectedError.
	MissingElementMsg   string
	MissingSeparatorMsg string
}

type delimitedResult[T any] struct {
	Items    []T
	Trailing bool
}

// parseDelimited parses a separator-delimited list. On entry curTok must be
// at the first element; on success curTok is the closing token. parseItem
// must leave curTok on the last token of the element it produced.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func(idx int) (T, bool)) (delimitedResult[T], bool) {
	var result delimitedResult[T]

	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	if cfg.Closing == "" {
		panic("parseDelimited requires a closing token")
	}

	for {
		item, ok := parseItem(len(result.Items))
		if !ok {
			return result, false
		}
		result.Items = append(result.Items, item)

		switch p.peekTok.Type {
		case cfg.Separator:
			p.nextToken() // move to separator
			p.nextToken() // move to next potential element

			if p.curTok.Type == cfg.Closing {
				if cfg.AllowTrailing {
					result.Trailing = true
					return result, true
				}
				msg := cfg.MissingElementMsg
				if msg == "" {
					msg = "expected element"
				}
				p.reportError(msg, p.curTok.Span)
				return result, false
			}
			continue
		case cfg.Closing:
			p.nextToken()
			return result, true
		default:
			msg := cfg.MissingSeparatorMsg
			if msg == "" {
				msg = "'" + string(cfg.Separator) + "' or '" + string(cfg.Closing) + "'"
			}
			p.reportExpectedError(msg, p.peekTok)
			return result, false
		}
	}
}
