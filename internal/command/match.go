package command

import (
	"strconv"
	"strings"

	"github.com/mudframe/core/internal/model"
)

// deferred holds an object-like placeholder whose source is another
// argument's contents; it can only be resolved once every non-deferred
// placeholder has run (spec §4.4's "second resolution pass").
type deferred struct {
	name      string
	tok       token
	rawPhrase string
}

// Match walks pattern's tokens against input, left to right, with no
// backtracking (spec §9: "a linear automaton per pattern rather than a
// backtracking regex"). actor is the resolving context for object-like
// placeholders' source pools.
func Match(p *Pattern, actor *model.Object, input string) (Args, error) {
	words := splitWords(input)
	args := Args{}
	var deferredArgs []deferred

	wi := 0
	glueRemainder := ""
	haveGlue := false

	for ti := 0; ti < len(p.tokens); ti++ {
		tok := p.tokens[ti]

		if tok.kind == tokenLiteral {
			gluedNext := ti+1 < len(p.tokens) && p.tokens[ti+1].kind == tokenPlaceholder && p.tokens[ti+1].glued
			if wi >= len(words) {
				return nil, &MatchError{Kind: PatternMismatch}
			}
			word := words[wi].text
			if gluedNext {
				if !hasPrefixFold(word, tok.literal) {
					return nil, &MatchError{Kind: PatternMismatch}
				}
				glueRemainder = word[len(tok.literal):]
				haveGlue = true
				// word stays pending; the glued placeholder consumes it
				continue
			}
			if !literalMatches(tok, word) {
				return nil, &MatchError{Kind: PatternMismatch}
			}
			wi++
			continue
		}

		// tokenPlaceholder
		var raw string
		present := false

		if tok.glued {
			if haveGlue {
				raw = glueRemainder
				present = raw != ""
				haveGlue = false
				wi++ // the word the preceding literal partially consumed is now done
			}
		} else if tok.argType == ArgText {
			if wi < len(words) {
				raw = strings.TrimSpace(input[words[wi].start:])
				present = raw != ""
			}
			wi = len(words)
		} else if wi < len(words) {
			raw = words[wi].text
			present = true
			wi++
		}

		if !present {
			if !tok.optional {
				return nil, &MatchError{Kind: MissingRequired, Arg: tok.name}
			}
			args[tok.name] = Value{Type: tok.argType}
			continue
		}

		if tok.argType.isObjectLike() && tok.source == SourceOtherArg {
			deferredArgs = append(deferredArgs, deferred{name: tok.name, tok: tok, rawPhrase: raw})
			continue
		}

		val, err := resolveValue(actor, tok, raw)
		if err != nil {
			return nil, err
		}
		args[tok.name] = val
	}

	if wi < len(words) {
		return nil, &MatchError{Kind: PatternMismatch}
	}

	for _, d := range deferredArgs {
		container := args[d.tok.otherArg].Object
		obj, ok := resolveObjectLike(actor, d.tok.argType, SourceOtherArg, container, d.rawPhrase)
		if !ok {
			if d.tok.optional {
				args[d.name] = Value{Type: d.tok.argType}
				continue
			}
			return nil, &MatchError{Kind: UnparseableArg, Arg: d.name}
		}
		args[d.name] = Value{Type: d.tok.argType, Present: true, Object: obj}
	}

	return args, nil
}

func resolveValue(actor *model.Object, tok token, raw string) (Value, error) {
	switch tok.argType {
	case ArgText, ArgWord:
		return Value{Type: tok.argType, Present: true, Text: raw}, nil
	case ArgNumber:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &MatchError{Kind: UnparseableArg, Arg: tok.name}
		}
		return Value{Type: tok.argType, Present: true, Number: n}, nil
	case ArgDirection:
		dir, ok := model.ParseDirection(raw)
		if !ok {
			return Value{}, &MatchError{Kind: UnparseableArg, Arg: tok.name}
		}
		return Value{Type: tok.argType, Present: true, Direction: dir}, nil
	default: // object-like, non-deferred source
		obj, ok := resolveObjectLike(actor, tok.argType, tok.source, nil, raw)
		if !ok {
			return Value{}, &MatchError{Kind: UnparseableArg, Arg: tok.name}
		}
		return Value{Type: tok.argType, Present: true, Object: obj}, nil
	}
}

func literalMatches(tok token, word string) bool {
	if tok.autocomplete {
		return word != "" && hasPrefixFold(tok.literal, word)
	}
	return strings.EqualFold(tok.literal, word)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
