// Package command implements spec §4.4's pattern-driven verb registry
// and §4.4.1's per-character action queue: the surface a player's raw
// input line crosses before it becomes a world mutation.
//
// Grounded on the teacher's internal/gameserver/admin's name-keyed
// dispatch table (Handler.adminCmds/userCmds, looked up by the first
// whitespace token), generalized from a flat name lookup into an
// ordered list of compiled patterns because spec §4.4 patterns carry
// typed, world-resolved placeholders a flat command-name map can't
// express.
//
// Pattern compilation deliberately avoids regexp: spec §9's design
// notes call for "a linear automaton per pattern rather than a
// backtracking regex" so a failed match can attribute blame to the
// specific placeholder that rejected the input, and so there is no
// regex engine dependency to track. A Pattern is a flat token sequence
// walked once, left to right, with no backtracking.
package command

import "strings"

// ArgType is the type tag on a pattern placeholder.
type ArgType uint8

const (
	ArgText ArgType = iota
	ArgWord
	ArgNumber
	ArgObject
	ArgItem
	ArgEquipment
	ArgMob
	ArgCharacter
	ArgDirection
)

// object-like argument types resolve against the world graph rather
// than being parsed in place.
func (t ArgType) isObjectLike() bool {
	switch t {
	case ArgObject, ArgItem, ArgEquipment, ArgMob, ArgCharacter:
		return true
	default:
		return false
	}
}

// Source names where an object-like placeholder's candidates come
// from (spec §4.4's "source modifiers").
type Source uint8

const (
	SourceAll Source = iota // default: room contents union actor's own contents
	SourceRoom
	SourceInventory
	SourceEquipment
	SourceOtherArg // candidates are another placeholder's resolved object's contents
)

// tokenKind distinguishes a literal word from a typed placeholder
// within a compiled Pattern.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenPlaceholder
)

// token is one compiled element of a Pattern.
type token struct {
	kind tokenKind

	// tokenLiteral fields.
	literal      string
	autocomplete bool // literal carried a trailing '~': any non-empty prefix of it matches

	// tokenPlaceholder fields.
	name     string
	argType  ArgType
	optional bool
	source   Source
	otherArg string // set when source == SourceOtherArg

	// glued reports that this token was written with no whitespace
	// before it in the pattern text (spec §4.4: "writing the
	// placeholder without a preceding space means no space is
	// required" in the input either). A glued placeholder captures
	// whatever remains of the current input word after the preceding
	// literal's prefix, instead of consuming a whole separate word.
	glued bool
}

// Pattern is a compiled command pattern: a flat, ordered token
// sequence with no shared mutable state, safe to match concurrently.
type Pattern struct {
	raw    string
	tokens []token
}

// Raw returns the pattern text Compile was given.
func (p *Pattern) Raw() string { return p.raw }

// Len reports the token count, used by Registry's (priority desc,
// pattern length desc) ordering (spec §4.4).
func (p *Pattern) Len() int { return len(p.tokens) }

// Compile parses a pattern string into a Pattern. Grammar:
//
//	literal tokens        bare words, optionally suffixed with '~' to
//	                       allow any non-empty prefix to match (e.g.
//	                       "get~" lets "g"/"ge"/"get" all match)
//	<name:type>            required placeholder
//	<name:type?>           optional placeholder
//	<name:type@room>        source modifier (room/inventory/equipment/all
//	<name:type@other_arg>   or another placeholder's name)
//
// Whitespace between a literal and the placeholder that follows it in
// the pattern text is significant: writing them with a space between
// requires a space in matched input too; writing them glued together
// (no space in the pattern) means the placeholder captures whatever
// trails the literal within the same input word, with no space
// required there either.
func Compile(pattern string) (*Pattern, error) {
	p := &Pattern{raw: pattern}

	i, n := 0, len(pattern)
	sawSpace := true // true at start: the first token never requires a preceding space
	for i < n {
		if pattern[i] == ' ' || pattern[i] == '\t' {
			sawSpace = true
			i++
			continue
		}

		if pattern[i] == '<' {
			end := strings.IndexByte(pattern[i:], '>')
			if end < 0 {
				return nil, &CompileError{Pattern: pattern, Reason: "unterminated placeholder"}
			}
			body := pattern[i+1 : i+end]
			tok, err := compilePlaceholder(body)
			if err != nil {
				return nil, err
			}
			tok.glued = !sawSpace
			p.tokens = append(p.tokens, tok)
			i += end + 1
			sawSpace = false
			continue
		}

		start := i
		for i < n && pattern[i] != ' ' && pattern[i] != '\t' && pattern[i] != '<' {
			i++
		}
		lit := pattern[start:i]
		autocomplete := strings.HasSuffix(lit, "~")
		if autocomplete {
			lit = strings.TrimSuffix(lit, "~")
		}
		p.tokens = append(p.tokens, token{
			kind:         tokenLiteral,
			literal:      lit,
			autocomplete: autocomplete,
		})
		sawSpace = false
	}

	return p, nil
}

func compilePlaceholder(body string) (token, error) {
	name, rest, _ := strings.Cut(body, ":")
	name = strings.TrimSpace(name)
	rest = strings.TrimSpace(rest)

	optional := strings.HasSuffix(rest, "?")
	if optional {
		rest = strings.TrimSuffix(rest, "?")
	}

	typeName, sourceText, hasSource := strings.Cut(rest, "@")

	argType, ok := parseArgType(strings.TrimSpace(typeName))
	if !ok {
		return token{}, &CompileError{Reason: "unknown argument type: " + typeName}
	}

	tok := token{
		kind:     tokenPlaceholder,
		name:     name,
		argType:  argType,
		optional: optional,
		source:   SourceAll,
	}

	if hasSource && argType.isObjectLike() {
		switch sourceText {
		case "room":
			tok.source = SourceRoom
		case "inventory":
			tok.source = SourceInventory
		case "equipment":
			tok.source = SourceEquipment
		case "all":
			tok.source = SourceAll
		default:
			tok.source = SourceOtherArg
			tok.otherArg = sourceText
		}
	}

	return tok, nil
}

func parseArgType(s string) (ArgType, bool) {
	switch s {
	case "text":
		return ArgText, true
	case "word":
		return ArgWord, true
	case "number":
		return ArgNumber, true
	case "object":
		return ArgObject, true
	case "item":
		return ArgItem, true
	case "equipment":
		return ArgEquipment, true
	case "mob":
		return ArgMob, true
	case "character":
		return ArgCharacter, true
	case "direction":
		return ArgDirection, true
	default:
		return 0, false
	}
}
