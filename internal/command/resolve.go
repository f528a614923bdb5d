package command

import (
	"strconv"
	"strings"

	"github.com/mudframe/core/internal/model"
	"github.com/mudframe/core/internal/world"
)

// Value is one resolved argument. Only the field matching its Type is
// meaningful.
type Value struct {
	Type      ArgType
	Present   bool
	Text      string
	Number    int64
	Object    *model.Object
	Direction model.Direction
}

// Args is a pattern match's resolved placeholders, keyed by name.
type Args map[string]Value

// Text returns the named text/word argument, or "" if absent.
func (a Args) Text(name string) string { return a[name].Text }

// Number returns the named number argument, or 0 if absent.
func (a Args) Number(name string) int64 { return a[name].Number }

// Object returns the named object-like argument's resolved object, or
// nil if absent or unresolved.
func (a Args) Object(name string) *model.Object { return a[name].Object }

// Direction returns the named direction argument.
func (a Args) Direction(name string) model.Direction { return a[name].Direction }

// Has reports whether name was present in the matched input (relevant
// for optional placeholders).
func (a Args) Has(name string) bool { return a[name].Present }

// inputWord is one whitespace- or quote-delimited word of a raw input
// line, with its byte offset into the original string so an ArgText
// placeholder can capture the untouched remainder.
type inputWord struct {
	text  string
	start int
}

// splitWords tokenizes raw input the way a player types it: whitespace
// separates words, except a run wrapped in matching single or double
// quotes is kept as one word (its quotes stripped).
func splitWords(s string) []inputWord {
	var words []inputWord
	i, n := 0, len(s)
	for i < n {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		start := i
		if s[i] == '\'' || s[i] == '"' {
			quote := s[i]
			j := i + 1
			for j < n && s[j] != quote {
				j++
			}
			if j < n {
				words = append(words, inputWord{text: s[i+1 : j], start: start})
				i = j + 1
				continue
			}
			// unterminated quote: fall through to plain word scan
		}
		j := i
		for j < n && s[j] != ' ' && s[j] != '\t' {
			j++
		}
		words = append(words, inputWord{text: s[i:j], start: start})
		i = j
	}
	return words
}

// parseIndexPrefix splits an "N.rest" keyword phrase into its 1-based
// index (default 1 when absent) and the remaining keyword text (spec
// §4.4's resolution policy: "optional N. index prefix").
func parseIndexPrefix(raw string) (int, string) {
	dot := strings.IndexByte(raw, '.')
	if dot <= 0 {
		return 1, raw
	}
	n, err := strconv.Atoi(raw[:dot])
	if err != nil || n < 1 {
		return 1, raw
	}
	return n, raw[dot+1:]
}

// candidatesFor builds the object pool a source modifier draws from.
func candidatesFor(actor *model.Object, source Source, other *model.Object) []*model.Object {
	switch source {
	case SourceRoom:
		if room := actor.Room(); room != nil {
			return room.Contents()
		}
		return nil
	case SourceInventory:
		return actor.Contents()
	case SourceEquipment:
		return actor.EquippedItems()
	case SourceOtherArg:
		if other == nil {
			return nil
		}
		return other.Contents()
	default: // SourceAll
		var out []*model.Object
		if room := actor.Room(); room != nil {
			out = append(out, room.Contents()...)
		}
		out = append(out, actor.Contents()...)
		return out
	}
}

// filterByType keeps only candidates matching argType's kind
// restriction (spec §3.1's sum type: object accepts any kind, item is
// pickable-only, equipment is the three wearable kinds, mob is any
// mob, character is a mob with a bound character session).
func filterByType(candidates []*model.Object, argType ArgType) []*model.Object {
	out := candidates[:0:0]
	for _, c := range candidates {
		switch argType {
		case ArgItem:
			if c.Kind() != model.KindItem {
				continue
			}
		case ArgEquipment:
			switch c.Kind() {
			case model.KindEquipment, model.KindArmor, model.KindWeapon:
			default:
				continue
			}
		case ArgMob:
			if c.Kind() != model.KindMob {
				continue
			}
		case ArgCharacter:
			if c.Kind() != model.KindMob || !c.IsCharacter() {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// resolveObjectLike finds the Nth (1-based) candidate, among source's
// pool filtered by argType, whose keywords match rawPhrase.
func resolveObjectLike(actor *model.Object, argType ArgType, source Source, other *model.Object, rawPhrase string) (*model.Object, bool) {
	index, keywords := parseIndexPrefix(rawPhrase)
	pool := filterByType(candidatesFor(actor, source, other), argType)

	matchNum := 0
	for _, c := range pool {
		if !world.Match(c, keywords) {
			continue
		}
		matchNum++
		if matchNum == index {
			return c, true
		}
	}
	return nil, false
}
