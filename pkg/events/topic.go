package events

import "strings"

// Topics are structured names of the form "noun:verb" or
// "prefix.field:verb". A pattern is a topic in which any name segment,
// or the verb, is "*" and matches exactly one segment in that position.
// The single-character pattern "*" matches every topic.
//
// Examples:
//
//	"basket:changed"   matches only "basket:changed"
//	"order.*:change"   matches "order.address:change", not "contacts.email:change"
//	"*:changed"        matches "basket:changed" and "catalog:changed"
const (
	segSep  = "."
	verbSep = ":"

	// Wildcard matches exactly one segment in a pattern position.
	Wildcard = "*"
)

// Pattern is a compiled topic pattern. The zero value matches nothing;
// obtain one via Compile.
type Pattern struct {
	raw   string
	segs  []string
	verb  string
	exact bool // no wildcards, compare raw directly
	all   bool // the bare "*" pattern
}

// Compile parses a topic or pattern. It never fails: a malformed name
// simply compiles to an exact pattern that only matches itself.
func Compile(topic string) Pattern {
	if topic == Wildcard {
		return Pattern{raw: topic, all: true}
	}
	name, verb, ok := strings.Cut(topic, verbSep)
	if !ok {
		return Pattern{raw: topic, exact: true}
	}
	segs := strings.Split(name, segSep)
	exact := verb != Wildcard
	for _, s := range segs {
		if s == Wildcard {
			exact = false
		}
	}
	return Pattern{raw: topic, segs: segs, verb: verb, exact: exact}
}

// String returns the pattern source text.
func (p Pattern) String() string { return p.raw }

// Match reports whether topic is covered by the pattern.
func (p Pattern) Match(topic string) bool {
	if p.all {
		return true
	}
	if p.exact {
		return p.raw == topic
	}
	if p.raw == "" {
		return false
	}
	name, verb, ok := strings.Cut(topic, verbSep)
	if !ok {
		return false
	}
	if p.verb != Wildcard && p.verb != verb {
		return false
	}
	segs := strings.Split(name, segSep)
	if len(segs) != len(p.segs) {
		return false
	}
	for i, s := range p.segs {
		if s != Wildcard && s != segs[i] {
			return false
		}
	}
	return true
}

// MatchTopic reports whether topic is covered by pattern. It is the
// convenience form of Compile(pattern).Match(topic).
func MatchTopic(pattern, topic string) bool {
	return Compile(pattern).Match(topic)
}
