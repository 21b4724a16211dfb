package masterfile

import (
	"regexp"
	"strings"
)

// Field classification. Given the tokens of one logical line and an offset,
// the predicates below decide whether the token at that offset plays the role
// of owner-name, TTL, class or type. They are mutually recursive, purely
// look ahead, and never touch cursor state.
//
// Only the type token is self-describing; TTL and class are recognised by
// their own shape plus what follows them, and an owner name has no marker at
// all - it is inferred entirely from its successor. The inTTL/inClass flags
// stop the TTL<->class recursion from looping: once a predicate is already
// disambiguating one of the pair, the other may only be satisfied by a type.

// typePattern matches the mnemonic shape of record types that have no
// registered decoder (e.g. FUTURETYPE, TYPE65534). Requiring upper case keeps
// ordinary lower-case hostnames out of the type role.
var typePattern = regexp.MustCompile(`^[A-Z][A-Z0-9-]*$`)

// isType reports whether the token at i names a record type: a key in the
// parser's decoder registry (case-insensitive), or an upper-case mnemonic
// that is not a class code.
func (p *Parser) isType(tokens []string, i int) bool {
	if i < 0 || i >= len(tokens) {
		return false
	}
	tok := strings.ToUpper(tokens[i])
	if _, ok := p.decoders[tok]; ok {
		return true
	}
	if knownClasses[Class(tok)] {
		return false
	}
	return typePattern.MatchString(tokens[i])
}

// isTTL reports whether the token at i is a TTL: an unsigned integer followed
// by something that classifies as class (unless a class lookahead got us
// here) or as type.
func (p *Parser) isTTL(tokens []string, i int, inClass bool) bool {
	if i < 0 || i >= len(tokens) || !isNumeric(tokens[i]) {
		return false
	}
	if p.isType(tokens, i+1) {
		return true
	}
	return !inClass && p.isClass(tokens, i+1, true)
}

// isClass reports whether the token at i is a protocol class code followed by
// something that classifies as TTL (unless a TTL lookahead got us here) or as
// type.
func (p *Parser) isClass(tokens []string, i int, inTTL bool) bool {
	if i < 0 || i >= len(tokens) {
		return false
	}
	if !knownClasses[Class(strings.ToUpper(tokens[i]))] {
		return false
	}
	if p.isType(tokens, i+1) {
		return true
	}
	return !inTTL && p.isTTL(tokens, i+1, true)
}

// isResourceName reports whether the token at i can be an owner name. A name
// has no shape of its own, so the decision rests entirely on the next token
// classifying as TTL, class or type.
func (p *Parser) isResourceName(tokens []string, i int) bool {
	if i < 0 || i >= len(tokens) {
		return false
	}
	return p.isTTL(tokens, i+1, false) ||
		p.isClass(tokens, i+1, false) ||
		p.isType(tokens, i+1)
}
