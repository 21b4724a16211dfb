package masterfile

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Parser parses zone master files. A Parser holds only configuration (its
// decoder and fixup registries); all mutable parse state is scoped to one
// Parse call, so a single Parser is safe for concurrent use.
type Parser struct {
	decoders   map[string]DecodeFunc
	fixups     map[string]FixupFunc
	defaultTTL *uint32
	log        *slog.Logger
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithDecoder registers an rdata decoder for a record type, overriding any
// built-in decoder of the same name. The name also becomes recognisable to
// the field classifier.
func WithDecoder(name string, fn DecodeFunc) Option {
	return func(p *Parser) {
		p.decoders[strings.ToUpper(name)] = fn
	}
}

// WithFixup registers a pre-decode adjustment for a record type, overriding
// any built-in fixup of the same name.
func WithFixup(name string, fn FixupFunc) Option {
	return func(p *Parser) {
		p.fixups[strings.ToUpper(name)] = fn
	}
}

// WithDefaultTTL seeds the zone's default TTL as if the file opened with a
// $TTL directive.
func WithDefaultTTL(secs uint32) Option {
	return func(p *Parser) {
		p.defaultTTL = &secs
	}
}

// WithLogger enables debug tracing of classification and assembly.
func WithLogger(log *slog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a parser with the built-in decoder and fixup registries,
// adjusted by the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		decoders: builtinDecoders(),
		fixups:   builtinFixups(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parseState carries the per-invocation mutable state: the zone under
// construction and the last explicitly stated owner name, TTL and class.
// Last-stated values update only when a record states the field itself,
// never when the field was inherited.
type parseState struct {
	zone      *Zone
	lastName  string
	lastTTL   *uint32
	lastClass Class
}

// controlEntry matches directive lines such as $TTL or $ORIGIN.
var controlEntry = regexp.MustCompile(`^\$[A-Za-z0-9]+$`)

// Parse reads zone-file text into a Zone. name is the zone's origin; it
// seeds the owner name for a leading record that states none. The text is
// normalised first (comments stripped, multi-line records joined).
func (p *Parser) Parse(name, text string) (*Zone, error) {
	lines, err := Normalize(text)
	if err != nil {
		return nil, err
	}

	st := &parseState{
		zone:     &Zone{Name: name},
		lastName: name,
	}
	if p.defaultTTL != nil {
		st.zone.DefaultTTL = copyTTL(p.defaultTTL)
		st.lastTTL = copyTTL(p.defaultTTL)
	}

	for _, line := range lines {
		tokens := Tokenize(line.Text)
		if len(tokens) == 0 {
			continue
		}

		if controlEntry.MatchString(tokens[0]) {
			if err := p.handleControlEntry(st, line, tokens); err != nil {
				return nil, err
			}
			continue
		}

		rec, err := p.parseRecord(st, line, tokens)
		if err != nil {
			return nil, err
		}
		st.zone.Records = append(st.zone.Records, rec)
	}

	return st.zone, nil
}

// ParseFile reads and parses a zone file from disk.
func (p *Parser) ParseFile(name, path string) (*Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(name, string(data))
}

// handleControlEntry applies a $-prefixed directive line. Only $TTL is
// implemented; it sets the zone default and seeds the last-stated TTL for
// records that never state one. Unrecognised directives are ignored - a
// zone using $GENERATE or $INCLUDE still parses, minus those lines.
func (p *Parser) handleControlEntry(st *parseState, line Line, tokens []string) error {
	directive := strings.ToUpper(tokens[0])
	if directive != "$TTL" {
		p.log.Debug("ignoring directive", "directive", tokens[0], "line", line.Number)
		return nil
	}

	if len(tokens) < 2 {
		return directiveErrorf(line.Number, "$TTL missing value")
	}
	v, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil {
		return directiveErrorf(line.Number, "invalid $TTL value %q", tokens[1])
	}
	ttl := uint32(v)
	st.zone.DefaultTTL = &ttl
	st.lastTTL = copyTTL(&ttl)
	p.log.Debug("default TTL set", "ttl", ttl, "line", line.Number)
	return nil
}

// parseRecord assembles one resource record from a logical line: classify and
// consume at most one owner name, one TTL and one class until the type token
// is reached, run the type's ambiguity fixup, decode the rdata, then apply
// last-stated inheritance.
func (p *Parser) parseRecord(st *parseState, line Line, tokens []string) (ResourceRecord, error) {
	cur := NewTokenCursor(tokens)
	var rec ResourceRecord
	var haveTTL, haveClass bool
	rrType := ""

	for cur.Valid() && rrType == "" {
		i := cur.Pos()
		switch {
		case !haveTTL && p.isTTL(tokens, i, false):
			v, err := strconv.ParseUint(cur.Current(), 10, 32)
			if err != nil {
				return rec, syntaxErrorf(line.Number, "invalid TTL %q", cur.Current())
			}
			ttl := uint32(v)
			rec.TTL = &ttl
			haveTTL = true
			cur.Next()

		case !haveClass && p.isClass(tokens, i, false):
			rec.Class = Class(strings.ToUpper(cur.Current()))
			haveClass = true
			cur.Next()

		case i == 0 && p.isResourceName(tokens, i):
			rec.Name = cur.Current()
			cur.Next()

		case p.isType(tokens, i):
			rrType = strings.ToUpper(cur.Current())
			cur.Next()

		default:
			return rec, syntaxErrorf(line.Number, "cannot classify %q in %q", cur.Current(), line.Text)
		}
	}

	if rrType == "" {
		return rec, structuralErrorf(line.Number, "no record type in %q", line.Text)
	}

	if fixup, ok := p.fixups[rrType]; ok {
		fixup(&rec)
	}

	p.log.Debug("record shell assembled",
		"name", rec.Name, "class", rec.Class, "type", rrType, "line", line.Number)

	if decode, ok := p.decoders[rrType]; ok {
		rdata, err := decode(cur)
		if err != nil {
			return rec, rdataError(line.Number, rrType, err)
		}
		rec.Rdata = rdata
	} else {
		rec.Rdata = Unknown{TypeName: rrType, Tokens: cur.Rest()}
	}

	// Inheritance: unset fields copy the last stated values, stated fields
	// become the new last stated values.
	if rec.Name == "" {
		rec.Name = st.lastName
	} else {
		st.lastName = rec.Name
	}
	if rec.TTL == nil {
		rec.TTL = copyTTL(st.lastTTL)
	} else {
		st.lastTTL = copyTTL(rec.TTL)
	}
	if rec.Class == "" {
		rec.Class = st.lastClass
	} else {
		st.lastClass = rec.Class
	}

	return rec, nil
}
