// Package masterfile parses BIND-style DNS zone master files (RFC 1035 §5)
// into structured zones. A zone file line has the shape
//
//	[owner-name] [ttl] [class] type rdata...
//
// where owner-name, ttl and class are optional and partially reorderable, and
// any omitted field is inherited from the previously fully-stated record.
// Only the type token carries an unambiguous marker, so classifying the other
// fields requires bounded lookahead; the numeric owner-name vs TTL collision
// for PTR records is resolved after the type is known.
package masterfile

import "strconv"

// Class is a DNS protocol class code (almost always IN). The empty string
// means the record did not state a class and none was inherited.
type Class string

const (
	ClassIN Class = "IN"
	ClassCH Class = "CH"
	ClassHS Class = "HS"
)

// knownClasses is the set of class codes the field classifier recognises.
var knownClasses = map[Class]bool{
	ClassIN: true,
	ClassCH: true,
	ClassHS: true,
}

// ResourceRecord is one parsed DNS entry. Name, TTL and Class may be unset
// when the input omitted them and no earlier record supplied a value to
// inherit. Rdata is always present; the record's type is Rdata.Type().
type ResourceRecord struct {
	Name  string
	TTL   *uint32
	Class Class
	Rdata Rdata
}

// Type returns the record's type mnemonic, taken from its RDATA.
func (r ResourceRecord) Type() string {
	return r.Rdata.Type()
}

// Zone is a parsed zone file: a name, an optional default TTL set by $TTL,
// and the resource records in input order.
type Zone struct {
	Name       string
	DefaultTTL *uint32
	Records    []ResourceRecord
}

func copyTTL(ttl *uint32) *uint32 {
	if ttl == nil {
		return nil
	}
	v := *ttl
	return &v
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}
