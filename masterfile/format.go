package masterfile

import (
	"strconv"
	"strings"
)

// Encoding back to master-file text. Every field a record carries is written
// explicitly, so the output does not depend on inheritance and re-parsing an
// encoded zone yields the same ordered record sequence.

// String renders the record as one master-file line.
func (r ResourceRecord) String() string {
	parts := make([]string, 0, 5)
	if r.Name != "" {
		parts = append(parts, r.Name)
	}
	if r.TTL != nil {
		parts = append(parts, strconv.FormatUint(uint64(*r.TTL), 10))
	}
	if r.Class != "" {
		parts = append(parts, string(r.Class))
	}
	parts = append(parts, r.Rdata.Type())
	if rdata := r.Rdata.String(); rdata != "" {
		parts = append(parts, rdata)
	}
	return strings.Join(parts, "\t")
}

// Encode renders the zone as master-file text: the $TTL directive when a
// default is set, then each record on its own line in input order.
func (z *Zone) Encode() string {
	var b strings.Builder
	if z.DefaultTTL != nil {
		b.WriteString("$TTL\t")
		b.WriteString(strconv.FormatUint(uint64(*z.DefaultTTL), 10))
		b.WriteByte('\n')
	}
	for _, rec := range z.Records {
		b.WriteString(rec.String())
		b.WriteByte('\n')
	}
	return b.String()
}
