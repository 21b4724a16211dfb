package masterfile

import "strconv"

// FixupFunc adjusts an assembled record shell after its type is known but
// before its rdata is decoded. Fixups exist for types whose records are
// syntactically ambiguous under the general grammar; they are keyed by type
// name and extendable via WithFixup.
type FixupFunc func(rec *ResourceRecord)

// ptrOwnerMax is the plausibility threshold for the PTR fixup: a bare leading
// integer below it is overwhelmingly an IPv4 reverse-lookup octet serving as
// owner name, not a TTL.
const ptrOwnerMax = 256

func builtinFixups() map[string]FixupFunc {
	return map[string]FixupFunc{
		"PTR": fixupPTROwner,
	}
}

// fixupPTROwner resolves the numeric owner-name vs TTL collision. A line like
// "50 IN PTR host." reads as "owner omitted, TTL=50" under the grammar, but
// 50 is an implausible TTL; reinterpret it as the owner name. Values >= 256
// stay genuine TTLs.
func fixupPTROwner(rec *ResourceRecord) {
	if rec.Name != "" || rec.TTL == nil {
		return
	}
	if *rec.TTL >= ptrOwnerMax {
		return
	}
	rec.Name = strconv.FormatUint(uint64(*rec.TTL), 10)
	rec.TTL = nil
}
