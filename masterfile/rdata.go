package masterfile

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Rdata is the typed payload of a resource record. Type returns the record
// type mnemonic; String returns the rdata in master-file text form, suitable
// for re-parsing.
type Rdata interface {
	Type() string
	String() string
}

// DecodeFunc converts the tokens after the type token into a typed rdata
// value. Decoders consume tokens by advancing the cursor.
type DecodeFunc func(c *TokenCursor) (Rdata, error)

// A record (IPv4 address)
type A struct {
	Address net.IP
}

func (A) Type() string     { return "A" }
func (r A) String() string { return r.Address.String() }

// AAAA record (IPv6 address)
type AAAA struct {
	Address net.IP
}

func (AAAA) Type() string     { return "AAAA" }
func (r AAAA) String() string { return r.Address.String() }

// CNAME record (canonical name)
type CNAME struct {
	Target string
}

func (CNAME) Type() string     { return "CNAME" }
func (r CNAME) String() string { return r.Target }

// MX record (mail exchange)
type MX struct {
	Priority uint16
	Mail     string
}

func (MX) Type() string     { return "MX" }
func (r MX) String() string { return fmt.Sprintf("%d %s", r.Priority, r.Mail) }

// TXT record (text data)
type TXT struct {
	Text string
}

func (TXT) Type() string     { return "TXT" }
func (r TXT) String() string { return quoteText(r.Text) }

// NS record (name server)
type NS struct {
	NameServer string
}

func (NS) Type() string     { return "NS" }
func (r NS) String() string { return r.NameServer }

// SOA record (start of authority)
type SOA struct {
	PrimaryNS  string
	Email      string
	Serial     uint32
	Refresh    uint32
	Retry      uint32
	Expire     uint32
	MinimumTTL uint32
}

func (SOA) Type() string { return "SOA" }
func (r SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		r.PrimaryNS, r.Email, r.Serial, r.Refresh, r.Retry, r.Expire, r.MinimumTTL)
}

// PTR record (pointer)
type PTR struct {
	Pointer string
}

func (PTR) Type() string     { return "PTR" }
func (r PTR) String() string { return r.Pointer }

// SRV record (service location)
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (SRV) Type() string { return "SRV" }
func (r SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Priority, r.Weight, r.Port, r.Target)
}

// CAA record (certification authority authorization)
type CAA struct {
	Flags uint8
	Tag   string
	Value string
}

func (CAA) Type() string { return "CAA" }
func (r CAA) String() string {
	return fmt.Sprintf("%d %s %s", r.Flags, r.Tag, quoteText(r.Value))
}

// HINFO record (host information)
type HINFO struct {
	CPU string
	OS  string
}

func (HINFO) Type() string { return "HINFO" }
func (r HINFO) String() string {
	return quoteText(r.CPU) + " " + quoteText(r.OS)
}

// NAPTR record (naming authority pointer)
type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       string
	Service     string
	Regexp      string
	Replacement string
}

func (NAPTR) Type() string { return "NAPTR" }
func (r NAPTR) String() string {
	return fmt.Sprintf("%d %d %s %s %s %s",
		r.Order, r.Preference, quoteText(r.Flags), quoteText(r.Service), quoteText(r.Regexp), r.Replacement)
}

// SPF record (sender policy framework)
type SPF struct {
	Text string
}

func (SPF) Type() string     { return "SPF" }
func (r SPF) String() string { return quoteText(r.Text) }

// Unknown is the catch-all rdata for types with no registered decoder. It
// carries the literal type name and the raw remaining tokens, so future or
// private record types survive a parse unscathed.
type Unknown struct {
	TypeName string
	Tokens   []string
}

func (u Unknown) Type() string   { return u.TypeName }
func (u Unknown) String() string { return strings.Join(u.Tokens, " ") }

// builtinDecoders seeds a fresh registry covering the standard record types.
// Callers extend or override it per parser via WithDecoder.
func builtinDecoders() map[string]DecodeFunc {
	return map[string]DecodeFunc{
		"A":     decodeA,
		"AAAA":  decodeAAAA,
		"CNAME": decodeCNAME,
		"MX":    decodeMX,
		"TXT":   decodeTXT,
		"NS":    decodeNS,
		"SOA":   decodeSOA,
		"PTR":   decodePTR,
		"SRV":   decodeSRV,
		"CAA":   decodeCAA,
		"HINFO": decodeHINFO,
		"NAPTR": decodeNAPTR,
		"SPF":   decodeSPF,
	}
}

func decodeA(c *TokenCursor) (Rdata, error) {
	addr, ok := c.Take()
	if !ok {
		return nil, errors.New("A record missing address")
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil, fmt.Errorf("invalid A record address: %s", addr)
	}
	if ip.To4() == nil {
		return nil, fmt.Errorf("A record must be IPv4 address: %s", addr)
	}
	return A{Address: ip}, nil
}

func decodeAAAA(c *TokenCursor) (Rdata, error) {
	addr, ok := c.Take()
	if !ok {
		return nil, errors.New("AAAA record missing address")
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil, fmt.Errorf("invalid AAAA record address: %s", addr)
	}
	if ip.To4() != nil {
		return nil, fmt.Errorf("AAAA record must be IPv6 address: %s", addr)
	}
	return AAAA{Address: ip}, nil
}

func decodeCNAME(c *TokenCursor) (Rdata, error) {
	target, ok := c.Take()
	if !ok {
		return nil, errors.New("CNAME record missing target")
	}
	return CNAME{Target: target}, nil
}

func decodeMX(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 2 {
		return nil, errors.New("MX record requires priority and mail server")
	}
	prioTok, _ := c.Take()
	priority, err := strconv.ParseUint(prioTok, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid MX priority: %v", err)
	}
	mail, _ := c.Take()
	return MX{Priority: uint16(priority), Mail: mail}, nil
}

func decodeTXT(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 1 {
		return nil, errors.New("TXT record missing text")
	}
	return TXT{Text: extractText(c.Rest())}, nil
}

func decodeNS(c *TokenCursor) (Rdata, error) {
	ns, ok := c.Take()
	if !ok {
		return nil, errors.New("NS record missing name server")
	}
	return NS{NameServer: ns}, nil
}

func decodeSOA(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 7 {
		return nil, errors.New("SOA record requires 7 fields")
	}
	primaryNS, _ := c.Take()
	email, _ := c.Take()

	var counters [5]uint32
	names := []string{"serial", "refresh", "retry", "expire", "minimum TTL"}
	for i := range counters {
		tok, _ := c.Take()
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid SOA %s: %v", names[i], err)
		}
		counters[i] = uint32(v)
	}

	return SOA{
		PrimaryNS:  primaryNS,
		Email:      email,
		Serial:     counters[0],
		Refresh:    counters[1],
		Retry:      counters[2],
		Expire:     counters[3],
		MinimumTTL: counters[4],
	}, nil
}

func decodePTR(c *TokenCursor) (Rdata, error) {
	pointer, ok := c.Take()
	if !ok {
		return nil, errors.New("PTR record missing pointer")
	}
	return PTR{Pointer: pointer}, nil
}

func decodeSRV(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 4 {
		return nil, errors.New("SRV record requires 4 fields")
	}
	var values [3]uint16
	names := []string{"priority", "weight", "port"}
	for i := range values {
		tok, _ := c.Take()
		v, err := strconv.ParseUint(tok, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid SRV %s: %v", names[i], err)
		}
		values[i] = uint16(v)
	}
	target, _ := c.Take()
	return SRV{Priority: values[0], Weight: values[1], Port: values[2], Target: target}, nil
}

func decodeCAA(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 3 {
		return nil, errors.New("CAA record requires 3 fields")
	}
	flagTok, _ := c.Take()
	flags, err := strconv.ParseUint(flagTok, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid CAA flags: %v", err)
	}
	tag, _ := c.Take()
	value, _ := c.Take()
	return CAA{Flags: uint8(flags), Tag: tag, Value: unquote(value)}, nil
}

func decodeHINFO(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 2 {
		return nil, errors.New("HINFO record requires 2 fields")
	}
	cpu, _ := c.Take()
	os, _ := c.Take()
	return HINFO{CPU: unquote(cpu), OS: unquote(os)}, nil
}

func decodeNAPTR(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 6 {
		return nil, errors.New("NAPTR record requires 6 fields")
	}
	orderTok, _ := c.Take()
	order, err := strconv.ParseUint(orderTok, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid NAPTR order: %v", err)
	}
	prefTok, _ := c.Take()
	pref, err := strconv.ParseUint(prefTok, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid NAPTR preference: %v", err)
	}
	flags, _ := c.Take()
	service, _ := c.Take()
	regexp, _ := c.Take()
	replacement, _ := c.Take()
	return NAPTR{
		Order:       uint16(order),
		Preference:  uint16(pref),
		Flags:       unquote(flags),
		Service:     unquote(service),
		Regexp:      unquote(regexp),
		Replacement: replacement,
	}, nil
}

func decodeSPF(c *TokenCursor) (Rdata, error) {
	if c.Remaining() < 1 {
		return nil, errors.New("SPF record missing text")
	}
	return SPF{Text: extractText(c.Rest())}, nil
}

// extractText joins character-string tokens into one text value. A single
// wrapping quote pair is removed; multiple quoted segments keep their quotes
// so they survive a round trip intact.
func extractText(tokens []string) string {
	content := strings.Join(tokens, " ")
	if strings.HasPrefix(content, "\"") && strings.HasSuffix(content, "\"") && len(content) >= 2 {
		if strings.Count(content, "\"") == 2 {
			content = content[1 : len(content)-1]
		}
	}
	return content
}

func unquote(s string) string {
	return strings.Trim(s, "\"")
}

func quoteText(s string) string {
	if strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"") && len(s) >= 2 {
		return s
	}
	return "\"" + s + "\""
}
