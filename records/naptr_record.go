package records

import (
	"sort"
	"strings"

	"project/sip-dns-resolver/transport"
)

// NaptrFlagKind is the recognized subset of NAPTR flag values this library
// cares about. Only FlagS ("S", meaning the replacement is an SRV domain)
// is honored for SIP lookups; the rest are preserved so a caller inspecting
// a filtered-out NaptrEntry can still see what flag it carried.
type NaptrFlagKind int

const (
	FlagS NaptrFlagKind = iota
	FlagA
	FlagU
	FlagP
	FlagOther
)

// NaptrFlags is a parsed NAPTR flags field.
type NaptrFlags struct {
	Kind NaptrFlagKind
	Raw  []byte
}

// ParseNaptrFlags classifies a raw NAPTR flags field. RFC 3403 flags are
// single characters and conventionally uppercase, but comparison here is
// case-insensitive since several authoritative servers emit lowercase.
func ParseNaptrFlags(raw []byte) NaptrFlags {
	switch {
	case len(raw) == 1 && (raw[0] == 'S' || raw[0] == 's'):
		return NaptrFlags{Kind: FlagS, Raw: raw}
	case len(raw) == 1 && (raw[0] == 'A' || raw[0] == 'a'):
		return NaptrFlags{Kind: FlagA, Raw: raw}
	case len(raw) == 1 && (raw[0] == 'U' || raw[0] == 'u'):
		return NaptrFlags{Kind: FlagU, Raw: raw}
	case len(raw) == 1 && (raw[0] == 'P' || raw[0] == 'p'):
		return NaptrFlags{Kind: FlagP, Raw: raw}
	default:
		return NaptrFlags{Kind: FlagOther, Raw: raw}
	}
}

// IsS reports whether these are the "S" flags this library acts on.
func (f NaptrFlags) IsS() bool {
	return f.Kind == FlagS
}

// NaptrServiceKind is the recognized subset of NAPTR service tokens for SIP
// (RFC 3263 §4.1), plus a catch-all for anything else.
type NaptrServiceKind int

const (
	SipD2T NaptrServiceKind = iota
	SipD2U
	SipD2S
	SipD2W
	SipsD2T
	SipsD2U
	SipsD2S
	SipsD2W
	ServiceOther
)

// NaptrServices is a parsed NAPTR services field.
type NaptrServices struct {
	Kind NaptrServiceKind
	Raw  string
}

// ParseNaptrServices parses a NAPTR services field such as "SIP+D2T". The
// token is matched case-insensitively; anything unrecognized becomes
// ServiceOther rather than an error, since NAPTR records frequently carry
// services unrelated to SIP (e.g. ENUM's "E2U+...") that this library
// should simply ignore, not fail on.
func ParseNaptrServices(raw string) NaptrServices {
	switch strings.ToUpper(raw) {
	case "SIP+D2T":
		return NaptrServices{Kind: SipD2T, Raw: raw}
	case "SIP+D2U":
		return NaptrServices{Kind: SipD2U, Raw: raw}
	case "SIP+D2S":
		return NaptrServices{Kind: SipD2S, Raw: raw}
	case "SIP+D2W":
		return NaptrServices{Kind: SipD2W, Raw: raw}
	case "SIPS+D2T":
		return NaptrServices{Kind: SipsD2T, Raw: raw}
	case "SIPS+D2U":
		return NaptrServices{Kind: SipsD2U, Raw: raw}
	case "SIPS+D2S":
		return NaptrServices{Kind: SipsD2S, Raw: raw}
	case "SIPS+D2W":
		return NaptrServices{Kind: SipsD2W, Raw: raw}
	default:
		return NaptrServices{Kind: ServiceOther, Raw: raw}
	}
}

// Transport returns the transport this service maps to. SipsD2U and
// SipsD2S have no transport — secure UDP/SCTP is undefined in SIP — and
// are filtered out by returning ok == false.
func (s NaptrServices) Transport() (t transport.Transport, ok bool) {
	switch s.Kind {
	case SipD2T:
		return transport.TCP, true
	case SipD2U:
		return transport.UDP, true
	case SipD2S:
		return transport.SCTP, true
	case SipD2W:
		return transport.WS, true
	case SipsD2T:
		return transport.TLS, true
	case SipsD2W:
		return transport.WSS, true
	default:
		return 0, false
	}
}

// Secure reports whether this service is one of the SIPS+ variants.
func (s NaptrServices) Secure() bool {
	switch s.Kind {
	case SipsD2T, SipsD2U, SipsD2S, SipsD2W:
		return true
	default:
		return false
	}
}

// NaptrEntry is a single NAPTR resource record, filtered down to the fields
// RFC 3263 resolution needs. Only the Replacement field is ever consumed to
// build the next query; Regexp rewriting is out of scope (see spec
// Non-goals) and kept only for callers that want to inspect it.
type NaptrEntry struct {
	Order       uint16
	Preference  uint16
	Flags       NaptrFlags
	Services    NaptrServices
	Regexp      []byte
	Replacement string
}

func (e NaptrEntry) totalWeight() uint16 {
	return e.Order + e.Preference
}

// NaptrRecord holds the result of a NAPTR lookup.
type NaptrRecord struct {
	Domain  string
	Entries []NaptrEntry
}

// Sorted returns a copy of r with Entries ordered by the order+preference
// descending key (NaptrEntry.totalWeight) — see SPEC_FULL.md's Open
// Question decisions for why this approximates, rather than replicates,
// RFC 3403's (order asc, preference asc) rule.
func (r NaptrRecord) Sorted() NaptrRecord {
	entries := make([]NaptrEntry, len(r.Entries))
	copy(entries, r.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].totalWeight() > entries[j].totalWeight()
	})
	return NaptrRecord{Domain: r.Domain, Entries: entries}
}
