package records

import (
	"fmt"
	"strings"

	"project/sip-dns-resolver/transport"
)

// SrvDomain is a logical `_service._proto.host` SRV lookup key, e.g.
// `_sips._tcp.example.com`. Protocol is always one of the four underlying
// wire protocols (TCP, UDP, SCTP, WS); Secure selects the `_sip`/`_sips`
// service label independently of Protocol, so nonsensical-but-legal
// combinations like `_sips._udp.example.com` round-trip rather than being
// rejected (see NaptrServices, which never produces one of those).
type SrvDomain struct {
	Domain   string
	Protocol transport.Transport
	Secure   bool
}

// Transport returns the effective transport this SrvDomain resolves to:
// (secure,protocol) maps to the secure transport that rides that protocol,
// or to protocol itself when insecure (or when no secure variant exists).
func (d SrvDomain) Transport() transport.Transport {
	if !d.Secure {
		return d.Protocol
	}
	switch d.Protocol {
	case transport.TCP:
		return transport.TLS
	case transport.SCTP:
		return transport.TLSSCTP
	case transport.WS:
		return transport.WSS
	default:
		return d.Protocol
	}
}

// String renders the canonical wire form: `_sips._<proto>.<domain>` if
// Secure, else `_sip._<proto>.<domain>`.
func (d SrvDomain) String() string {
	label := "_sip"
	if d.Secure {
		label = "_sips"
	}
	return fmt.Sprintf("%s._%s.%s", label, d.Protocol.ProtocolLabel(), d.Domain)
}

// ParseSrvDomain parses the canonical wire form produced by String.
func ParseSrvDomain(s string) (SrvDomain, error) {
	var secure bool
	rest, ok := cutPrefix(s, "_sips._")
	if ok {
		secure = true
	} else {
		rest, ok = cutPrefix(s, "_sip._")
		if !ok {
			return SrvDomain{}, fmt.Errorf("records: %q is not a SIP SRV domain (missing _sip/_sips label)", s)
		}
		secure = false
	}

	protoLabel, domain, ok := strings.Cut(rest, ".")
	if !ok || domain == "" {
		return SrvDomain{}, fmt.Errorf("records: %q is missing a proto or domain label", s)
	}

	proto, err := transport.FromProtocolLabel(protoLabel)
	if err != nil {
		return SrvDomain{}, fmt.Errorf("records: parsing %q: %w", s, err)
	}

	return SrvDomain{Domain: domain, Protocol: proto, Secure: secure}, nil
}

func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// CandidatesFor builds the full set of SrvDomains for domain across
// transports, preserving the order of transports. This is the helper the
// JustDomain lookup case uses to enumerate one SrvDomain per supported
// transport; it is exported because a caller enumerating SRV fallbacks
// outside of Lookup (e.g. for diagnostics) needs the identical construction.
func CandidatesFor(domain string, secure bool, transports []transport.Transport) []SrvDomain {
	out := make([]SrvDomain, 0, len(transports))
	for _, t := range transports {
		out = append(out, SrvDomain{Domain: domain, Protocol: t.Protocol(), Secure: secure})
	}
	return out
}
