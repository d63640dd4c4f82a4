// Package transport defines the closed set of SIP transports this library
// resolves targets for, and the RFC 3263 rules that relate them: which ones
// are secure, which underlying wire protocol they ride on, and the default
// port to use when a URI doesn't specify one.
package transport

import "fmt"

// Transport is a SIP transport protocol.
type Transport int

const (
	UDP Transport = iota
	TCP
	TLS
	SCTP
	TLSSCTP
	WS
	WSS
)

// All returns every transport this library knows about, in a stable order.
func All() []Transport {
	return []Transport{UDP, TCP, TLS, SCTP, TLSSCTP, WS, WSS}
}

// SecureTransports returns the transports whose wire encryption is TLS-based.
func SecureTransports() []Transport {
	return []Transport{TLS, TLSSCTP, WSS}
}

func (t Transport) String() string {
	switch t {
	case UDP:
		return "UDP"
	case TCP:
		return "TCP"
	case TLS:
		return "TLS"
	case SCTP:
		return "SCTP"
	case TLSSCTP:
		return "TLS-SCTP"
	case WS:
		return "WS"
	case WSS:
		return "WSS"
	default:
		return fmt.Sprintf("Transport(%d)", int(t))
	}
}

// Secure reports whether t encrypts the wire.
func (t Transport) Secure() bool {
	switch t {
	case TLS, TLSSCTP, WSS:
		return true
	default:
		return false
	}
}

// Protocol returns the underlying wire protocol used in `_proto` SRV
// labels: the secure transports map down to their insecure carrier, every
// other transport maps to itself.
func (t Transport) Protocol() Transport {
	switch t {
	case TLS:
		return TCP
	case TLSSCTP:
		return SCTP
	case WSS:
		return WS
	default:
		return t
	}
}

// DefaultPort returns the well-known port for this transport, per RFC 3263 and
// RFC 7118 (WS/WSS).
func (t Transport) DefaultPort() uint16 {
	switch t {
	case UDP, TCP:
		return 5060
	case TLS:
		return 5061
	case SCTP:
		return 5060
	case TLSSCTP:
		return 5061
	case WS:
		return 80
	case WSS:
		return 443
	default:
		return 5060
	}
}

// FromProtocolLabel parses one of the four `_proto` labels used in SRV and
// NAPTR lookups ("udp", "tcp", "sctp", "ws", all-lowercase or all-uppercase;
// mixed-case labels are rejected) into the
// underlying-protocol Transport it names. It never returns a secure
// transport: secureness is carried separately by the `_sip`/`_sips` label.
func FromProtocolLabel(label string) (Transport, error) {
	switch label {
	case "udp", "UDP":
		return UDP, nil
	case "tcp", "TCP":
		return TCP, nil
	case "sctp", "SCTP":
		return SCTP, nil
	case "ws", "WS":
		return WS, nil
	default:
		return 0, fmt.Errorf("transport: unknown protocol label %q", label)
	}
}

// ProtocolLabel returns the lowercase `_proto` label for the transport's
// underlying protocol (e.g. TLS -> "tcp").
func (t Transport) ProtocolLabel() string {
	switch t.Protocol() {
	case UDP:
		return "udp"
	case TCP:
		return "tcp"
	case SCTP:
		return "sctp"
	case WS:
		return "ws"
	default:
		return "tcp"
	}
}
