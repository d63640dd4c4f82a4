package resolve

import (
	"net"

	"project/sip-dns-resolver/transport"
)

// URI is the minimal view of a SIP request-URI that NewContext needs.
// Parsing the URI itself, and everything else a full SIP URI type carries,
// is an external collaborator per spec §1 — this library depends only on
// this interface's four questions.
type URI interface {
	// Scheme returns the URI scheme, lowercased ("sip" or "sips").
	Scheme() string
	// Host returns the URI's host as either a literal IP address or a
	// domain name. Exactly one of the two return values is valid,
	// indicated by isIP.
	Host() (ip net.IP, domain string, isIP bool)
	// Port returns the URI's explicit port, if any.
	Port() (port uint16, ok bool)
	// Transport returns the URI's `;transport=` parameter, if any.
	Transport() (t transport.Transport, ok bool)
}
