package resolve_test

import (
	"net"

	"project/sip-dns-resolver/transport"
)

// fakeURI is a minimal resolve.URI implementation used by this package's
// tests, standing in for a real SIP URI parser (an external collaborator
// per spec §1).
type fakeURI struct {
	scheme       string
	ip           net.IP
	domain       string
	port         uint16
	hasPort      bool
	transportVal transport.Transport
	hasTransport bool
}

func (u fakeURI) Scheme() string {
	return u.scheme
}

func (u fakeURI) Host() (net.IP, string, bool) {
	if u.ip != nil {
		return u.ip, "", true
	}
	return nil, u.domain, false
}

func (u fakeURI) Port() (uint16, bool) {
	return u.port, u.hasPort
}

func (u fakeURI) Transport() (transport.Transport, bool) {
	return u.transportVal, u.hasTransport
}
