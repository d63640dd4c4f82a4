package records

import "net"

// AddrRecord holds the result of an A/AAAA lookup for a domain. IPAddrs
// preserves the DNS answer order; this library never reorders it — dual
// stack policy (A vs AAAA vs both, and in what order) is the DnsClient's
// choice, not this package's.
type AddrRecord struct {
	Domain  string
	IPAddrs []net.IP
}
