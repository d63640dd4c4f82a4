package records

import (
	"sort"

	"project/sip-dns-resolver/transport"
)

// SrvEntry is a single SRV resource record.
type SrvEntry struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// totalWeight is the sort key used by Sorted: higher priority (the
// RFC-numerical sense, i.e. a *smaller* Priority number) sorts first, with
// Weight breaking ties. This is an intentional approximation of RFC 2782's
// weighted-random selection among equal-priority targets — see
// SPEC_FULL.md's Open Question decisions.
func (e SrvEntry) totalWeight() uint16 {
	return (10000 - e.Priority) + e.Weight
}

// SrvRecord holds the result of an SRV lookup: the domain that was queried
// and the entries the answer contained, in the order the DNS client
// returned them (callers are responsible for Sorted if ordering matters).
type SrvRecord struct {
	Domain  SrvDomain
	Entries []SrvEntry
}

// Transport returns the effective transport of this SRV record's domain.
func (r SrvRecord) Transport() transport.Transport {
	return r.Domain.Transport()
}

// Sorted returns a copy of r with Entries ordered by the (10000-priority)+weight
// descending key, the approximation described on SrvEntry.totalWeight.
func (r SrvRecord) Sorted() SrvRecord {
	entries := make([]SrvEntry, len(r.Entries))
	copy(entries, r.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].totalWeight() > entries[j].totalWeight()
	})
	return SrvRecord{Domain: r.Domain, Entries: entries}
}

// DomainsWithPorts returns the (target domain, port) pair of every entry, in
// entry order.
func (r SrvRecord) DomainsWithPorts() []DomainPort {
	out := make([]DomainPort, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, DomainPort{Domain: e.Target, Port: e.Port})
	}
	return out
}

// DomainPort pairs a target domain name with a port, as produced by
// SrvRecord.DomainsWithPorts.
type DomainPort struct {
	Domain string
	Port   uint16
}
