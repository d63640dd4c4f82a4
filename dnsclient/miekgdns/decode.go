package miekgdns

import (
	"net"

	"github.com/miekg/dns"

	"project/sip-dns-resolver/records"
)

// decodeAddrs extracts A or AAAA addresses from resp's answer section, in
// answer order — the switch-on-RR-type pattern used by both
// thc2cat-spf-flattener's dns.Resolver.ResolveAAndAAAA and
// ghettovoice-gosip's dns.Resolver.LookupIP.
func decodeAddrs(resp *dns.Msg, qtype uint16) []net.IP {
	var ips []net.IP
	for _, ans := range resp.Answer {
		switch qtype {
		case dns.TypeA:
			if a, ok := ans.(*dns.A); ok {
				ips = append(ips, a.A)
			}
		case dns.TypeAAAA:
			if aaaa, ok := ans.(*dns.AAAA); ok {
				ips = append(ips, aaaa.AAAA)
			}
		}
	}
	return ips
}

// decodeNaptr extracts NAPTR entries from resp's answer section, grounded
// on ghettovoice-gosip's dns.Resolver.LookupNAPTR decode loop.
func decodeNaptr(domain string, resp *dns.Msg) records.NaptrRecord {
	entries := make([]records.NaptrEntry, 0, len(resp.Answer))
	for _, ans := range resp.Answer {
		rr, ok := ans.(*dns.NAPTR)
		if !ok {
			continue
		}
		entries = append(entries, records.NaptrEntry{
			Order:       rr.Order,
			Preference:  rr.Preference,
			Flags:       records.ParseNaptrFlags([]byte(rr.Flags)),
			Services:    records.ParseNaptrServices(rr.Service),
			Regexp:      []byte(rr.Regexp),
			Replacement: rr.Replacement,
		})
	}
	return records.NaptrRecord{Domain: domain, Entries: entries}
}

// decodeSrv extracts SRV entries from resp's answer section.
func decodeSrv(domain records.SrvDomain, resp *dns.Msg) records.SrvRecord {
	entries := make([]records.SrvEntry, 0, len(resp.Answer))
	for _, ans := range resp.Answer {
		rr, ok := ans.(*dns.SRV)
		if !ok {
			continue
		}
		entries = append(entries, records.SrvEntry{
			Priority: rr.Priority,
			Weight:   rr.Weight,
			Port:     rr.Port,
			Target:   rr.Target,
		})
	}
	return records.SrvRecord{Domain: domain, Entries: entries}
}
