// Package miekgdns is a reference dnsclient.Client backed by
// github.com/miekg/dns. It is grounded on thc2cat-spf-flattener's
// dns.Resolver (per-query timeout, RecursionDesired, a fixed upstream
// nameserver) and ghettovoice-gosip's dns.Resolver (nameserver discovery
// from /etc/resolv.conf, NAPTR decode + ordering). It lives outside the
// lazy resolution core — resolve.Context accepts any dnsclient.Client — but
// gives that interface a concrete, exercised implementation rather than
// leaving it purely abstract.
package miekgdns

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/sync/errgroup"

	"project/sip-dns-resolver/records"
)

const defaultTimeout = 5 * time.Second

// Client resolves NAPTR, SRV, and A/AAAA records against a configured (or
// system-default) recursive nameserver.
type Client struct {
	// Nameserver is the "host:port" of the recursive resolver to query.
	// If empty, it is read from /etc/resolv.conf on every query.
	Nameserver string
	// Timeout bounds each individual DNS query. Zero means defaultTimeout.
	Timeout time.Duration

	rdns *dns.Client
}

// NewClient builds a Client querying the given nameserver (or the system
// default when nameserver is empty) with the given per-query timeout (or
// defaultTimeout when zero).
func NewClient(nameserver string, timeout time.Duration) *Client {
	return &Client{Nameserver: nameserver, Timeout: timeout}
}

func (c *Client) client() *dns.Client {
	if c.rdns == nil {
		c.rdns = &dns.Client{Timeout: c.timeout()}
	}
	return c.rdns
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

func (c *Client) nameserver() (string, error) {
	if c.Nameserver != "" {
		if _, _, err := net.SplitHostPort(c.Nameserver); err != nil {
			return net.JoinHostPort(c.Nameserver, "53"), nil
		}
		return c.Nameserver, nil
	}

	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", fmt.Errorf("miekgdns: reading /etc/resolv.conf: %w", err)
	}
	if len(conf.Servers) == 0 {
		return "", fmt.Errorf("miekgdns: /etc/resolv.conf has no nameservers configured")
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

// exchange issues a single query of qtype against name and returns the raw
// answer message.
func (c *Client) exchange(ctx context.Context, name string, qtype uint16) (*dns.Msg, error) {
	nameserver, err := c.nameserver()
	if err != nil {
		return nil, err
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	resp, _, err := c.client().ExchangeContext(ctx, msg, nameserver)
	if err != nil {
		return nil, fmt.Errorf("miekgdns: querying %s %s: %w", name, dns.TypeToString[qtype], err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("miekgdns: %s %s: %s", name, dns.TypeToString[qtype], dns.RcodeToString[resp.Rcode])
	}
	return resp, nil
}

// NaptrLookup implements dnsclient.Client.
func (c *Client) NaptrLookup(ctx context.Context, domain string) (records.NaptrRecord, bool) {
	resp, err := c.exchange(ctx, domain, dns.TypeNAPTR)
	if err != nil {
		return records.NaptrRecord{}, false
	}
	return decodeNaptr(domain, resp), true
}

// SrvLookup implements dnsclient.Client.
func (c *Client) SrvLookup(ctx context.Context, domain records.SrvDomain) (records.SrvRecord, bool) {
	resp, err := c.exchange(ctx, domain.String(), dns.TypeSRV)
	if err != nil {
		return records.SrvRecord{}, false
	}
	return decodeSrv(domain, resp), true
}

// IPLookup implements dnsclient.Client. A and AAAA are queried concurrently
// via errgroup — the dual-stack fan-out spec.md §6 delegates to the DNS
// client — and both answers' addresses are merged, A first then AAAA,
// which is this client's dual-stack policy (a caller wanting a different
// policy, or only one family, supplies its own dnsclient.Client).
func (c *Client) IPLookup(ctx context.Context, domain string) (records.AddrRecord, error) {
	var aResp, aaaaResp *dns.Msg

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := c.exchange(gctx, domain, dns.TypeA)
		if err != nil {
			return nil // one family failing is not fatal; see below
		}
		aResp = resp
		return nil
	})
	g.Go(func() error {
		resp, err := c.exchange(gctx, domain, dns.TypeAAAA)
		if err != nil {
			return nil
		}
		aaaaResp = resp
		return nil
	})
	_ = g.Wait() // errors are swallowed per-family; only "both failed" is an error

	var ips []net.IP
	if aResp != nil {
		ips = append(ips, decodeAddrs(aResp, dns.TypeA)...)
	}
	if aaaaResp != nil {
		ips = append(ips, decodeAddrs(aaaaResp, dns.TypeAAAA)...)
	}

	if len(ips) == 0 {
		return records.AddrRecord{}, fmt.Errorf("miekgdns: no A or AAAA records found for %s", domain)
	}

	return records.AddrRecord{Domain: domain, IPAddrs: ips}, nil
}
