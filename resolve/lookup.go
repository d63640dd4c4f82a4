package resolve

import (
	"context"
	"log/slog"

	"project/sip-dns-resolver/records"
	"project/sip-dns-resolver/target"
)

// Case identifies which of the four RFC 3263 procedures a Lookup is
// running.
type Case int

const (
	// IPAddr: the URI host is an IP literal. No DNS is ever issued.
	IPAddr Case = iota
	// DomainWithPort: the URI host is a domain and an explicit port was
	// given. Only an A/AAAA lookup is issued.
	DomainWithPort
	// DomainWithTransport: the URI host is a domain, no port, and an
	// explicit transport was given. SRV is tried first, then A/AAAA
	// directly on the domain.
	DomainWithTransport
	// JustDomain: the URI host is a domain with neither port nor
	// transport given. NAPTR is tried first, then per-transport SRV,
	// then a final A/AAAA fallback.
	JustDomain
)

func (c Case) String() string {
	switch c {
	case IPAddr:
		return "ip-addr"
	case DomainWithPort:
		return "domain-with-port"
	case DomainWithTransport:
		return "domain-with-transport"
	case JustDomain:
		return "just-domain"
	default:
		return "invalid"
	}
}

// Lookup is the root of the lazy resolution tree for one request-URI. It
// wraps the Case-appropriate Resolvable[Target] tree built by NewLookup and
// delegates State/Next to it.
type Lookup struct {
	kind Case
	root Resolvable[target.Target]
}

// Case reports which RFC 3263 procedure this Lookup is running.
func (l *Lookup) Case() Case {
	return l.kind
}

// State reports the lookup tree's current State.
func (l *Lookup) State() State {
	return l.root.State()
}

// Next produces the next candidate Target, issuing exactly the DNS queries
// needed to produce it. ok is false once the lookup is exhausted; every
// subsequent call also returns ok == false (spec §8 property 1).
func (l *Lookup) Next(ctx context.Context) (target.Target, bool) {
	return l.root.ResolveNext(ctx)
}

// NewLookup builds the Lookup for ctx, selecting the RFC 3263 case
// dictated by ctx.Host/Port/Transport (spec §4.7).
func NewLookup(ctx *Context) *Lookup {
	if ctx.Host.IsIPAddr() {
		return newIPAddrLookup(ctx)
	}

	switch {
	case ctx.HasPort:
		return newDomainWithPortLookup(ctx)
	case ctx.HasTransport:
		return newDomainWithTransportLookup(ctx)
	default:
		return newJustDomainLookup(ctx)
	}
}

func newIPAddrLookup(ctx *Context) *Lookup {
	t := ctx.DefaultTransport()
	port := t.DefaultPort()
	if ctx.HasPort {
		port = ctx.Port
	}

	debug(context.Background(), ctx.Logger, "sipdns: resolved RFC 3263 case",
		slog.String("case", IPAddr.String()), slog.String("host", ctx.Host.IPAddr().String()))

	return &Lookup{kind: IPAddr, root: newIPAddrResolvable(ctx.Host.IPAddr(), port, t)}
}

func newDomainWithPortLookup(ctx *Context) *Lookup {
	domain := ctx.Host.Domain()
	t := ctx.DefaultTransport()

	debug(context.Background(), ctx.Logger, "sipdns: resolved RFC 3263 case",
		slog.String("case", DomainWithPort.String()), slog.String("domain", domain), slog.Uint64("port", uint64(ctx.Port)))

	return &Lookup{
		kind: DomainWithPort,
		root: newAddrRecordResolvable(ctx.DNSClient, domain, ctx.Port, t, ctx.Logger),
	}
}

func newDomainWithTransportLookup(ctx *Context) *Lookup {
	domain := ctx.Host.Domain()
	t := ctx.Transport

	srvDomain := records.SrvDomain{Domain: domain, Protocol: t.Protocol(), Secure: ctx.Secure}

	debug(context.Background(), ctx.Logger, "sipdns: resolved RFC 3263 case",
		slog.String("case", DomainWithTransport.String()), slog.String("domain", domain), slog.String("transport", t.String()))

	children := []Resolvable[target.Target]{
		newSrvRecordResolvable(ctx.DNSClient, srvDomain, ctx.Logger),
		newAddrRecordResolvable(ctx.DNSClient, domain, t.DefaultPort(), t, ctx.Logger),
	}

	return &Lookup{kind: DomainWithTransport, root: newVec(children)}
}

func newJustDomainLookup(ctx *Context) *Lookup {
	domain := ctx.Host.Domain()
	availableTransports := ctx.AvailableTransports()

	debug(context.Background(), ctx.Logger, "sipdns: resolved RFC 3263 case",
		slog.String("case", JustDomain.String()), slog.String("domain", domain))

	children := make([]Resolvable[target.Target], 0, len(availableTransports)+2)
	children = append(children, newNaptrRecordResolvable(ctx.DNSClient, domain, availableTransports, ctx.Logger))

	for _, srvDomain := range records.CandidatesFor(domain, ctx.Secure, availableTransports) {
		children = append(children, newSrvRecordResolvable(ctx.DNSClient, srvDomain, ctx.Logger))
	}

	defaultTransport := ctx.DefaultTransport()
	children = append(children, newAddrRecordResolvable(ctx.DNSClient, domain, defaultTransport.DefaultPort(), defaultTransport, ctx.Logger))

	return &Lookup{kind: JustDomain, root: newVec(children)}
}
