package resolve

import (
	"context"
	"log/slog"

	"project/sip-dns-resolver/dnsclient"
	"project/sip-dns-resolver/target"
	"project/sip-dns-resolver/transport"
)

// addrRecordResolvable resolves a domain's A/AAAA records into one
// ipAddrResolvable child per returned address, preserving DNS answer
// order. A DNS failure collapses it to Empty without surfacing the error —
// RFC 3263 moves on to the next fallback (spec §7).
type addrRecordResolvable struct {
	client    dnsclient.Client
	domain    string
	port      uint16
	transport transport.Transport
	logger    *slog.Logger

	children *vec[target.Target]
}

func newAddrRecordResolvable(client dnsclient.Client, domain string, port uint16, t transport.Transport, logger *slog.Logger) *addrRecordResolvable {
	return &addrRecordResolvable{client: client, domain: domain, port: port, transport: t, logger: logger, children: unsetVec[target.Target]()}
}

func (r *addrRecordResolvable) State() State {
	return r.children.State()
}

func (r *addrRecordResolvable) ResolveNext(ctx context.Context) (target.Target, bool) {
	if r.children.State() == Unset {
		r.resolveDomain(ctx)
	}
	return r.children.ResolveNext(ctx)
}

func (r *addrRecordResolvable) resolveDomain(ctx context.Context) {
	addrRecord, err := r.client.IPLookup(ctx, r.domain)
	if err != nil {
		debug(ctx, r.logger, "sipdns: A/AAAA lookup failed, collapsing branch to empty",
			slog.String("domain", r.domain), slog.Any("error", err))
		r.children = newVec[target.Target](nil)
		return
	}

	children := make([]Resolvable[target.Target], 0, len(addrRecord.IPAddrs))
	for _, ip := range addrRecord.IPAddrs {
		children = append(children, newIPAddrResolvable(ip, r.port, r.transport))
	}
	r.children = newVec(children)
}
