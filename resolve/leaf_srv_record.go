package resolve

import (
	"context"
	"log/slog"

	"project/sip-dns-resolver/dnsclient"
	"project/sip-dns-resolver/records"
	"project/sip-dns-resolver/target"
)

// srvRecordResolvable resolves an SRV domain into one addrRecordResolvable
// child per SRV entry, sorted by the (10000-priority)+weight descending key
// (records.SrvRecord.Sorted). A miss (the DNS client returns ok == false)
// collapses it to Empty.
type srvRecordResolvable struct {
	client dnsclient.Client
	domain records.SrvDomain
	logger *slog.Logger

	children *vec[target.Target]
}

func newSrvRecordResolvable(client dnsclient.Client, domain records.SrvDomain, logger *slog.Logger) *srvRecordResolvable {
	return &srvRecordResolvable{client: client, domain: domain, logger: logger, children: unsetVec[target.Target]()}
}

func (r *srvRecordResolvable) State() State {
	return r.children.State()
}

func (r *srvRecordResolvable) ResolveNext(ctx context.Context) (target.Target, bool) {
	if r.children.State() == Unset {
		r.resolveDomain(ctx)
	}
	return r.children.ResolveNext(ctx)
}

func (r *srvRecordResolvable) resolveDomain(ctx context.Context) {
	srvRecord, ok := r.client.SrvLookup(ctx, r.domain)
	if !ok {
		debug(ctx, r.logger, "sipdns: SRV lookup missed, collapsing branch to empty",
			slog.String("srv_domain", r.domain.String()))
		r.children = newVec[target.Target](nil)
		return
	}

	sorted := srvRecord.Sorted()
	effectiveTransport := sorted.Transport()

	children := make([]Resolvable[target.Target], 0, len(sorted.Entries))
	for _, dp := range sorted.DomainsWithPorts() {
		children = append(children, newAddrRecordResolvable(r.client, dp.Domain, dp.Port, effectiveTransport, r.logger))
	}
	r.children = newVec(children)
}
