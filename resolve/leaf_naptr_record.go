package resolve

import (
	"context"
	"log/slog"

	"project/sip-dns-resolver/dnsclient"
	"project/sip-dns-resolver/records"
	"project/sip-dns-resolver/target"
	"project/sip-dns-resolver/transport"
)

// naptrRecordResolvable resolves a domain's NAPTR records into one
// srvRecordResolvable child per surviving entry. An entry survives when its
// service maps to a transport present in availableTransports and its flags
// are exactly "S" (spec §4.5); surviving entries are ordered by
// records.NaptrRecord.Sorted before being converted to SrvDomain via direct
// parse of the Replacement field (see SPEC_FULL.md's Open Question
// decisions — a replacement that fails to parse is dropped silently, a
// protocol-parsing error per spec §7).
type naptrRecordResolvable struct {
	client              dnsclient.Client
	domain              string
	availableTransports []transport.Transport
	logger              *slog.Logger

	children *vec[target.Target]
}

func newNaptrRecordResolvable(client dnsclient.Client, domain string, availableTransports []transport.Transport, logger *slog.Logger) *naptrRecordResolvable {
	return &naptrRecordResolvable{
		client:              client,
		domain:              domain,
		availableTransports: availableTransports,
		logger:              logger,
		children:            unsetVec[target.Target](),
	}
}

func (r *naptrRecordResolvable) State() State {
	return r.children.State()
}

func (r *naptrRecordResolvable) ResolveNext(ctx context.Context) (target.Target, bool) {
	if r.children.State() == Unset {
		r.resolveDomain(ctx)
	}
	return r.children.ResolveNext(ctx)
}

func (r *naptrRecordResolvable) resolveDomain(ctx context.Context) {
	naptrRecord, ok := r.client.NaptrLookup(ctx, r.domain)
	if !ok {
		debug(ctx, r.logger, "sipdns: NAPTR lookup missed, collapsing branch to empty", slog.String("domain", r.domain))
		r.children = newVec[target.Target](nil)
		return
	}

	sorted := naptrRecord.Sorted()

	children := make([]Resolvable[target.Target], 0, len(sorted.Entries))
	for _, entry := range sorted.Entries {
		srvDomain, ok := r.toSrvDomain(ctx, entry)
		if !ok {
			continue
		}
		debug(ctx, r.logger, "sipdns: NAPTR entry survived filtering",
			slog.String("replacement", entry.Replacement), slog.String("srv_domain", srvDomain.String()))
		children = append(children, newSrvRecordResolvable(r.client, srvDomain, r.logger))
	}
	r.children = newVec(children)
}

func (r *naptrRecordResolvable) toSrvDomain(ctx context.Context, entry records.NaptrEntry) (records.SrvDomain, bool) {
	if !entry.Flags.IsS() {
		return records.SrvDomain{}, false
	}
	if !r.transportAvailable(entry.Services) {
		return records.SrvDomain{}, false
	}

	srvDomain, err := records.ParseSrvDomain(entry.Replacement)
	if err != nil {
		debug(ctx, r.logger, "sipdns: skipping NAPTR entry with unparsable replacement",
			slog.String("replacement", entry.Replacement), slog.Any("error", err))
		return records.SrvDomain{}, false
	}
	return srvDomain, true
}

func (r *naptrRecordResolvable) transportAvailable(services records.NaptrServices) bool {
	t, ok := services.Transport()
	if !ok {
		return false
	}
	for _, available := range r.availableTransports {
		if available == t {
			return true
		}
	}
	return false
}
