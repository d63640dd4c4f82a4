// Package dnsclient defines the abstract DNS operations the lazy resolution
// core consumes. Concrete transports (a system stub resolver, an async DNS
// library, a cache) are external collaborators referenced only through this
// interface — see SPEC_FULL.md's DOMAIN STACK section for the reference
// implementation in dnsclient/miekgdns.
package dnsclient

import (
	"context"

	"project/sip-dns-resolver/records"
)

// Client is the DNS capability the resolution core needs. Every method
// takes the calling context so the leaf resolvable that triggers the query
// can be cancelled cooperatively by the caller between resolve steps.
//
// NaptrLookup and SrvLookup report a miss with ok == false: RFC 3263 is a
// cascade of fallbacks, so a miss at either step must not surface as an
// error. IPLookup reports a miss as an error, since it is always the last
// step of a branch and a caller inspecting the error may want to log it.
type Client interface {
	NaptrLookup(ctx context.Context, domain string) (rec records.NaptrRecord, ok bool)
	SrvLookup(ctx context.Context, domain records.SrvDomain) (rec records.SrvRecord, ok bool)
	IPLookup(ctx context.Context, domain string) (records.AddrRecord, error)
}
