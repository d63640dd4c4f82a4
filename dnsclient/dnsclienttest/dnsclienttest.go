// Package dnsclienttest provides dnsclient.Client test doubles for property
// tests of the lazy resolution core, grounded on rsip-dns's
// tests/support/{mocked,panic}_dns_client.rs: a client that serves
// pre-canned answers keyed by query, and one that panics on any call so a
// test can assert a branch never reaches DNS at all.
package dnsclienttest

import (
	"context"
	"fmt"

	"project/sip-dns-resolver/records"
)

// MockClient answers NAPTR/SRV/A lookups from pre-seeded tables keyed by
// the domain (or SrvDomain's string form) queried. A query for a key not
// present in the corresponding table is treated as a miss (NAPTR/SRV) or a
// not-found error (IP).
type MockClient struct {
	Naptr map[string]records.NaptrRecord
	Srv   map[string]records.SrvRecord
	Addr  map[string]records.AddrRecord
}

// NewMockClient builds an empty MockClient ready for its maps to be
// populated by the caller.
func NewMockClient() *MockClient {
	return &MockClient{
		Naptr: map[string]records.NaptrRecord{},
		Srv:   map[string]records.SrvRecord{},
		Addr:  map[string]records.AddrRecord{},
	}
}

func (c *MockClient) NaptrLookup(_ context.Context, domain string) (records.NaptrRecord, bool) {
	rec, ok := c.Naptr[domain]
	return rec, ok
}

func (c *MockClient) SrvLookup(_ context.Context, domain records.SrvDomain) (records.SrvRecord, bool) {
	rec, ok := c.Srv[domain.String()]
	return rec, ok
}

func (c *MockClient) IPLookup(_ context.Context, domain string) (records.AddrRecord, error) {
	rec, ok := c.Addr[domain]
	if !ok {
		return records.AddrRecord{}, fmt.Errorf("dnsclienttest: no address record seeded for %q", domain)
	}
	return rec, nil
}

// PanicClient panics on every call. It is used to assert that a Lookup case
// which should resolve without touching DNS at all (the IpAddr case) never
// issues a query.
type PanicClient struct{}

func (PanicClient) NaptrLookup(context.Context, string) (records.NaptrRecord, bool) {
	panic("dnsclienttest: NaptrLookup should never have been called")
}

func (PanicClient) SrvLookup(context.Context, records.SrvDomain) (records.SrvRecord, bool) {
	panic("dnsclienttest: SrvLookup should never have been called")
}

func (PanicClient) IPLookup(context.Context, string) (records.AddrRecord, error) {
	panic("dnsclienttest: IPLookup should never have been called")
}
