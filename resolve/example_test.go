package resolve_test

import (
	"context"
	"fmt"
	"net"

	"project/sip-dns-resolver/dnsclient/dnsclienttest"
	"project/sip-dns-resolver/records"
	"project/sip-dns-resolver/resolve"
)

// This example resolves a SIP URI with an explicit port against a stub DNS
// client, draining the Lookup until it reports exhaustion — the pattern a
// SIP stack's transaction layer follows when trying targets in order.
func Example() {
	client := dnsclienttest.NewMockClient()
	client.Addr["sip.example.com"] = records.AddrRecord{
		IPAddrs: []net.IP{net.ParseIP("203.0.113.1"), net.ParseIP("203.0.113.2")},
	}

	uri := fakeURI{scheme: "sip", domain: "sip.example.com", port: 5060, hasPort: true}

	ctx, err := resolve.NewContext(uri, client, resolve.AnyTransport(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	lookup := resolve.NewLookup(ctx)
	for {
		tgt, ok := lookup.Next(context.Background())
		if !ok {
			break
		}
		fmt.Printf("%s %d %s\n", tgt.IPAddr, tgt.Port, tgt.Transport)
	}

	// Output:
	// 203.0.113.1 5060 UDP
	// 203.0.113.2 5060 UDP
}
