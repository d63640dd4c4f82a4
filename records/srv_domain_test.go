package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/sip-dns-resolver/records"
	"project/sip-dns-resolver/transport"
)

func TestSrvDomainString(t *testing.T) {
	cases := []struct {
		domain records.SrvDomain
		want   string
	}{
		{records.SrvDomain{Domain: "example.com", Protocol: transport.TCP, Secure: false}, "_sip._tcp.example.com"},
		{records.SrvDomain{Domain: "example.com", Protocol: transport.TCP, Secure: true}, "_sips._tcp.example.com"},
		{records.SrvDomain{Domain: "example.com", Protocol: transport.UDP, Secure: false}, "_sip._udp.example.com"},
		{records.SrvDomain{Domain: "example.com", Protocol: transport.WS, Secure: true}, "_sips._ws.example.com"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.domain.String())
	}
}

func TestParseSrvDomain(t *testing.T) {
	got, err := records.ParseSrvDomain("_sips._tcp.example.com")
	require.NoError(t, err)
	assert.Equal(t, records.SrvDomain{Domain: "example.com", Protocol: transport.TCP, Secure: true}, got)
}

func TestParseSrvDomainRejectsMalformed(t *testing.T) {
	cases := []string{
		"example.com",
		"_sip.example.com",
		"_sip._quic.example.com",
		"_sips._tcp",
	}
	for _, s := range cases {
		_, err := records.ParseSrvDomain(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestSrvDomainTransport(t *testing.T) {
	cases := []struct {
		domain records.SrvDomain
		want   transport.Transport
	}{
		{records.SrvDomain{Protocol: transport.TCP, Secure: false}, transport.TCP},
		{records.SrvDomain{Protocol: transport.TCP, Secure: true}, transport.TLS},
		{records.SrvDomain{Protocol: transport.SCTP, Secure: true}, transport.TLSSCTP},
		{records.SrvDomain{Protocol: transport.WS, Secure: true}, transport.WSS},
		{records.SrvDomain{Protocol: transport.UDP, Secure: false}, transport.UDP},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.domain.Transport())
	}
}

func TestCandidatesFor(t *testing.T) {
	got := records.CandidatesFor("example.com", true, []transport.Transport{transport.TLS, transport.WSS})
	require.Len(t, got, 2)
	assert.Equal(t, records.SrvDomain{Domain: "example.com", Protocol: transport.TCP, Secure: true}, got[0])
	assert.Equal(t, records.SrvDomain{Domain: "example.com", Protocol: transport.WS, Secure: true}, got[1])
}
