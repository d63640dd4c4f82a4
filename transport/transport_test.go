package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/sip-dns-resolver/transport"
)

func TestSecure(t *testing.T) {
	cases := map[transport.Transport]bool{
		transport.UDP:     false,
		transport.TCP:     false,
		transport.SCTP:    false,
		transport.WS:      false,
		transport.TLS:     true,
		transport.TLSSCTP: true,
		transport.WSS:     true,
	}
	for tr, want := range cases {
		assert.Equal(t, want, tr.Secure(), "%s.Secure()", tr)
	}
}

func TestProtocol(t *testing.T) {
	cases := map[transport.Transport]transport.Transport{
		transport.UDP:     transport.UDP,
		transport.TCP:     transport.TCP,
		transport.TLS:     transport.TCP,
		transport.SCTP:    transport.SCTP,
		transport.TLSSCTP: transport.SCTP,
		transport.WS:      transport.WS,
		transport.WSS:     transport.WS,
	}
	for tr, want := range cases {
		assert.Equal(t, want, tr.Protocol(), "%s.Protocol()", tr)
	}
}

func TestDefaultPort(t *testing.T) {
	cases := map[transport.Transport]uint16{
		transport.UDP:     5060,
		transport.TCP:     5060,
		transport.TLS:     5061,
		transport.SCTP:    5060,
		transport.TLSSCTP: 5061,
		transport.WS:      80,
		transport.WSS:     443,
	}
	for tr, want := range cases {
		assert.Equal(t, want, tr.DefaultPort(), "%s.DefaultPort()", tr)
	}
}

func TestFromProtocolLabel(t *testing.T) {
	got, err := transport.FromProtocolLabel("tcp")
	require.NoError(t, err)
	assert.Equal(t, transport.TCP, got)

	_, err = transport.FromProtocolLabel("quic")
	assert.Error(t, err)
}

func TestProtocolLabelRoundTrip(t *testing.T) {
	for _, tr := range transport.All() {
		label := tr.ProtocolLabel()
		parsed, err := transport.FromProtocolLabel(label)
		require.NoError(t, err)
		assert.Equal(t, tr.Protocol(), parsed)
	}
}

func TestSecureTransportsSubsetOfAll(t *testing.T) {
	all := transport.All()
	for _, secure := range transport.SecureTransports() {
		assert.Contains(t, all, secure)
		assert.True(t, secure.Secure())
	}
}
