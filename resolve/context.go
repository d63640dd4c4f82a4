package resolve

import (
	"fmt"
	"log/slog"
	"net"

	"project/sip-dns-resolver/dnsclient"
	"project/sip-dns-resolver/transport"
)

// Host is a resolved URI host: either an IP literal or a domain name.
// Exactly one of IsIPAddr()'s two shapes is meaningful at a time.
type Host struct {
	ip     net.IP
	domain string
}

// HostFromIP builds a Host wrapping an IP literal.
func HostFromIP(ip net.IP) Host {
	return Host{ip: ip}
}

// HostFromDomain builds a Host wrapping a domain name.
func HostFromDomain(domain string) Host {
	return Host{domain: domain}
}

// IsIPAddr reports whether this Host is an IP literal.
func (h Host) IsIPAddr() bool {
	return h.ip != nil
}

// IPAddr returns the wrapped IP literal; only meaningful when IsIPAddr().
func (h Host) IPAddr() net.IP {
	return h.ip
}

// Domain returns the wrapped domain name; only meaningful when !IsIPAddr().
func (h Host) Domain() string {
	return h.domain
}

// SupportedTransports is the ordered set of transports a caller is willing
// to use. Ordering matters: Context.AvailableTransports preserves it, and
// the JustDomain lookup case walks per-transport SRV fallbacks in that
// order (spec §4.7).
type SupportedTransports struct {
	transports []transport.Transport
}

// AnyTransport accepts every transport this library knows about.
func AnyTransport() SupportedTransports {
	return SupportedTransports{transports: transport.All()}
}

// OnlyTransports accepts exactly the given transports, in the given order.
func OnlyTransports(transports ...transport.Transport) SupportedTransports {
	return SupportedTransports{transports: transports}
}

// All returns the configured transport list.
func (s SupportedTransports) All() []transport.Transport {
	return s.transports
}

// Context is the immutable configuration a Lookup is built from: the
// scheme-derived secure flag, the URI's host/port/transport, the DNS
// client, and the transports the caller supports.
type Context struct {
	Secure              bool
	Host                Host
	Port                uint16
	HasPort             bool
	Transport           transport.Transport
	HasTransport        bool
	DNSClient           dnsclient.Client
	SupportedTransports SupportedTransports
	Logger              *slog.Logger
}

// NewContext builds a Context from a URI, rejecting at construction time
// (rather than on first resolve) any URI whose scheme isn't sip/sips, or
// whose declared transport can't satisfy a sips: scheme (spec §4.6, §7,
// §9). logger may be nil.
func NewContext(uri URI, client dnsclient.Client, supported SupportedTransports, logger *slog.Logger) (*Context, error) {
	secure, err := secureFromScheme(uri.Scheme())
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Secure:              secure,
		DNSClient:           client,
		SupportedTransports: supported,
		Logger:              logger,
	}

	if ip, domain, isIP := uri.Host(); isIP {
		ctx.Host = HostFromIP(ip)
	} else {
		ctx.Host = HostFromDomain(domain)
	}

	if port, ok := uri.Port(); ok {
		ctx.Port, ctx.HasPort = port, true
	}

	if t, ok := uri.Transport(); ok {
		if secure && !t.Secure() {
			return nil, fmt.Errorf("%w: got %s", ErrSecureTransportMismatch, t)
		}
		ctx.Transport, ctx.HasTransport = t, true
	}

	return ctx, nil
}

func secureFromScheme(scheme string) (bool, error) {
	switch scheme {
	case "sip":
		return false, nil
	case "sips":
		return true, nil
	default:
		return false, fmt.Errorf("%w: got %q", ErrUnsupportedScheme, scheme)
	}
}

// DefaultTransport returns the URI's declared transport, or else TLS when
// the context is secure and UDP otherwise (spec §4.6, testable property 10).
func (c *Context) DefaultTransport() transport.Transport {
	if c.HasTransport {
		return c.Transport
	}
	if c.Secure {
		return transport.TLS
	}
	return transport.UDP
}

// AvailableTransports filters SupportedTransports down to the secure set
// when the context is secure, preserving order.
func (c *Context) AvailableTransports() []transport.Transport {
	if !c.Secure {
		return c.SupportedTransports.All()
	}

	secure := transport.SecureTransports()
	out := make([]transport.Transport, 0, len(c.SupportedTransports.All()))
	for _, t := range c.SupportedTransports.All() {
		if containsTransport(secure, t) {
			out = append(out, t)
		}
	}
	return out
}

func containsTransport(set []transport.Transport, t transport.Transport) bool {
	for _, candidate := range set {
		if candidate == t {
			return true
		}
	}
	return false
}
