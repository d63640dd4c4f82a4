package resolve

import (
	"context"
	"net"

	"project/sip-dns-resolver/target"
	"project/sip-dns-resolver/transport"
)

// ipAddrResolvable yields exactly one Target built from an already-known IP
// address. It never queries DNS.
type ipAddrResolvable struct {
	seq *sequence[target.Target]
}

func newIPAddrResolvable(ip net.IP, port uint16, t transport.Transport) *ipAddrResolvable {
	return &ipAddrResolvable{seq: newSequence([]target.Target{target.New(ip, port, t)})}
}

func (r *ipAddrResolvable) State() State {
	return r.seq.State()
}

func (r *ipAddrResolvable) ResolveNext(ctx context.Context) (target.Target, bool) {
	return r.seq.ResolveNext(ctx)
}
