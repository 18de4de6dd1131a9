package nets

import (
	"context"
	"net"

	"golang.org/x/net/proxy"
)

type Dialer = proxy.ContextDialer

// routeDialer connects to loopback and private addresses directly, and to everything else through the proxy.
type routeDialer struct {
	direct  *net.Dialer
	proxyOf func() (proxy.Dialer, error)
}

var _ Dialer = routeDialer{}

func (r routeDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	if isLocalAddr(ctx, addr) {
		return r.direct.DialContext(ctx, network, addr)
	}
	via, err := r.proxyOf()
	if err != nil {
		return nil, err
	}
	if via == nil {
		return r.direct.DialContext(ctx, network, addr)
	}
	if d, ok := via.(proxy.ContextDialer); ok {
		return d.DialContext(ctx, network, addr)
	}
	return via.Dial(network, addr)
}

func (Module) Dialer(
	proxyURL ProxyURL,
) Dialer {
	direct := new(net.Dialer)
	return routeDialer{
		direct: direct,
		proxyOf: func() (proxy.Dialer, error) {
			u, err := proxyURL()
			if err != nil || u == nil {
				return nil, err
			}
			return proxy.FromURL(u, direct)
		},
	}
}

func isLocalAddr(ctx context.Context, addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		// no port
		host = addr
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback() || ip.IsPrivate()
	}
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		// unresolvable hosts go through the proxy
		return false
	}
	for _, ip := range ips {
		if ip.IP.IsLoopback() || ip.IP.IsPrivate() {
			return true
		}
	}
	return false
}
