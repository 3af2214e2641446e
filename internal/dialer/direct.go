package dialer

import (
	"context"
	"fmt"
	"net"
)

type directDialer struct {
	cfg Config
}

// DialContext opens a TCP connection to address, resolving a domain-name
// host through the configured resolver when one is set.
func (d *directDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if d.cfg.Resolver != nil {
		resolved, err := d.resolve(ctx, address)
		if err != nil {
			return nil, err
		}
		address = resolved
	}

	dd := net.Dialer{Timeout: d.cfg.DialTimeout}

	conn, err := dd.DialContext(ctx, network, address)
	if err != nil {
		return nil, fmt.Errorf("dial %s %s: %w", network, address, err)
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetKeepAliveConfig(d.cfg.KeepAlive)
	}

	return conn, nil
}

// resolve replaces a domain-name host with an IP literal. IP-literal hosts
// pass through untouched.
func (d *directDialer) resolve(ctx context.Context, address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", address, err)
	}
	if net.ParseIP(host) != nil {
		return address, nil
	}

	ip, err := d.cfg.Resolver.LookupIP(ctx, host)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", host, err)
	}
	return net.JoinHostPort(ip.String(), port), nil
}
