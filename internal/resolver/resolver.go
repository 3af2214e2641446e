// Package resolver resolves domain names against a configured upstream DNS
// server, for deployments that must not (or cannot) use the system resolver.
package resolver

import (
	"context"
	"net"

	"github.com/miekg/dns"
)

// Resolver queries a single upstream DNS server over UDP.
type Resolver struct {
	server string
	client *dns.Client
}

// New returns a resolver that queries server (host:port).
func New(server string) *Resolver {
	return &Resolver{server: server, client: &dns.Client{}}
}

// LookupIP resolves host to one IP address, preferring IPv4. Failures are
// returned as *net.DNSError so callers can classify them the same way they
// classify system-resolver failures.
func (r *Resolver) LookupIP(ctx context.Context, host string) (net.IP, error) {
	ip, err := r.lookup(ctx, host, dns.TypeA)
	if err == nil {
		return ip, nil
	}

	ip, err6 := r.lookup(ctx, host, dns.TypeAAAA)
	if err6 == nil {
		return ip, nil
	}
	return nil, err
}

func (r *Resolver) lookup(ctx context.Context, host string, qtype uint16) (net.IP, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), qtype)
	m.RecursionDesired = true

	in, _, err := r.client.ExchangeContext(ctx, m, r.server)
	if err != nil {
		return nil, &net.DNSError{Err: err.Error(), Name: host, Server: r.server}
	}
	if in.Rcode != dns.RcodeSuccess {
		return nil, &net.DNSError{
			Err:        dns.RcodeToString[in.Rcode],
			Name:       host,
			Server:     r.server,
			IsNotFound: in.Rcode == dns.RcodeNameError,
		}
	}

	for _, ans := range in.Answer {
		switch rr := ans.(type) {
		case *dns.A:
			return rr.A, nil
		case *dns.AAAA:
			return rr.AAAA, nil
		}
	}
	return nil, &net.DNSError{Err: "no address records", Name: host, Server: r.server, IsNotFound: true}
}
