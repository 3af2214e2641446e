package dialer

import (
	"context"
	"net"
)

// Dialer mirrors the net.Dialer interface.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// New constructs the outbound dialer for cfg.
func New(cfg Config) Dialer {
	return &directDialer{cfg: cfg}
}
