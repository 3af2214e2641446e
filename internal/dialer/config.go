package dialer

import (
	"net"
	"time"

	"github.com/strandproxy/strand/internal/resolver"
)

type Config struct {
	DialTimeout time.Duration

	KeepAlive net.KeepAliveConfig

	// Resolver, if non-nil, resolves domain-name targets before dialing.
	// When nil the system resolver inside net.Dialer is used.
	Resolver *resolver.Resolver
}
