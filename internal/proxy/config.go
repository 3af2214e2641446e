package proxy

import (
	"net"
	"time"

	"github.com/strandproxy/strand/internal/dialer"
)

type Config struct {
	// NegotiationTimeout bounds the handshake-through-reply phase of each
	// session. Zero disables the deadline.
	NegotiationTimeout time.Duration

	KeepAlive net.KeepAliveConfig

	Dialer dialer.Dialer

	// Password and Encrypt are accepted for forward compatibility with
	// authenticated deployments. Sessions do not consult them yet; the
	// server negotiates no-auth regardless.
	Password string
	Encrypt  string
}
