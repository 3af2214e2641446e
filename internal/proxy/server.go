package proxy

import (
	"context"
	"errors"
	"log"
	"net"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/strandproxy/strand/internal/session"
)

// Server accepts client connections and runs one SOCKS5 session per
// connection. Live connections are tracked so a context cancellation can
// close them all.
type Server struct {
	ctx     context.Context
	cfg     Config
	verbose bool

	nextID atomic.Uint64
	conns  *xsync.MapOf[uint64, net.Conn]
}

// NewServer returns a server whose sessions live until ctx is canceled.
func NewServer(ctx context.Context, cfg Config, verbose bool) *Server {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Server{
		ctx:     ctx,
		cfg:     cfg,
		verbose: verbose,
		conns:   xsync.NewMapOf[uint64, net.Conn](),
	}
}

// Serve accepts connections on ln until ln closes or the server's context is
// canceled. A failed accept of a single connection is logged and does not
// stop the loop; session errors never reach the loop at all.
func (s *Server) Serve(ln net.Listener) error {
	stop := context.AfterFunc(s.ctx, func() {
		_ = ln.Close()
		s.conns.Range(func(_ uint64, c net.Conn) bool {
			_ = c.Close()
			return true
		})
	})
	defer stop()

	for {
		c, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				if s.ctx.Err() != nil {
					return nil
				}
				return err
			}
			log.Printf("socks5: accept: %v", err)
			continue
		}

		id := s.nextID.Add(1)
		s.conns.Store(id, c)

		go func() {
			defer s.conns.Delete(id)

			sess := session.New(c, s.cfg.Dialer, s.cfg.NegotiationTimeout)
			if err := sess.Run(s.ctx); err != nil && s.verbose {
				log.Printf("socks5: %s: %v", c.RemoteAddr(), err)
			}
		}()
	}
}

// ActiveSessions reports how many sessions are currently live.
func (s *Server) ActiveSessions() int {
	return s.conns.Size()
}
