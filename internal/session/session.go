package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/strandproxy/strand/internal/dialer"
	"github.com/strandproxy/strand/internal/wire"
)

// Session owns one client connection and, after a successful CONNECT, one
// upstream connection. It is used by exactly one goroutine and never shared.
type Session struct {
	conn               net.Conn
	dialer             dialer.Dialer
	negotiationTimeout time.Duration
}

// New returns a session for a single accepted client connection.
func New(conn net.Conn, d dialer.Dialer, negotiationTimeout time.Duration) *Session {
	return &Session{conn: conn, dialer: d, negotiationTimeout: negotiationTimeout}
}

// Run drives the connection through negotiation and, for a successful
// CONNECT, relays bytes until either side closes. Both connections are closed
// before Run returns. The returned error describes why the session ended and
// is only useful for logging; it never affects other sessions.
func (s *Session) Run(ctx context.Context) error {
	defer s.conn.Close()

	if s.negotiationTimeout > 0 {
		_ = s.conn.SetDeadline(time.Now().Add(s.negotiationTimeout))
	}

	if _, err := wire.ReadHandshake(s.conn); err != nil {
		// Nothing has been written yet and the stream may be garbage;
		// close without a reply.
		return fmt.Errorf("handshake: %w", err)
	}

	// No-auth is the only supported method, and like the reference server
	// this one never rejects a handshake: the offered method list is read
	// and ignored, and no-auth is selected unconditionally.
	if err := wire.WriteMethodReply(s.conn, wire.MethodNoAuth); err != nil {
		return fmt.Errorf("method reply: %w", err)
	}

	req, err := wire.ReadRequest(s.conn)
	if err != nil {
		// Typed decode errors leave the client stream aligned and
		// writable, so the failure is reported before closing. Raw I/O
		// errors mean the stream itself is gone; close silently.
		if wire.IsDecodeError(err) {
			_ = (&wire.Reply{Status: wire.StatusForError(err), Addr: wire.ZeroAddr}).Write(s.conn)
		}
		return fmt.Errorf("request: %w", err)
	}

	switch req.Cmd {
	case wire.CmdConnect:
	case wire.CmdBind, wire.CmdUDPAssociate:
		// Parsed but not implemented: the session ends after the request
		// step without another protocol byte, matching the reference
		// behavior.
		return fmt.Errorf("%v: not implemented", req.Cmd)
	}

	up, err := s.dialer.DialContext(ctx, "tcp", req.Addr.String())
	if err != nil {
		_ = (&wire.Reply{Status: statusForDialError(err), Addr: wire.ZeroAddr}).Write(s.conn)
		return fmt.Errorf("connect %s: %w", req.Addr, err)
	}
	defer up.Close()

	// The success reply echoes the address the client asked for, not the
	// locally bound address.
	if err := (&wire.Reply{Status: wire.StatusSuccess, Addr: req.Addr}).Write(s.conn); err != nil {
		return fmt.Errorf("reply: %w", err)
	}

	if s.negotiationTimeout > 0 {
		_ = s.conn.SetDeadline(time.Time{})
	}

	if err := Relay(ctx, s.conn, up); err != nil {
		return fmt.Errorf("relay %s: %w", req.Addr, err)
	}
	return nil
}

// statusForDialError picks the reply status for a failed upstream connect.
func statusForDialError(err error) wire.Status {
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr):
		return wire.StatusHostUnreachable
	case errors.Is(err, syscall.ECONNREFUSED):
		return wire.StatusConnectionRefused
	case errors.Is(err, syscall.ENETUNREACH):
		return wire.StatusNetworkUnreachable
	case errors.Is(err, syscall.EHOSTUNREACH):
		return wire.StatusHostUnreachable
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return wire.StatusTTLExpired
	}
	return wire.StatusServerFailure
}
