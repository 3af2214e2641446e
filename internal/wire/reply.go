package wire

import "io"

// Reply is the server's response to a request: a status plus the bound
// address the server relays through. On failure the address is conventionally
// ZeroAddr; a nil Addr encodes as ZeroAddr.
type Reply struct {
	Status Status
	Addr   *Address
}

// ReadReply decodes VER, REP, RSV, and the bound address. Unknown status
// bytes are preserved rather than rejected so replies can be relayed
// transparently.
func ReadReply(r io.Reader) (*Reply, error) {
	var head [3]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	if head[0] != Version {
		return nil, VersionError(head[0])
	}

	addr, err := ReadAddress(r)
	if err != nil {
		return nil, err
	}
	return &Reply{Status: Status(head[1]), Addr: addr}, nil
}

// Write encodes the reply header and bound address.
func (p *Reply) Write(w io.Writer) error {
	addr := p.Addr
	if addr == nil {
		addr = ZeroAddr
	}
	if _, err := w.Write([]byte{Version, byte(p.Status), rsv}); err != nil {
		return err
	}
	return addr.Write(w)
}
