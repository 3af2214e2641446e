package wire

import "io"

// Request pairs a command with its destination. Built once per session from
// decoded bytes and not mutated afterward.
type Request struct {
	Cmd  Command
	Addr *Address
}

// ReadRequest decodes VER, CMD, RSV, and the destination address.
func ReadRequest(r io.Reader) (*Request, error) {
	var head [3]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	if head[0] != Version {
		return nil, VersionError(head[0])
	}

	cmd := Command(head[1])
	switch cmd {
	case CmdConnect, CmdBind, CmdUDPAssociate:
	default:
		return nil, CommandError(head[1])
	}

	addr, err := ReadAddress(r)
	if err != nil {
		return nil, err
	}
	return &Request{Cmd: cmd, Addr: addr}, nil
}

// Write encodes the request header and destination address.
func (q *Request) Write(w io.Writer) error {
	if _, err := w.Write([]byte{Version, byte(q.Cmd), rsv}); err != nil {
		return err
	}
	return q.Addr.Write(w)
}
