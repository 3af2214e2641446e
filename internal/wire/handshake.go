package wire

import (
	"errors"
	"io"
)

// Handshake is the client's method-selection message: the list of
// authentication methods it is willing to use, at most 255 of them.
type Handshake struct {
	Methods []byte
}

// ReadHandshake decodes VER, NMETHODS, and the method list.
func ReadHandshake(r io.Reader) (*Handshake, error) {
	var head [2]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	if head[0] != Version {
		return nil, VersionError(head[0])
	}

	methods := make([]byte, int(head[1]))
	if _, err := io.ReadFull(r, methods); err != nil {
		return nil, err
	}
	return &Handshake{Methods: methods}, nil
}

// Write encodes the handshake in one write.
func (h *Handshake) Write(w io.Writer) error {
	if len(h.Methods) > 255 {
		return errors.New("socks5: too many methods")
	}
	buf := make([]byte, 0, 2+len(h.Methods))
	buf = append(buf, Version, byte(len(h.Methods)))
	buf = append(buf, h.Methods...)
	_, err := w.Write(buf)
	return err
}

// WriteMethodReply writes the server's two-byte method selection.
func WriteMethodReply(w io.Writer, method byte) error {
	_, err := w.Write([]byte{Version, method})
	return err
}

// ReadMethodReply decodes the server's method selection.
func ReadMethodReply(r io.Reader) (byte, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	if b[0] != Version {
		return 0, VersionError(b[0])
	}
	return b[1], nil
}
