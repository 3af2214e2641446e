package wire

import (
	"encoding/binary"
	"io"
	"net"
	"strconv"
	"unicode/utf8"
)

// Address is a destination: either a literal IPv4/IPv6 address or a domain
// name, plus a port. A nil IP selects the domain variant; RFC 1928 allows a
// zero-length name, so Domain may be empty. Addresses are not mutated after
// decoding.
type Address struct {
	IP     net.IP
	Domain string
	Port   uint16
}

// ZeroAddr is the conventional bound address echoed in failure replies.
var ZeroAddr = &Address{IP: net.IPv4zero}

// ReadAddress decodes an ATYP byte followed by the matching address encoding
// and a two-byte port. An unknown ATYP consumes nothing beyond the ATYP byte
// itself. For domain names, the name and port are consumed in a single exact
// read so the stream stays aligned even when the name is rejected.
func ReadAddress(r io.Reader) (*Address, error) {
	var atyp [1]byte
	if _, err := io.ReadFull(r, atyp[:]); err != nil {
		return nil, err
	}

	switch atyp[0] {
	case atypIPv4:
		var b [4 + 2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		return &Address{
			IP:   net.IPv4(b[0], b[1], b[2], b[3]),
			Port: binary.BigEndian.Uint16(b[4:]),
		}, nil
	case atypIPv6:
		var b [16 + 2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}
		ip := make(net.IP, 16)
		copy(ip, b[:16])
		return &Address{
			IP:   ip,
			Port: binary.BigEndian.Uint16(b[16:]),
		}, nil
	case atypDomain:
		var n [1]byte
		if _, err := io.ReadFull(r, n[:]); err != nil {
			return nil, err
		}
		b := make([]byte, int(n[0])+2)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, err
		}
		name := b[:len(b)-2]
		if !utf8.Valid(name) {
			return nil, ErrBadDomain
		}
		return &Address{
			Domain: string(name),
			Port:   binary.BigEndian.Uint16(b[len(b)-2:]),
		}, nil
	default:
		return nil, AddrTypeError(atyp[0])
	}
}

// Write encodes the address as ATYP, address bytes, and port, in one write.
func (a *Address) Write(w io.Writer) error {
	var buf []byte

	switch {
	case a.IP == nil:
		if len(a.Domain) > 255 {
			return ErrBadDomain
		}
		buf = make([]byte, 0, 2+len(a.Domain)+2)
		buf = append(buf, atypDomain, byte(len(a.Domain)))
		buf = append(buf, a.Domain...)
	default:
		if ip4 := a.IP.To4(); ip4 != nil {
			buf = make([]byte, 0, 1+4+2)
			buf = append(buf, atypIPv4)
			buf = append(buf, ip4...)
			break
		}
		ip := a.IP.To16()
		if ip == nil {
			ip = net.IPv6zero
		}
		buf = make([]byte, 0, 1+16+2)
		buf = append(buf, atypIPv6)
		buf = append(buf, ip...)
	}

	buf = binary.BigEndian.AppendUint16(buf, a.Port)
	_, err := w.Write(buf)
	return err
}

// String returns the host:port form used for dialing.
func (a *Address) String() string {
	host := a.Domain
	if a.IP != nil {
		host = a.IP.String()
	}
	return net.JoinHostPort(host, strconv.Itoa(int(a.Port)))
}
