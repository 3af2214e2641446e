package wire

import "fmt"

// Version is the protocol version byte every SOCKS5 message starts with.
const Version = 0x05

// MethodNoAuth is the "no authentication required" method identifier, the
// only method this server selects.
const MethodNoAuth = 0x00

const rsv = 0x00

// Command identifies what the client is asking the server to do.
type Command byte

const (
	CmdConnect      Command = 0x01
	CmdBind         Command = 0x02
	CmdUDPAssociate Command = 0x03
)

func (c Command) String() string {
	switch c {
	case CmdConnect:
		return "CONNECT"
	case CmdBind:
		return "BIND"
	case CmdUDPAssociate:
		return "UDP-ASSOCIATE"
	default:
		return fmt.Sprintf("command 0x%02x", byte(c))
	}
}

const (
	atypIPv4   = 0x01
	atypDomain = 0x03
	atypIPv6   = 0x04
)

// Status is a reply status code. Decoding keeps unknown bytes as-is so
// nonstandard replies can be relayed without loss.
type Status byte

const (
	StatusSuccess              Status = 0x00
	StatusServerFailure        Status = 0x01
	StatusNotAllowed           Status = 0x02
	StatusNetworkUnreachable   Status = 0x03
	StatusHostUnreachable      Status = 0x04
	StatusConnectionRefused    Status = 0x05
	StatusTTLExpired           Status = 0x06
	StatusCommandNotSupported  Status = 0x07
	StatusAddrTypeNotSupported Status = 0x08
	StatusNoAcceptable         Status = 0x09
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "succeeded"
	case StatusServerFailure:
		return "general server failure"
	case StatusNotAllowed:
		return "connection not allowed by ruleset"
	case StatusNetworkUnreachable:
		return "network unreachable"
	case StatusHostUnreachable:
		return "host unreachable"
	case StatusConnectionRefused:
		return "connection refused"
	case StatusTTLExpired:
		return "TTL expired"
	case StatusCommandNotSupported:
		return "command not supported"
	case StatusAddrTypeNotSupported:
		return "address type not supported"
	case StatusNoAcceptable:
		return "no acceptable reply"
	default:
		return fmt.Sprintf("status 0x%02x", byte(s))
	}
}
