package wire

import (
	"errors"
	"fmt"
)

// VersionError reports a version byte other than 0x05.
type VersionError byte

func (e VersionError) Error() string {
	return fmt.Sprintf("socks5: unsupported version 0x%02x", byte(e))
}

// CommandError reports an unrecognized command byte. Unlike reply statuses,
// unknown commands are fatal: the server cannot know what the client wants.
type CommandError byte

func (e CommandError) Error() string {
	return fmt.Sprintf("socks5: unknown command 0x%02x", byte(e))
}

// AddrTypeError reports an unrecognized ATYP byte.
type AddrTypeError byte

func (e AddrTypeError) Error() string {
	return fmt.Sprintf("socks5: unknown address type 0x%02x", byte(e))
}

// ErrBadDomain reports a domain name that is not valid UTF-8 or does not fit
// the one-byte length prefix.
var ErrBadDomain = errors.New("socks5: invalid domain name")

// IsDecodeError reports whether err is a codec-level decode failure, as
// opposed to an underlying stream failure. After a decode error the client
// stream is still aligned and writable, so a reply can be attempted.
func IsDecodeError(err error) bool {
	var (
		vErr VersionError
		cErr CommandError
		aErr AddrTypeError
	)
	return errors.As(err, &vErr) || errors.As(err, &cErr) ||
		errors.As(err, &aErr) || errors.Is(err, ErrBadDomain)
}

// StatusForError maps a decode or I/O error to the reply status reported to
// the client. Anything unrecognized, including stream failures, maps to
// general server failure.
func StatusForError(err error) Status {
	var (
		vErr VersionError
		cErr CommandError
		aErr AddrTypeError
	)
	switch {
	case errors.As(err, &aErr):
		return StatusAddrTypeNotSupported
	case errors.Is(err, ErrBadDomain):
		return StatusHostUnreachable
	case errors.As(err, &vErr):
		return StatusNoAcceptable
	case errors.As(err, &cErr):
		return StatusCommandNotSupported
	default:
		return StatusServerFailure
	}
}
