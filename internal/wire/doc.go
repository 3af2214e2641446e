// Package wire implements the SOCKS5 (RFC 1928) message codec used by strand.
//
// It covers the five wire shapes the protocol defines: the client's
// method-selection handshake, the server's one-byte method reply, the command
// request, the three address encodings, and the reply. All reads are exact
// (io.ReadFull) and all multi-byte integers are big-endian, so a short read
// at end-of-stream always surfaces as an I/O error rather than a partial
// message.
//
// The codec is symmetric: replies can be decoded as well as encoded, with
// unknown status bytes preserved, so the same types work for a client that
// relays replies transparently.
package wire
