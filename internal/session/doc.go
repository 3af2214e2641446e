// Package session drives one accepted client connection through the SOCKS5
// negotiation and relay.
//
// A session moves through a fixed sequence: read the method-selection
// handshake, answer it, read the request, connect to the target for CONNECT,
// reply, then relay bytes bidirectionally until either side closes. Each step
// is a single exact read or write against the client stream; steps never run
// concurrently within one session, and a failed step ends the session. The
// only concurrency inside a session is the two relay directions.
package session
