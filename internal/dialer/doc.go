// Package dialer provides the outbound connect capability used by strand's
// SOCKS5 sessions.
//
// Dialers implement a small interface (DialContext) so the session state
// machine can be tested against fakes. The production dialer connects
// directly, optionally resolving domain names through a configured upstream
// DNS server instead of the system resolver.
package dialer
