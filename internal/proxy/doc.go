// Package proxy implements strand's listener-side plumbing: the TCP accept
// loop that hands each connection to a SOCKS5 session, keepalive-applying
// listeners, and the server configuration.
package proxy
