//go:build !unix

package proxy

import "syscall"

func reuseAddrControl(_, _ string, _ syscall.RawConn) error {
	return nil
}
