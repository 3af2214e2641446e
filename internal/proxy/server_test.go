package proxy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/txthinking/socks5"
	"golang.org/x/sync/errgroup"

	"github.com/strandproxy/strand/internal/dialer"
	"github.com/strandproxy/strand/internal/testutil"
)

func startTestServer(t *testing.T, ctx context.Context) (net.Listener, <-chan error) {
	t.Helper()

	cfg := Config{
		Dialer: dialer.New(dialer.Config{DialTimeout: 2 * time.Second}),
	}

	ln, err := ListenTCP("tcp", "127.0.0.1:0", net.KeepAliveConfig{Enable: false})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	srv := NewServer(ctx, cfg, false)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	return ln, served
}

func TestSOCKS5ConnectDirect(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	echoLn := testutil.StartEchoTCPServer(t, ctx)
	ln, _ := startTestServer(t, ctx)

	client, err := socks5.NewClient(ln.Addr().String(), "", "", 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	c, err := client.Dial("tcp", echoLn.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	testutil.AssertEcho(t, c, c, []byte("hello"))
}

func TestSOCKS5ConnectRefused(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// A loopback port with nothing listening.
	dead, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	deadAddr := dead.Addr().String()
	_ = dead.Close()

	ln, _ := startTestServer(t, ctx)

	client, err := socks5.NewClient(ln.Addr().String(), "", "", 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.Dial("tcp", deadAddr); err == nil {
		t.Fatal("expected dial through proxy to fail")
	}
}

func TestConcurrentSessionsNoCrossTalk(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	echo1 := testutil.StartEchoTCPServer(t, ctx)
	echo2 := testutil.StartEchoTCPServer(t, ctx)
	ln, _ := startTestServer(t, ctx)

	relay := func(target string, tag byte) error {
		client, err := socks5.NewClient(ln.Addr().String(), "", "", 5, 0)
		if err != nil {
			return err
		}
		c, err := client.Dial("tcp", target)
		if err != nil {
			return err
		}
		defer c.Close()

		msg := bytes.Repeat([]byte{tag}, 512)
		for range 20 {
			if _, err := c.Write(msg); err != nil {
				return err
			}
			buf := make([]byte, len(msg))
			if _, err := io.ReadFull(c, buf); err != nil {
				return err
			}
			if !bytes.Equal(buf, msg) {
				return fmt.Errorf("tag 0x%02x: got foreign bytes % x", tag, buf[:8])
			}
		}
		return nil
	}

	g := errgroup.Group{}
	g.Go(func() error { return relay(echo1.Addr().String(), 0xaa) })
	g.Go(func() error { return relay(echo2.Addr().String(), 0xbb) })
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestShutdownClosesLiveSessions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	echoLn := testutil.StartEchoTCPServer(t, context.Background())
	ln, served := startTestServer(t, ctx)

	client, err := socks5.NewClient(ln.Addr().String(), "", "", 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	c, err := client.Dial("tcp", echoLn.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	testutil.AssertEcho(t, c, c, []byte("before shutdown"))

	cancel()

	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}

	// The relayed connection is torn down too.
	_ = c.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, err := c.Read(make([]byte, 1)); err == nil {
		t.Fatal("expected relayed connection to be closed")
	}
}
