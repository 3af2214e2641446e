package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // Intentionally exposed on debug port.
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/strandproxy/strand/internal/dialer"
	"github.com/strandproxy/strand/internal/proxy"
	"github.com/strandproxy/strand/internal/resolver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		listen = pflag.String("listen", "127.0.0.1:1080", "SOCKS5 proxy listen address")

		dnsServer = pflag.String("dns", "", "Upstream DNS server (host[:port]) for resolving CONNECT targets. Empty uses the system resolver.")

		debugListen        = pflag.String("debug-listen", "", "Debug HTTP listen address exposing /debug/pprof (e.g. 127.0.0.1:6060). Empty disables.")
		dialTimeout        = pflag.Duration("dial-timeout", 10*time.Second, "Timeout for outbound DNS lookup and TCP connect")
		negotiationTimeout = pflag.Duration("negotiation-timeout", 10*time.Second, "Timeout for SOCKS5 negotiation to set up a connection")
		tcpKeepAlive       = pflag.String("tcp-keepalive", "45:45:3", "TCP keepalive: on|off|keepidle:keepintvl:keepcnt")
		password           = pflag.String("password", "", "Reserved for future authentication support; accepted but not enforced")
		encrypt            = pflag.String("encrypt", "", "Reserved for future encryption support; accepted but not enforced")
		verbose            = pflag.Bool("verbose", false, "Enable per-connection error logging")
	)

	pflag.CommandLine.SortFlags = false
	pflag.Parse()

	ka, err := parseTCPKeepAlive(*tcpKeepAlive)
	if err != nil {
		return fmt.Errorf("invalid --tcp-keepalive: %w", err)
	}

	cfg := proxy.Config{
		NegotiationTimeout: *negotiationTimeout,
		KeepAlive:          ka,
		Password:           *password,
		Encrypt:            *encrypt,
	}

	dialCfg := dialer.Config{
		DialTimeout: *dialTimeout,
		KeepAlive:   ka,
	}
	if *dnsServer != "" {
		dialCfg.Resolver = resolver.New(withDefaultPort(*dnsServer, "53"))
	}
	cfg.Dialer = dialer.New(dialCfg)

	g, ctx := errgroup.WithContext(context.Background())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *debugListen != "" {
		debugSrv := &http.Server{Handler: http.DefaultServeMux} //nolint:gosec // Not concerned about timeouts on debug port.
		lc := net.ListenConfig{KeepAliveConfig: ka}
		debugLn, err := lc.Listen(ctx, "tcp", *debugListen)
		if err != nil {
			return fmt.Errorf("debug listen: %w", err)
		}
		context.AfterFunc(ctx, func() {
			_ = debugSrv.Close()
			_ = debugLn.Close()
		})

		g.Go(func() error {
			if err := debugSrv.Serve(debugLn); err != nil {
				return fmt.Errorf("debug serve: %w", err)
			}
			return nil
		})
		log.Printf("debug listening on %s", *debugListen)
	}

	ln, err := proxy.ListenTCP("tcp", *listen, ka)
	if err != nil {
		return fmt.Errorf("socks5 listen: %w", err)
	}
	srv := proxy.NewServer(ctx, cfg, *verbose)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil {
			return fmt.Errorf("socks5 serve: %w", err)
		}
		return nil
	})
	log.Printf("socks5 proxy listening on %s", *listen)

	err = g.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	log.Printf("shutting down, %d sessions still open", srv.ActiveSessions())
	return err
}

func parseTCPKeepAlive(s string) (net.KeepAliveConfig, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return net.KeepAliveConfig{}, errors.New("empty")
	case "on":
		return net.KeepAliveConfig{Enable: true}, nil
	case "off":
		return net.KeepAliveConfig{Enable: false}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return net.KeepAliveConfig{}, errors.New("expected on|off|keepidle:keepintvl:keepcnt")
	}
	keepIdle, err := parsePositiveInt(parts[0])
	if err != nil {
		return net.KeepAliveConfig{}, fmt.Errorf("keepidle: %w", err)
	}
	keepIntvl, err := parsePositiveInt(parts[1])
	if err != nil {
		return net.KeepAliveConfig{}, fmt.Errorf("keepintvl: %w", err)
	}
	keepCnt, err := parsePositiveInt(parts[2])
	if err != nil {
		return net.KeepAliveConfig{}, fmt.Errorf("keepcnt: %w", err)
	}

	return net.KeepAliveConfig{
		Enable:   true,
		Idle:     time.Duration(keepIdle) * time.Second,
		Interval: time.Duration(keepIntvl) * time.Second,
		Count:    keepCnt,
	}, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be > 0")
	}
	return n, nil
}

// withDefaultPort appends port to addr when addr has none.
func withDefaultPort(addr, port string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	return net.JoinHostPort(addr, port)
}
