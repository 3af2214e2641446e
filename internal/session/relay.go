package session

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Relay copies bytes in both directions between the client and upstream
// connections until either direction reaches end-of-stream or fails. The
// first direction to finish closes both connections, which unblocks the
// other. Context cancellation tears the relay down the same way.
func Relay(ctx context.Context, client, upstream net.Conn) error {
	var closeOnce sync.Once
	closeBoth := func() {
		closeOnce.Do(func() {
			_ = client.Close()
			_ = upstream.Close()
		})
	}
	defer closeBoth()

	stop := context.AfterFunc(ctx, closeBoth)
	defer stop()

	g := errgroup.Group{}

	g.Go(func() error {
		_, err := io.Copy(client, upstream)
		closeBoth()
		return err
	})

	g.Go(func() error {
		_, err := io.Copy(upstream, client)
		closeBoth()
		return err
	})

	err := g.Wait()
	// Closing one side to stop the other is the normal way a relay ends;
	// don't report it as a failure.
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}
