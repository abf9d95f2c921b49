package report

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/gridquad/internal/ctxlog"
	"github.com/specialistvlad/gridquad/internal/quadrature"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
	"golang.org/x/time/rate"
)

// Options configures a socket.io reporter.
type Options struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
	// EventsPerSecond and Burst size the emit token bucket.
	EventsPerSecond float64
	Burst           int
}

// DefaultOptions returns sensible defaults for everything but the URL.
func DefaultOptions() Options {
	return Options{
		Namespace:       "/",
		ConnectTimeout:  15 * time.Second,
		EventsPerSecond: 10,
		Burst:           5,
	}
}

// SocketIO reports iterations and results to a socket.io namespace.
type SocketIO struct {
	send       func(event string, payload map[string]any)
	disconnect func()
	limiter    *rate.Limiter
}

func newSocketIO(client *socket.Socket, opts Options) *SocketIO {
	return &SocketIO{
		send: func(event string, payload map[string]any) {
			client.Emit(event, payload)
		},
		disconnect: func() { client.Disconnect() },
		limiter:    newLimiter(opts),
	}
}

func newLimiter(opts Options) *rate.Limiter {
	limit := rate.Inf
	if opts.EventsPerSecond > 0 {
		limit = rate.Limit(opts.EventsPerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(limit, burst)
}

// Dial connects to the server and waits for the namespace handshake.
func Dial(ctx context.Context, opts Options) (*SocketIO, error) {
	logger := ctxlog.FromContext(ctx).With("reporter", "socketio", "url", opts.URL)
	logger.Debug("Connecting reporter...")

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("report URL %q must be absolute", opts.URL)
	}

	sockOpts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		sockOpts.SetPath(parsedURL.Path)
	}
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sockOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 2)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sockOpts)
	io := manager.Socket(opts.Namespace, sockOpts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Reporter connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	io.Connect()

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultOptions().ConnectTimeout
	}

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return newSocketIO(io, opts), nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

func (s *SocketIO) emit(ctx context.Context, event string, payload map[string]any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting to emit %q: %w", event, err)
	}
	s.send(event, payload)
	return nil
}

// ObserveIteration implements quadrature.Observer. Failures are logged and
// never interrupt the run.
func (s *SocketIO) ObserveIteration(ctx context.Context, it quadrature.Iteration) {
	if err := s.emit(ctx, EventIteration, IterationPayload(it)); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to report iteration.", "iteration", it.Index, "error", err)
	}
}

// PublishResult emits the final outcome of a run.
func (s *SocketIO) PublishResult(ctx context.Context, res quadrature.Result) error {
	return s.emit(ctx, EventResult, ResultPayload(res))
}

// Close disconnects from the server.
func (s *SocketIO) Close() error {
	s.disconnect()
	return nil
}
