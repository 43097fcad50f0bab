// Package grpcbackend is the gRPC client of the inference server: face
// detection and affect classification behind a circuit breaker.
package grpcbackend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/heartmarshall/moodverse-backend/internal/config"
	"github.com/heartmarshall/moodverse-backend/internal/detector"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/metrics"
)

const breakerName = "inference"

// healthPollInterval is the pause between health probes during Init.
const healthPollInterval = 500 * time.Millisecond

// Client talks to one inference server over a single connection shared by
// every tab.
type Client struct {
	log     *slog.Logger
	conn    *grpc.ClientConn
	health  healthpb.HealthClient
	cb      *gobreaker.CircuitBreaker[*structpb.Struct]
	timeout time.Duration
}

// New creates a client for cfg.Address. The connection is established
// lazily; Init blocks until the server reports SERVING.
func New(cfg config.DetectorConfig, logger *slog.Logger, extra ...grpc.DialOption) (*Client, error) {
	maxMsg := cfg.MaxMessageSizeMB * 1024 * 1024

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMsg),
			grpc.MaxCallSendMsgSize(maxMsg),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpcbackend.New: connect %s: %w", cfg.Address, err)
	}

	log := logger.With("component", "inference", "address", cfg.Address)

	return &Client{
		log:     log,
		conn:    conn,
		health:  healthpb.NewHealthClient(conn),
		cb:      newBreaker(cfg, log),
		timeout: cfg.DetectTimeout,
	}, nil
}

func newBreaker(cfg config.DetectorConfig, log *slog.Logger) *gobreaker.CircuitBreaker[*structpb.Struct] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*structpb.Struct](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()))

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// Init waits until the face detector service reports SERVING or ctx ends.
func (c *Client) Init(ctx context.Context) error {
	var lastErr error
	for {
		resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: FaceDetectorService}, grpc.WaitForReady(true))
		switch {
		case err != nil:
			lastErr = err
		case resp.GetStatus() == healthpb.HealthCheckResponse_SERVING:
			return nil
		default:
			lastErr = fmt.Errorf("status %s", resp.GetStatus())
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("grpcbackend.Init: %w (last: %v)", ctx.Err(), lastErr)
		case <-time.After(healthPollInterval):
		}
	}
}

// Ping reports whether the inference server is SERVING right now.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: FaceDetectorService})
	if err != nil {
		return fmt.Errorf("grpcbackend.Ping: %w", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("grpcbackend.Ping: status %s", resp.GetStatus())
	}
	return nil
}

// DetectFaces sends the frame to the face detector.
func (c *Client) DetectFaces(ctx context.Context, f detector.Frame) ([]domain.FaceRegion, error) {
	resp, err := c.invoke(ctx, detectMethod, f.JPEG)
	if err != nil {
		return nil, fmt.Errorf("grpcbackend.DetectFaces: %w", err)
	}

	faces, err := parseFaces(resp)
	if err != nil {
		return nil, fmt.Errorf("grpcbackend.DetectFaces: %w", err)
	}
	return faces, nil
}

// Classify asks the affect classifier for the mood shown in the frame.
func (c *Client) Classify(ctx context.Context, f detector.Frame) (domain.Mood, error) {
	resp, err := c.invoke(ctx, classifyMethod, f.JPEG)
	if err != nil {
		return 0, fmt.Errorf("grpcbackend.Classify: %w", err)
	}

	mood, err := domain.ParseMood(resp.GetFields()["mood"].GetStringValue())
	if err != nil {
		return 0, fmt.Errorf("grpcbackend.Classify: %w", err)
	}
	return mood, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, image []byte) (*structpb.Struct, error) {
	resp, err := c.cb.Execute(func() (*structpb.Struct, error) {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		out := new(structpb.Struct)
		if err := c.conn.Invoke(callCtx, method, wrapperspb.Bytes(image), out); err != nil {
			return nil, err
		}
		return out, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			c.log.WarnContext(ctx, "inference call rejected by circuit breaker", slog.String("method", method))
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).
				Set(float64(c.cb.Counts().ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)
	return resp, nil
}

func parseFaces(resp *structpb.Struct) ([]domain.FaceRegion, error) {
	field, ok := resp.GetFields()["faces"]
	if !ok {
		return nil, errors.New("response has no faces field")
	}
	list := field.GetListValue()
	if list == nil {
		return nil, errors.New("faces is not a list")
	}

	faces := make([]domain.FaceRegion, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		obj := v.GetStructValue()
		if obj == nil {
			return nil, fmt.Errorf("faces[%d] is not an object", i)
		}
		f := obj.GetFields()
		faces = append(faces, domain.FaceRegion{
			X:      f["x"].GetNumberValue(),
			Y:      f["y"].GetNumberValue(),
			Width:  f["width"].GetNumberValue(),
			Height: f["height"].GetNumberValue(),
			Score:  f["score"].GetNumberValue(),
		})
	}
	return faces, nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
