package xcoin

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sebamiro/xcoin/internal/rpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a whole call, connection included.
const DefaultTimeout = 30 * time.Second

type (
	// RPCError is the error reported by the daemon for a failed call.
	RPCError = rpc.Error

	// TransportError is returned when the daemon could not be reached or its
	// answer was not a JSON-RPC response.
	TransportError = rpc.TransportError

	// HTTP is the interface used to send requests, *http.Client implements it.
	HTTP = rpc.HTTP
)

// Config is the connection configuration of a Client.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// URL returns the daemon endpoint, http://host:port
func (c Config) URL() string {
	return "http://" + net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Client of a bitcoind-style JSON-RPC daemon.
type Client struct {
	rpc.Client
	config Config
}

type options struct {
	timeout time.Duration
	http    HTTP
	logger  *zap.Logger
	limiter *rate.Limiter
}

type Option func(*options)

// WithTimeout overrides DefaultTimeout. Ignored when WithHTTP is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithHTTP sends requests through h instead of an *http.Client built from
// the configuration.
func WithHTTP(h HTTP) Option {
	return func(o *options) { o.http = h }
}

// WithLogger sets the logger used for calls and http round trips.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRateLimit allows at most limit requests per second with the given
// burst. Calls wait for a token until their context ends.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *options) { o.limiter = rate.NewLimiter(limit, burst) }
}

// NewClient returns a Client for the daemon at host:port authenticating with
// username and password. Nothing is validated until the first call.
//
// Example:
//
//	client := xcoin.NewClient("127.0.0.1", 8332, "user", "pass")
//	count, err := client.GetBlockCount(ctx)
func NewClient(host string, port int, username, password string, opts ...Option) *Client {
	return NewClientFromConfig(Config{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
	}, opts...)
}

// NewClientFromConfig returns a Client for config.
func NewClientFromConfig(config Config, opts ...Option) *Client {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout > 0 {
		config.Timeout = o.timeout
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	logger := o.logger.Named("xcoin")

	var h HTTP = &http.Client{Timeout: config.Timeout}
	if o.http != nil {
		h = o.http
	}
	middlewares := []rpc.Middleware{rpc.Logging(logger)}
	if o.limiter != nil {
		middlewares = append(middlewares, rpc.RateLimit(o.limiter))
	}

	return &Client{
		Client: rpc.Client{
			HTTP:     rpc.Chain(middlewares...)(h),
			URL:      config.URL(),
			Username: config.Username,
			Password: config.Password,
			Logger:   logger,
		},
		config: config,
	}
}

// Config returns the connection configuration of the client.
func (c *Client) Config() Config {
	return c.config
}

// Invoke calls method with params and returns the raw result, nil when the
// daemon returned a null result.
//
// Params are positional: leave out trailing optional parameters rather than
// passing nil, the daemon counts them.
func (c *Client) Invoke(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	return c.Call(ctx, method, params...)
}

// CallResult executes a call, with params if any, and decodes the result
// into a T. A null result leaves the zero T.
func CallResult[T any](ctx context.Context, c *Client, method string, params ...any) (T, error) {
	var result T
	raw, err := c.Invoke(ctx, method, params...)
	if err != nil {
		return result, err
	}
	if raw == nil {
		return result, nil
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, errors.Wrapf(err, "%s, result json unmarshaling", method)
	}
	return result, nil
}

// callNoResult executes a call whose result carries nothing of interest.
func (c *Client) callNoResult(ctx context.Context, method string, params ...any) error {
	_, err := c.Invoke(ctx, method, params...)
	return err
}
