package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ContentType is the media type bitcoind-style daemons expect on requests.
const ContentType = "text/json"

// Client implements remote calls to a JSON-RPC daemon over http
type Client struct {
	HTTP     HTTP
	URL      string
	Username string
	Password string
	Logger   *zap.Logger
}

func (c Client) http() HTTP {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Call remote server with given method and positional params.
//
// The method name is lower-cased before sending. A nil result means the
// daemon answered with a null (or missing) result. Errors are either a
// *Error reported by the daemon or a *TransportError.
func (c Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	method = strings.ToLower(method)

	b, err := json.Marshal(Request{Version: Version, Method: method, Params: params, ID: RequestID})
	if err != nil {
		return nil, errors.Wrapf(err, "rpc %s, request marshaling", method)
	}

	start := time.Now()
	body, status, err := c.post(ctx, b)
	if err != nil {
		return nil, &TransportError{Method: method, StatusCode: status, Err: err}
	}

	r := Response{}
	if err = json.Unmarshal(body, &r); err != nil {
		return nil, &TransportError{
			Method:     method,
			StatusCode: status,
			Err:        errors.Wrap(err, "response json unmarshaling"),
		}
	}

	log := c.logger().With(zap.String("method", method), zap.Duration("took", time.Since(start)))
	if r.Error != nil {
		log.Debug("rpc call failed", zap.Int("code", r.Error.Code), zap.String("message", r.Error.Message))
		return nil, r.Error
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &TransportError{Method: method, StatusCode: status, Err: errors.Errorf("bad status %d", status)}
	}
	log.Debug("rpc call")

	if IsNull(r.Result) {
		return nil, nil
	}
	return r.Result, nil
}

// post sends body to the daemon and returns the raw response body along with
// the http status. Exactly one request is made.
func (c Client) post(ctx context.Context, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, 0, errors.Wrap(err, "request creation")
	}
	req.Header.Set("Content-Type", ContentType)
	req.ContentLength = int64(len(body))
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.http().Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "request execution")
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "response reading")
	}
	if len(b) == 0 && resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, errors.Errorf("bad status %s", resp.Status)
	}
	return b, resp.StatusCode, nil
}

// IsNull reports whether a raw result is absent or JSON null.
func IsNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
