package rpc

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DoerFunc adapts a function to the HTTP interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

type Middleware func(next HTTP) HTTP

// Chain composes middlewares so the first one is the outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(next HTTP) HTTP {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// Logging logs every round trip. Request bodies are never logged, they carry
// passphrases and keys.
func Logging(logger *zap.Logger) Middleware {
	return func(next HTTP) HTTP {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.Do(req)
			duration := time.Since(start)
			if err != nil {
				logger.Warn("http request failed",
					zap.String("url", req.URL.Redacted()),
					zap.Duration("took", duration),
					zap.Error(err))
				return nil, err
			}
			logger.Debug("http request",
				zap.String("url", req.URL.Redacted()),
				zap.Int("status", resp.StatusCode),
				zap.Duration("took", duration))
			return resp, nil
		})
	}
}

// RateLimit holds every request until the limiter grants a token.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next HTTP) HTTP {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, errors.Wrap(err, "rate limit")
			}
			return next.Do(req)
		})
	}
}
