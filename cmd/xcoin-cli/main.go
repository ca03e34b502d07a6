// Command xcoin-cli calls a procedure of a bitcoind-style daemon and prints
// its result.
//
//	xcoin-cli [flags] <method> [params...]
//
// Params are sent as JSON values when they parse as JSON, as strings
// otherwise.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/juju/gnuflag"
	"github.com/pkg/errors"
	"github.com/sebamiro/xcoin"
	"go.uber.org/zap"
)

const (
	exitOK        = 0
	exitRPC       = 1
	exitTransport = 2
	exitUsage     = 64
)

type config struct {
	xcoin.Config
	verbose bool
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	cfg := &config{}
	fs := gnuflag.NewFlagSet("xcoin-cli", gnuflag.ContinueOnError)
	fs.SetOutput(stderr)

	port, err := strconv.Atoi(envOr("XCOIN_RPC_PORT", "8332"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "XCOIN_RPC_PORT")
	}
	fs.StringVar(&cfg.Host, "host", envOr("XCOIN_RPC_HOST", "127.0.0.1"), "daemon host")
	fs.IntVar(&cfg.Port, "port", port, "daemon RPC port")
	fs.StringVar(&cfg.Username, "user", os.Getenv("XCOIN_RPC_USER"), "RPC username")
	fs.StringVar(&cfg.Password, "password", os.Getenv("XCOIN_RPC_PASSWORD"), "RPC password")
	fs.DurationVar(&cfg.Timeout, "timeout", xcoin.DefaultTimeout, "call timeout")
	fs.BoolVar(&cfg.verbose, "v", false, "log requests to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: xcoin-cli [flags] <method> [params...]")
		fs.PrintDefaults()
	}

	// stop at the method so negative params are not read as flags
	if err := fs.Parse(false, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, nil, errors.New("missing method")
	}
	return cfg, fs.Args(), nil
}

// parseParams decodes each argument as JSON, falling back to a string.
func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, arg := range args {
		var v any
		d := json.NewDecoder(bytes.NewReader([]byte(arg)))
		d.UseNumber()
		if err := d.Decode(&v); err != nil || d.More() {
			params = append(params, arg)
			continue
		}
		params = append(params, v)
	}
	return params
}

func printResult(w io.Writer, result json.RawMessage) error {
	if result == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(result, &s); err == nil {
		_, err = fmt.Fprintln(w, s)
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, result, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...xcoin.Option) int {
	cfg, rest, err := parseFlags(args, stderr)
	if err != nil {
		if err != gnuflag.ErrHelp {
			fmt.Fprintln(stderr, "error:", err)
		}
		return exitUsage
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	client := xcoin.NewClientFromConfig(cfg.Config, append([]xcoin.Option{xcoin.WithLogger(logger)}, opts...)...)
	result, err := client.Invoke(ctx, rest[0], parseParams(rest[1:])...)
	if err != nil {
		var rpcErr *xcoin.RPCError
		if errors.As(err, &rpcErr) {
			fmt.Fprintf(stderr, "error code: %d\nerror message:\n%s\n", rpcErr.Code, rpcErr.Message)
			return exitRPC
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitTransport
	}
	if err := printResult(stdout, result); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitTransport
	}
	return exitOK
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
