package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/viant/mcptarget"
	"github.com/viant/mcptarget/binder"
	"github.com/viant/mcptarget/cluster"
)

// Run runs mcptool with os args, writing the result to stdout.
func Run(args []string) error {
	return New(os.Stdout, os.Stderr).Run(context.Background(), args)
}

// Runner runs mcptool with the given output streams.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

func New(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr}
}

func (r *Runner) Run(ctx context.Context, args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.Config != "" {
		fileOptions, err := loadOptions(ctx, options.Config)
		if err != nil {
			return err
		}
		options.merge(fileOptions)
	}
	options.Init()

	logger := r.logger(options.Verbose)
	options.Logger = logger
	toolArgs, err := toolArguments(options.Args)
	if err != nil {
		return err
	}
	descriptor, err := loadDescriptor(ctx, options)
	if err != nil {
		return err
	}
	mode, err := binder.ParseAuthMode(options.Mode)
	if err != nil {
		return err
	}
	headers, err := binder.Bind(descriptor, mode)
	if err != nil {
		return err
	}
	logger.Debug().Stringer("cluster", descriptor).Str("mode", mode.String()).Str("encoding", options.Encoding).Msg("bound target cluster credentials")

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}
	result, err := r.call(ctx, options, headers, toolArgs)
	if err != nil {
		return r.report(logger, options, err)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %v result: %w", options.Tool, err)
	}
	_, err = fmt.Fprintln(r.stdout, string(data))
	return err
}

func (r *Runner) call(ctx context.Context, options *Options, headers *binder.HeaderSet, args map[string]any) (any, error) {
	cli, err := mcptarget.NewClient(ctx, &options.ClientOptions, headers)
	if err != nil {
		return nil, err
	}
	options.Logger.Info().Str("url", options.URL).Str("tool", options.Tool).Msg("calling tool")
	return mcptarget.Call(ctx, cli, options.Tool, args)
}

// report logs call failures; only unclassified errors are returned.
func (r *Runner) report(logger zerolog.Logger, options *Options, err error) error {
	var callErr *mcptarget.CallError
	if !errors.As(err, &callErr) {
		return err
	}
	switch callErr.Kind {
	case mcptarget.ConnectionFailure:
		logger.Error().Err(callErr.Err).Str("url", options.URL).Msg("failed to connect")
	default:
		logger.Error().Err(callErr.Err).Str("type", callErr.Type).Str("method", callErr.Method).Str("tool", options.Tool).Msg("call failed")
	}
	return nil
}

func (r *Runner) logger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: r.stderr, NoColor: true}).Level(level).With().Timestamp().Logger()
}

func loadDescriptor(ctx context.Context, options *Options) (*cluster.Descriptor, error) {
	if options.Kubeconfig != "" {
		return cluster.LoadKubeconfig(options.Kubeconfig, options.KubeContext)
	}
	return cluster.Load(ctx, options.Descriptor)
}
