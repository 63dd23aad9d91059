// internal/app/app.go
package app

import (
	"context"
	"errors"
	"io"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seqrush/internal/cli"
	"seqrush/internal/pipeline"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// Run parses argv, runs the pipeline and returns the process exit code.
// Logs go to stderr; the graph goes to stdout only when --output is "-".
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cmd := cli.NewCommand(func(_ *cobra.Command, o cli.Options) error {
		switch {
		case o.Verbose:
			logger.SetLevel(log.DebugLevel)
		case o.Quiet:
			logger.SetLevel(log.WarnLevel)
		}
		if o.ConfigFile != "" {
			logger.Debug("loaded settings", "config", o.ConfigFile)
		}
		if o.Threads != pipeline.DefaultThreads || o.MinMatchLength != pipeline.DefaultMinMatchLength {
			logger.Debug("threads and min-match-length are reserved and ignored",
				"threads", o.Threads, "min-match-length", o.MinMatchLength)
		}

		o.Config.Stdout = stdout
		logger.Debug("reading sequences", "path", o.Sequences)
		st, err := pipeline.Run(o.Config)
		if err != nil {
			return err
		}
		logger.Info("wrote graph",
			"output", o.Output, "segments", st.Segments, "links", st.Links, "residues", st.Residues)
		return nil
	})
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		if ctx.Err() != nil {
			return ExitInterrupted
		}
		return ExitOK
	case errors.Is(err, pipeline.ErrWrite) && isBrokenPipe(err):
		return ExitOK
	case errors.Is(err, pipeline.ErrRead), errors.Is(err, pipeline.ErrWrite):
		logger.Error("failed", "err", err)
		return ExitIO
	default:
		logger.Error("invalid arguments", "err", err)
		_, _ = io.WriteString(stderr, cmd.UsageString())
		return ExitUsage
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "seqrush",
		Level:  log.InfoLevel,
	})
}

// isBrokenPipe reports whether a downstream reader (e.g. `head`) closed early.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
