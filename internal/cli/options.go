// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seqrush/internal/pipeline"
	"seqrush/internal/version"
)

// EnvPrefix is prepended to every setting read from the environment,
// e.g. SEQRUSH_MIN_MATCH_LENGTH.
const EnvPrefix = "SEQRUSH"

// ErrNotRun is returned by Parse when argv only asked for help or version.
var ErrNotRun = errors.New("no run requested")

// Options holds the validated pipeline settings plus CLI-only switches.
type Options struct {
	pipeline.Config

	ConfigFile string
	Verbose    bool
	Quiet      bool
}

// RunFunc receives fully validated options.
type RunFunc func(cmd *cobra.Command, opts Options) error

// NewCommand returns the root command. Settings are layered
// flag > environment > config file > default before run is called.
func NewCommand(run RunFunc) *cobra.Command {
	v := viper.New()
	var opts Options

	cmd := &cobra.Command{
		Use:   "seqrush [flags] [sequences.fa]",
		Short: "Encode FASTA sequences as a GFA graph",
		Long: `seqrush: FASTA to GFA

Every sequence becomes a segment. Segments are joined, in input order,
by one path (p1) and by 0M links between neighbours.`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(v, cmd, opts.ConfigFile, args)
			if err != nil {
				return err
			}
			opts.Config = cfg
			return run(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("seqrush version {{.Version}}\n")

	fl := cmd.Flags()
	fl.StringP("sequences", "s", "", "input FASTA file, gzip allowed, '-' for stdin [*]")
	fl.StringP("output", "o", "", "output GFA file, '-' for stdout [*]")
	fl.IntP("threads", "t", pipeline.DefaultThreads, "worker threads (reserved, not used yet)")
	fl.IntP("min-match-length", "k", pipeline.DefaultMinMatchLength, "minimum match length (reserved, not used yet)")
	fl.StringVar(&opts.ConfigFile, "config", "", "read settings from a YAML, TOML or JSON file")
	fl.BoolVar(&opts.Verbose, "verbose", false, "debug logging")
	fl.BoolVarP(&opts.Quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return cmd
}

// Parse parses argv (without the program name) into Options and runs
// nothing. Help and version requests return ErrNotRun.
func Parse(argv []string) (Options, error) {
	var (
		got Options
		ran bool
	)
	cmd := NewCommand(func(_ *cobra.Command, o Options) error {
		got, ran = o, true
		return nil
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		return Options{}, err
	}
	if !ran {
		return Options{}, ErrNotRun
	}
	return got, nil
}

func load(v *viper.Viper, cmd *cobra.Command, configFile string, args []string) (pipeline.Config, error) {
	var cfg pipeline.Config

	for _, name := range []string{"sequences", "output", "threads", "min-match-length"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return cfg, err
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode settings: %w", err)
	}
	if len(args) == 1 {
		if cmd.Flags().Changed("sequences") {
			return cfg, errors.New("--sequences conflicts with a positional FASTA path")
		}
		cfg.Sequences = args[0]
	}
	return cfg, Validate(cfg)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings the pipeline needs.
func Validate(cfg pipeline.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch fe := verrs[0]; fe.StructField() {
	case "Sequences":
		return errors.New("input FASTA required")
	case "Output":
		return errors.New("output file required")
	case "Threads":
		return errors.New("--threads must be ≥ 1")
	case "MinMatchLength":
		return errors.New("--min-match-length must be ≥ 1")
	default:
		return fmt.Errorf("invalid %s: %s", fe.Field(), fe.Tag())
	}
}
