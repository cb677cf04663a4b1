package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/xll-gen/resources-compiler/internal/config"
	"github.com/xll-gen/resources-compiler/internal/generator"
	"github.com/xll-gen/resources-compiler/pkg/log"
)

// runCompile merges the configuration file with the flags, reports ignored
// options and runs the generator.
//
// Returns:
//   - error: An *exitError describing the exit code, or nil on success.
func runCompile(cmd *cobra.Command, opts *options, args []string, out io.Writer) error {
	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		log.L().Error("exception during processing", zap.Error(err))
		return &exitError{code: ExitFailure, err: err}
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return &exitError{code: ExitFailure, err: err}
	}

	for _, opt := range unknownOptions(cmd.Flags(), opts.raw) {
		log.L().Warn("unknown option: " + opt)
	}
	for _, arg := range args {
		log.L().Warn("unknown option: " + arg)
	}

	if len(cfg.Sources) == 0 {
		log.L().Warn("no source files specified, an empty project will be generated")
	}

	if err := config.Validate(cfg); err != nil {
		log.L().Error(err.Error())
		if errors.Is(err, config.ErrNoOutput) {
			printHelp(out, opts.noColor)
			return &exitError{code: ExitNoOutput, err: err}
		}
		return &exitError{code: ExitFailure, err: err}
	}

	if err := generator.Generate(cfg); err != nil {
		log.L().Error("exception during processing", zap.Error(err))
		return &exitError{code: ExitFailure, err: err}
	}
	return nil
}

// buildConfig loads the optional configuration file and applies the flags on
// top of it. Sources given on the command line follow those from the file.
func buildConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	for _, list := range opts.sources {
		cfg.Sources = append(cfg.Sources, config.SplitSources(list)...)
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.Path = opts.logFile
	}

	config.ApplyDefaults(cfg)
	return cfg, nil
}

// unknownOptions returns the arguments in raw that look like flags but are
// not defined in fs. An unknown flag without "=" swallows the following
// argument when it is not a flag itself, so that argument is reported too.
// Everything after a "--" terminator is ignored.
func unknownOptions(fs *pflag.FlagSet, raw []string) []string {
	var unknown []string
	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		var known bool
		if strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(arg[2:], "=")
			known = fs.Lookup(name) != nil
		} else {
			known = fs.ShorthandLookup(arg[1:2]) != nil
		}
		if known {
			continue
		}

		unknown = append(unknown, arg)
		if !strings.Contains(arg, "=") && i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			i++
			unknown = append(unknown, raw[i])
		}
	}
	return unknown
}
