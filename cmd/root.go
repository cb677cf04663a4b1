package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xll-gen/resources-compiler/pkg/log"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitNoArguments = -1
	ExitNoOutput    = -3
	ExitFailure     = -255
)

// options holds the raw flag values of one invocation.
type options struct {
	sources  []string
	output   string
	config   string
	strict   bool
	logLevel string
	logFile  string
	noColor  bool

	// raw is the unparsed argument list, kept to report ignored flags.
	raw []string
}

// exitError carries the process exit code for a failed invocation.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// newRootCmd builds the resources_compiler command. out receives help output.
func newRootCmd(opts *options, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources_compiler",
		Short: "Compile binary files into an embeddable C++ resource lookup",
		Long: `resources_compiler converts a list of files into a C++ header/source pair.
The source holds every file as a constexpr byte array, and resources::manager
returns a std::string_view of a resource by its sanitized file name.`,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, opts, args, out)
		},
	}

	cmd.SetOut(out)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printHelp(out, opts.noColor)
	})

	f := cmd.Flags()
	f.StringArrayVar(&opts.sources, "sources", nil, "comma separated list of resource files (no spaces)")
	f.StringVar(&opts.output, "output", "", "output path without extension; .h and .cpp are derived from it")
	f.StringVar(&opts.config, "config", "", "YAML file with sources, output and logging settings")
	f.BoolVar(&opts.strict, "strict", false, "fail when two resources sanitize to the same name")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored banner and help")

	return cmd
}

// Execute runs the compiler with the process arguments and returns the exit
// code. This is called by main.main().
func Execute() int {
	return run(os.Args[1:], os.Stdout)
}

// run executes one invocation with args and maps the outcome to an exit code.
func run(args []string, out io.Writer) int {
	if err := log.Init("", "info"); err != nil {
		return ExitFailure
	}
	defer log.Sync()

	if len(args) == 0 {
		log.L().Error("not enough params")
		printHelp(out, false)
		return ExitNoArguments
	}

	opts := options{raw: args}
	cmd := newRootCmd(&opts, out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Flag values that fail to parse, e.g. --strict=maybe.
	log.L().Error("invalid arguments", zap.Error(err))
	printHelp(out, opts.noColor)
	return ExitNoArguments
}
