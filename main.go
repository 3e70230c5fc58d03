package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmallard/go-logsink/logsink"
)

// Demo binary exercising the logsink library: severity filtering, console
// and file sinks, indentation scopes, and trace filters.
func main() {
	var (
		quiet      int
		verbose    bool
		debug      bool
		color      bool
		stdoutOnly bool
		logfile    string
		logLines   string
		traces     []string
	)

	rootCmd := &cobra.Command{
		Use:   "logsink-demo",
		Short: "Tour of the logsink logging facility",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := logsink.NoticeLevel
			if verbose {
				verbosity = logsink.VerboseLevel
			}
			if debug {
				verbosity = logsink.DebugLevel
			}
			for i := 0; i < quiet; i++ {
				verbosity = verbosity.Quieter()
			}

			err := logsink.Init(logsink.Config{
				Verbosity:  verbosity,
				Colorize:   color,
				StdoutOnly: stdoutOnly,
			})
			if err != nil {
				return err
			}
			defer logsink.Close()

			if logfile != "" {
				fs, err := logsink.NewFileSink(logfile, false, verbosity)
				if err != nil {
					return err
				}
				logsink.Default.AddSink(fs)
			}
			if logLines != "" {
				fs, err := logsink.NewFileSink(logLines, true, verbosity)
				if err != nil {
					return err
				}
				logsink.Default.AddSink(fs)
			}
			for _, t := range traces {
				logsink.Default.AddTraceFilter(t)
			}

			run()
			return nil
		},
	}

	rootCmd.Flags().CountVarP(&quiet, "quiet", "q", "reduce verbosity (repeatable)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.Flags().BoolVar(&color, "color", false, "colorize console output")
	rootCmd.Flags().BoolVar(&stdoutOnly, "stdout-only", false, "send all console output to stdout")
	rootCmd.Flags().StringVarP(&logfile, "logfile", "l", "", "also log to this file")
	rootCmd.Flags().StringVarP(&logLines, "logfile-lines", "L", "", "also log to this file, line buffered")
	rootCmd.Flags().StringArrayVar(&traces, "trace", nil, "enable trace output for a function or type name")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() {
	logsink.Noticef("starting demo\n")

	done := logsink.Indent()
	logsink.Noticef("loading configuration\n")
	logsink.Verbosef("12 options parsed\n")

	inner := logsink.Indent()
	logsink.Debugf("option cache warmed\n")
	inner()
	done()

	logsink.Warnf("using default settings\n")
	logsink.Errorf("example error (not a real failure)\n")

	logsink.Tracef("demo trace message, pid %d\n", os.Getpid())

	logsink.Noticef("done\n")
}
