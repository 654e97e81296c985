// Command disttool replaces the Makefile of a Python distribution: it
// cleans the tree, builds and publishes distribution artifacts, and sets
// up a notebook-based development environment.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/datawire/disttool/pkg/cliutil"
	"github.com/datawire/disttool/pkg/project"
)

var argparser = &cobra.Command{
	Use:   "disttool {[flags]|SUBCOMMAND...}",
	Short: "Build, publish, and clean a Python distribution",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,

	SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
	SilenceUsage:  true, // our FlagErrorFunc will handle it
}

var rootFlags struct {
	dir      string
	config   string
	logLevel logLevelFlag
}

// logLevelFlag is a pflag.Value for logrus levels.
type logLevelFlag struct {
	level logrus.Level
}

var _ pflag.Value = (*logLevelFlag)(nil)

func (f *logLevelFlag) String() string { return f.level.String() }
func (f *logLevelFlag) Type() string   { return "LEVEL" }
func (f *logLevelFlag) Set(str string) error {
	level, err := logrus.ParseLevel(str)
	if err != nil {
		return err
	}
	f.level = level
	return nil
}

var logger = logrus.New()

func init() {
	rootFlags.logLevel.level = logrus.InfoLevel

	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)

	argparser.PersistentFlags().StringVarP(&rootFlags.dir, "directory", "C", ".",
		"Run as if disttool had been started in `DIR`")
	argparser.PersistentFlags().StringVar(&rootFlags.config, "config", "",
		"Read project settings from `FILE` (default <DIR>/"+project.DefaultConfigFile+")")
	argparser.PersistentFlags().Var(&rootFlags.logLevel, "log-level",
		"Log at `LEVEL` (error, warning, info, debug, trace)")

	argparser.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logger.SetLevel(rootFlags.logLevel.level)
	}
}

// loadProject resolves the persistent flags into project settings.
func loadProject() (*project.Project, error) {
	return project.Load(rootFlags.dir, rootFlags.config)
}

func main() {
	logger.SetOutput(os.Stderr)
	ctx := dlog.WithLogger(context.Background(), dlog.WrapLogrus(logger))

	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(argparser.ErrOrStderr(), "%s: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
