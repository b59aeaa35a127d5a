package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blogkit/cmd/blogkit/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

type rootOptions struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string

	stdout io.Writer
	stderr io.Writer
	module *bootstrap.Module
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "blogkit",
		Short: "Tooling for a bilingual blog",
		Long: `blogkit keeps a bilingual blog in shape.

It syncs posts from a Notion database into markdown files, translates
URL paths between locales, lists the local post collection, renders
post previews and prints interface strings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			module, err := moduleBuilder(bootstrap.Options{
				ConfigFile: opts.configFile,
				EnvFile:    opts.envFile,
				LogLevel:   opts.logLevel,
				LogFormat:  opts.logFormat,
				LogOutput:  opts.stderr,
			})
			if err != nil {
				return err
			}
			opts.module = module
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to a blogkit config file (yaml, json or toml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file exported before reading the environment")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "go-logger output format (console, json, pretty)")

	root.AddCommand(
		newSyncCmd(opts),
		newTranslateCmd(opts),
		newPostsCmd(opts),
		newPreviewCmd(opts),
		newUICmd(opts),
	)
	return root
}
