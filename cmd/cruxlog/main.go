package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cruxlog/internal/bootstrap"
	sessioninadapter "cruxlog/internal/modules/session/adapter/in"
	"cruxlog/internal/modules/session/domain"
	"cruxlog/internal/platform/clock"
	"cruxlog/internal/platform/config"
	"cruxlog/internal/platform/id"
	"cruxlog/internal/platform/logging"
	"cruxlog/internal/platform/markdown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "cruxlog",
		Short:         "Climbing session logger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cruxlog/config.toml)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(&flags))
	root.AddCommand(newSimulateCmd(&flags))
	root.AddCommand(newConfigCmd(&flags))
	root.AddCommand(newScreensCmd())
	return root
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	return cfg, nil
}

func loadApp(flags *rootFlags, deps bootstrap.Deps) (*bootstrap.App, io.Closer, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, logger, deps)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return app, closer, nil
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the cruxlog terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, closer, err := loadApp(flags, bootstrap.Deps{})
			if err != nil {
				return err
			}
			defer closer.Close()
			app.Logger.Info("tui started", "config", app.Config.File)
			return bootstrap.RunTUI(app)
		},
	}
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var scriptPath, format, seedTime string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a YAML script of sessions and print their summaries",
		Example: `  cruxlog simulate --script sessions.yaml
  cruxlog simulate --script - --format text --seed-time 2026-02-25T18:00:00Z`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "markdown" && format != "text" {
				return fmt.Errorf("unsupported format %q (want text|markdown)", format)
			}
			if scriptPath == "" {
				return fmt.Errorf("--script is required")
			}

			deps := bootstrap.Deps{}
			if seedTime != "" {
				start, err := time.Parse(time.RFC3339, seedTime)
				if err != nil {
					return fmt.Errorf("--seed-time: %w", err)
				}
				deps.Clock = &clock.Stepped{Start: start.UTC(), Step: time.Minute}
				deps.IDs = &id.Sequence{Prefix: "sim"}
			}

			script, err := readScript(cmd.InOrStdin(), scriptPath)
			if err != nil {
				return err
			}
			app, closer, err := loadApp(flags, deps)
			if err != nil {
				return err
			}
			defer closer.Close()

			summaries, err := app.SessionCLI.Run(script)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, s := range summaries {
				if i > 0 {
					_, _ = fmt.Fprintln(out)
				}
				body := s.Markdown
				if format == "text" {
					if body, err = markdown.SplitFrontmatter(s.Markdown, nil); err != nil {
						return fmt.Errorf("summary %s: %w", s.SessionID, err)
					}
					_, _ = fmt.Fprintf(out, "== %s ==\n", s.Name)
				}
				_, _ = fmt.Fprint(out, strings.TrimRight(body, "\n")+"\n")
			}
			app.Logger.Info("simulate finished", "sessions", len(summaries))
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "YAML script path, or - for stdin")
	cmd.Flags().StringVar(&format, "format", "markdown", "output format: text|markdown")
	cmd.Flags().StringVar(&seedTime, "seed-time", "", "RFC3339 start time; enables reproducible timestamps and ids")
	return cmd
}

func readScript(stdin io.Reader, path string) (sessioninadapter.Script, error) {
	if path == "-" {
		return sessioninadapter.DecodeScript(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return sessioninadapter.Script{}, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return sessioninadapter.DecodeScript(f)
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			file := cfg.File
			if file == "" {
				file = "(defaults)"
			}
			_, _ = fmt.Fprintf(out, "file\t%s\n", file)
			_, _ = fmt.Fprintf(out, "session.type\t%s\n", cfg.Session.Type)
			_, _ = fmt.Fprintf(out, "session.goal\t%s\n", cfg.Session.Goal)
			_, _ = fmt.Fprintf(out, "session.level\t%s\n", cfg.Session.Level)
			_, _ = fmt.Fprintf(out, "session.clip\t%s\n", cfg.Session.Clip)
			_, _ = fmt.Fprintf(out, "session.audio\t%t\n", cfg.Session.Audio)
			_, _ = fmt.Fprintf(out, "session.low_sleep\t%t\n", cfg.Session.LowSleep)
			_, _ = fmt.Fprintf(out, "session.discomfort\t%t\n", cfg.Session.Discomfort)
			_, _ = fmt.Fprintf(out, "session.goals\t%s\n", strings.Join(cfg.Session.Goals, ", "))
			_, _ = fmt.Fprintf(out, "session.levels\t%s\n", strings.Join(cfg.Session.Levels, ", "))
			_, _ = fmt.Fprintf(out, "session.clips\t%s\n", strings.Join(cfg.Session.Clips, ", "))
			_, _ = fmt.Fprintf(out, "rest.default\t%s\n", cfg.Rest.Default)
			_, _ = fmt.Fprintf(out, "log.level\t%s\n", cfg.Log.Level)
			_, _ = fmt.Fprintf(out, "log.file\t%s\n", cfg.Log.File)
			return nil
		},
	}
}

func newScreensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List screen names accepted by the command palette",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range domain.Screens() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.String())
			}
			return nil
		},
	}
}
