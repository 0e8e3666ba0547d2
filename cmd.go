package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/gops/agent"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type app struct {
	logOut io.Writer
	log *logrus.Logger
	cfg Config
}

func newApp(logOut io.Writer) *app {
	log := logrus.New()
	log.SetOutput(logOut)
	return &app{logOut: logOut, log: log}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "newtonfractal",
		Short: "Render Newton fractals of z^k - 1",
		Long: `Applies Newton's method to every point of a square grid over the complex plane
and writes two PPM images per degree: which root each point converges to, and
how many steps it took.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(a.logOut, cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(a.renderCommand(), a.configCommand())
	return root
}

func (a *app) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <degree>...",
		Short: "Render the fractal for one or more degrees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			degrees, err := parseDegrees(args)
			if err != nil {
				return err
			}

			if a.cfg.Gops {
				if err := agent.Listen(agent.Options{}); err != nil {
					a.log.WithError(err).Warn("gops agent failed to start")
				} else {
					defer agent.Close()
				}
			}

			return a.renderAll(cmd.Context(), degrees)
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func parseDegrees(args []string) ([]int, error) {
	degrees := make([]int, len(args))
	for i, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("degree %q: %w", arg, err)
		}
		degrees[i] = d
	}
	return degrees, nil
}
