package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/constellation/config"
	"github.com/lixenwraith/constellation/skill"
)

var version = "0.3.0"

// globalOptions are the persistent flags shared by every subcommand
type globalOptions struct {
	configPath string
	seed       uint64
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "constellation",
		Short:         "Explore a procedurally generated skill constellation",
		Long:          "Constellation renders a seeded, endlessly expanding skill tree as a star map in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts)
		},
	}
	root.SetVersionTemplate("constellation {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	pf.Uint64Var(&opts.seed, "seed", 0, "Generation seed, overrides config and environment")
	pf.BoolVar(&opts.debug, "debug", false, "Write a debug log under logs/")

	root.AddCommand(
		runCmd(opts),
		dumpCmd(opts),
		statsCmd(opts),
	)
	return root
}

func runCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive constellation view (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts)
		},
	}
}

// loadConfig resolves file, environment and flag settings in increasing precedence
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	if opts.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func generateTree(cfg *config.Config) (*skill.Tree, error) {
	tree, err := skill.Generate(cfg.Seed, cfg.Params())
	if err != nil {
		return nil, fmt.Errorf("generate tree: %w", err)
	}
	return tree, nil
}
