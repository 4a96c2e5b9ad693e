package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/constellation/skill"
)

var errUnknownFormat = errors.New("unknown dump format")

// treeDump is the exported shape of a generated tree
type treeDump struct {
	Seed   uint64        `json:"seed" yaml:"seed"`
	Params skill.Params  `json:"params" yaml:"params"`
	Nodes  []*skill.Node `json:"nodes" yaml:"nodes"`
	Edges  []skill.Edge  `json:"edges" yaml:"edges"`
}

func dumpCmd(opts *globalOptions) *cobra.Command {
	var (
		format string
		output string
		expand int
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the generated tree as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			tree, err := generateTree(cfg)
			if err != nil {
				return err
			}
			// Negative counts reach Expand so they fail instead of being ignored
			if expand != 0 {
				if tree, err = skill.Expand(tree, tree.Seed(), expand); err != nil {
					return fmt.Errorf("expand tree: %w", err)
				}
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create dump: %w", err)
				}
				defer f.Close()
				w = f
			}
			return writeDump(w, tree, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, stdout when empty")
	cmd.Flags().IntVar(&expand, "expand", 0, "Grow the tree by this many frontier tiers before dumping")
	return cmd
}

// writeDump encodes every node and edge of t in generation order
func writeDump(w io.Writer, t *skill.Tree, format string) error {
	d := treeDump{
		Seed:   t.Seed(),
		Params: t.Params(),
		Nodes:  t.Nodes(),
		Edges:  t.Edges(),
	}

	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
