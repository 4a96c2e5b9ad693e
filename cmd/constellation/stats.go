package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/constellation/skill"
)

// CLI colors
var (
	heading = color.New(color.FgHiCyan, color.Bold)
	subtle  = color.New(color.FgHiBlack)
	value   = color.New(color.FgHiWhite)
	failure = color.New(color.FgRed)
)

var printer = message.NewPrinter(language.English)

var (
	rarityOrder  = []skill.Rarity{skill.RarityCommon, skill.RarityUncommon, skill.RarityRare, skill.RarityLegendary}
	qualityOrder = []skill.Quality{skill.QualityCommon, skill.QualityRare, skill.QualityEpic, skill.QualityLegendary}
)

// treeStats summarizes a generated tree
type treeStats struct {
	Nodes, Prereqs, Bridges int
	Tiers                   []int
	Categories              map[skill.Category]int
	Rarities                map[skill.Rarity]int
	Qualities               map[skill.Quality]int
	Abilities               int
	Conditional             int
	Exclusive               int
	BaseCost                skill.Cost
}

func statsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the generated tree",
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
			writeStats(cmd.OutOrStdout(), tree)
			return nil
		},
	}
}

func collectStats(t *skill.Tree) treeStats {
	st := treeStats{
		Nodes:      t.Len(),
		Tiers:      make([]int, t.MaxTier()+1),
		Categories: make(map[skill.Category]int),
		Rarities:   make(map[skill.Rarity]int),
		Qualities:  make(map[skill.Quality]int),
	}
	groups := make(map[string]struct{})

	for _, n := range t.Nodes() {
		st.Tiers[n.Tier]++
		st.Categories[n.Category]++
		st.Rarities[n.Rarity]++
		st.Qualities[n.Quality]++
		if n.Ability != nil {
			st.Abilities++
		}
		if len(n.Conditions) > 0 {
			st.Conditional++
		}
		if n.ExclusiveGroup != "" {
			groups[n.ExclusiveGroup] = struct{}{}
		}
		st.BaseCost.Coin += n.BaseCost.Coin
		st.BaseCost.Mana += n.BaseCost.Mana
		st.BaseCost.Favor += n.BaseCost.Favor
	}
	st.Exclusive = len(groups)

	for _, e := range t.Edges() {
		if e.Kind == skill.EdgeBridge {
			st.Bridges++
		} else {
			st.Prereqs++
		}
	}
	return st
}

// writeStats prints the summary as aligned label/value rows
func writeStats(w io.Writer, t *skill.Tree) {
	st := collectStats(t)

	heading.Fprintf(w, "constellation seed %#x\n\n", t.Seed())

	row := func(label, val string) {
		subtle.Fprintf(w, "  %-20s", label)
		value.Fprintln(w, val)
	}
	row("Nodes", printer.Sprintf("%d across %d tiers", st.Nodes, len(st.Tiers)))
	row("Edges", printer.Sprintf("%d prerequisite, %d bridge", st.Prereqs, st.Bridges))
	row("Special abilities", printer.Sprintf("%d", st.Abilities))
	row("Conditional nodes", printer.Sprintf("%d", st.Conditional))
	row("Exclusive groups", printer.Sprintf("%d", st.Exclusive))
	row("Total base cost", printer.Sprintf("%d coin, %d mana, %d favor", st.BaseCost.Coin, st.BaseCost.Mana, st.BaseCost.Favor))

	widths := make([]string, len(st.Tiers))
	for i, n := range st.Tiers {
		widths[i] = fmt.Sprint(n)
	}
	row("Tier widths", strings.Join(widths, " "))

	fmt.Fprintln(w)
	heading.Fprintln(w, "By category")
	for _, c := range skill.Categories {
		row(string(c), printer.Sprintf("%d", st.Categories[c]))
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "By rarity")
	for _, r := range rarityOrder {
		row(string(r), printer.Sprintf("%d", st.Rarities[r]))
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "By quality")
	for _, q := range qualityOrder {
		row(string(q), printer.Sprintf("%d", st.Qualities[q]))
	}
}
