package renderer

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/constellation/skill"
)

// printer groups digits for every number shown on screen
var printer = message.NewPrinter(language.English)

// formatCost renders the non-zero parts of a cost, "free" when nothing is due
func formatCost(c skill.Cost) string {
	var parts []string
	if c.Coin > 0 {
		parts = append(parts, printer.Sprintf("%d coin", c.Coin))
	}
	if c.Mana > 0 {
		parts = append(parts, printer.Sprintf("%d mana", c.Mana))
	}
	if c.Favor > 0 {
		parts = append(parts, printer.Sprintf("%d favor", c.Favor))
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, " · ")
}
