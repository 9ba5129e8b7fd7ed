package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/tui/components"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var homeChoices = []struct {
	category model.Category
	title    string
	blurb    string
}{
	{model.CategoryInternal, "Internal users", "People inside the business: managers, employees and partners."},
	{model.CategoryExternal, "External users", "People outside it: investors, banks, government, clients, suppliers and society."},
}

func (a App) updateHome(key string) (App, bool) {
	switch key {
	case "j", "down", "l", "right":
		if a.homeCursor < len(homeChoices)-1 {
			a.homeCursor++
		}
		return a, true
	case "k", "up", "h", "left":
		if a.homeCursor > 0 {
			a.homeCursor--
		}
		return a, true
	case "i":
		a.homeCursor = 0
		return a.chooseCategory(), true
	case "x":
		a.homeCursor = 1
		return a.chooseCategory(), true
	case "enter":
		return a.chooseCategory(), true
	}
	return a, false
}

func (a App) chooseCategory() App {
	c := homeChoices[a.homeCursor].category
	if c != a.category {
		a.profileCursor = 0
	}
	a.category = c
	a.screen = screenProfiles
	return a
}

func (a App) renderHome(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var intro strings.Builder
	intro.WriteString(titleStyle.Render("◈ Multi Tech financial simulator"))
	intro.WriteString("\n\n")
	intro.WriteString(textStyle.Width(components.CardInnerWidth(cw)).Render(
		"Accounting information serves many users. Pick who you are, move the sliders and see how the same numbers read to each of them."))
	intro.WriteString("\n\n")
	intro.WriteString(mutedStyle.Render(fmt.Sprintf("Baseline: revenue %s, expenses %s, %s students.",
		cli.FormatBRL(a.session.Baseline().Revenue),
		cli.FormatBRL(a.session.Baseline().Expenses),
		cli.FormatCount(a.session.Baseline().Students))))

	widths := components.LayoutRow(cw, len(homeChoices))
	cards := make([]string, 0, len(homeChoices))
	for i, c := range homeChoices {
		var body strings.Builder
		body.WriteString(textStyle.Width(components.CardInnerWidth(widths[i])).Render(c.blurb))
		body.WriteString("\n\n")
		names := make([]string, 0, 6)
		for _, p := range model.ProfilesIn(c.category) {
			names = append(names, p.Name())
		}
		body.WriteString(mutedStyle.Width(components.CardInnerWidth(widths[i])).Render(strings.Join(names, " · ")))

		if i == a.homeCursor {
			cards = append(cards, components.FocusCard("▸ "+c.title, body.String(), widths[i]))
		} else {
			cards = append(cards, components.ContentCard("  "+c.title, body.String(), widths[i]))
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("", intro.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.CardRow(cards))
	return b.String()
}
