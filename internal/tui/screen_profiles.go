package tui

import (
	"strings"

	"github.com/theirongolddev/finsim/internal/feedback"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/tui/components"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

func (a App) updateProfiles(key string) (App, bool) {
	profiles := model.ProfilesIn(a.category)

	switch key {
	case "j", "down", "l", "right":
		if a.profileCursor < len(profiles)-1 {
			a.profileCursor++
		}
		return a, true
	case "k", "up", "h", "left":
		if a.profileCursor > 0 {
			a.profileCursor--
		}
		return a, true
	case "i", "x":
		c := model.CategoryInternal
		if key == "x" {
			c = model.CategoryExternal
		}
		if c != a.category {
			a.category = c
			a.profileCursor = 0
		}
		return a, true
	case "enter":
		if a.profileCursor < len(profiles) {
			p := profiles[a.profileCursor]
			a.selectProfile(p)
			a.screen = screenSimulator
			a.setStatus("Profile: " + p.Name())
			a.logger.Debug("profile selected", zap.String("profile", p.String()))
		}
		return a, true
	}
	return a, false
}

func (a App) renderProfiles(cw int) string {
	t := theme.Active
	profiles := model.ProfilesIn(a.category)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	activeStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)

	perRow := 3
	if a.isCompactLayout() {
		perRow = 2
	}

	var rows []string
	for start := 0; start < len(profiles); start += perRow {
		end := min(start+perRow, len(profiles))
		widths := components.LayoutRow(cw, perRow)

		cards := make([]string, 0, perRow)
		for i, p := range profiles[start:end] {
			idx := start + i
			inner := components.CardInnerWidth(widths[i])

			var body strings.Builder
			body.WriteString(titleStyle.Render(p.Name()))
			if a.hasProfile && a.profile == p {
				body.WriteString(activeStyle.Render("  (current)"))
			}
			body.WriteString("\n")
			body.WriteString(mutedStyle.Width(inner).Render(feedback.Usage(p)))

			if idx == a.profileCursor {
				cards = append(cards, components.FocusCard("▸ "+p.Category().String(), body.String(), widths[i]))
			} else {
				cards = append(cards, components.ContentCard("  "+p.Category().String(), body.String(), widths[i]))
			}
		}
		rows = append(rows, components.CardRow(cards))
	}

	title := "Internal users"
	if a.category == model.CategoryExternal {
		title = "External users"
	}
	heading := components.ContentCard("", mutedStyle.Render(title+" · [i] internal  [x] external"), cw)

	return heading + "\n" + strings.Join(rows, "\n")
}
