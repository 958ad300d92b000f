package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// View renders the story strip, the scene, its status line and help.
func (m Model) View() string {
	ctx := m.renderContext()
	theme := ctx.Theme

	names := make([]string, len(m.stories))
	for i, story := range m.stories {
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == m.index {
			style = style.Inherit(theme.States.Selected)
		} else {
			style = style.Inherit(components.TypographyStyle(theme, components.TypographyVariantMuted))
		}
		names[i] = style.Render(story.Name)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, names...)

	story := m.Story()
	header := lipgloss.JoinVertical(lipgloss.Left,
		components.TypographyStyle(theme, components.TypographyVariantTitle).Render(story.Title),
		components.TypographyStyle(theme, components.TypographyVariantMuted).Render(story.Description),
	)

	parts := []string{
		strip,
		components.HorizontalDivider().ViewWithContext(ctx),
		header,
		"",
		m.scene.View(ctx),
	}
	if status := m.scene.Status(); status != "" {
		parts = append(parts, "", statusLine(theme, status))
	}
	parts = append(parts, "", m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n"))
}

func statusLine(theme components.Theme, status string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Palette.Primary.Base).
		Render(theme.States.Indicator + " " + status)
}

// Render builds the named story and renders it once at width, without the
// gallery chrome.
func Render(env Env, name string, width int) (string, error) {
	story, err := FindStory(name)
	if err != nil {
		return "", err
	}
	scene := story.Build(env)
	defer scene.Close()

	ctx := components.DefaultContext().WithTheme(env.Config.ResolvedTheme())
	if width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	}
	return scene.View(ctx), nil
}
