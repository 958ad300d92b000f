package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{name: "Ada Lovelace", want: "AL"},
		{name: "grace brewster murray hopper", want: "GH"},
		{name: "  linus  ", want: "L"},
		{name: "jean-luc picard", want: "JP"},
		{name: "", want: ""},
		{name: "   ", want: ""},
		{name: "émile zola", want: "ÉZ"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.name), tt.name)
	}
}

func TestTextWithStyle(t *testing.T) {
	t.Parallel()

	text := NewText("note").WithStyle(lipgloss.NewStyle().PaddingLeft(2))
	assert.Equal(t, "note", text.Content())
	assert.Equal(t, "  note", text.View())
}

func TestAvatarFallbackAndSizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "?", NewAvatar("").Initials())
	assert.Equal(t, "*", NewAvatar(" ").WithFallback("*").Initials())

	small := NewAvatar("Ada Lovelace").WithSize(AvatarSizeSmall).View()
	large := NewAvatar("Ada Lovelace").WithSize(AvatarSizeLarge).View()
	assert.Contains(t, small, "AL")
	assert.Greater(t, lipgloss.Height(large), lipgloss.Height(small))
	palette := DefaultTheme().Palette
	assert.Equal(t, avatarSlot("Ada")(palette), avatarSlot(" ada ")(palette), "colour is stable")
}

func TestDividerWidthAndLabel(t *testing.T) {
	t.Parallel()

	plain := NewDivider().WithWidth(10).View()
	assert.Equal(t, 10, lipgloss.Width(plain))

	ctx := DefaultContext().WithConstraints(WithMaxWidth(20))
	labeled := LabeledDivider("or").ViewWithContext(ctx)
	assert.Equal(t, 20, lipgloss.Width(labeled))
	assert.Contains(t, labeled, " or ")

	tooLong := LabeledDivider("a very long label").WithWidth(8).View()
	assert.NotContains(t, tooLong, "label")

	vertical := VerticalDivider().WithWidth(3).View()
	assert.Equal(t, 3, lipgloss.Height(vertical))
}

func TestStackLayout(t *testing.T) {
	t.Parallel()

	v := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	lines := strings.Split(v, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0])
	assert.Empty(t, strings.TrimSpace(lines[1]))

	h := HStack(NewText("a"), NewText("b")).WithGap(2).View()
	assert.Equal(t, "a  b", h)

	empty := VStack().View()
	assert.Empty(t, empty)
}

func TestSpacer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   ", HorizontalSpacer(3).View())
	assert.Equal(t, 2, lipgloss.Height(VerticalSpacer(2).View()))
	assert.Empty(t, NewSpacer(-1, 0).View())
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		theme, ok := ThemeByName(name)
		assert.True(t, ok)
		assert.Equal(t, name, theme.Name)
		assert.NotNil(t, theme.Variants.Get(ButtonVariantPrimary))
	}
	_, ok := ThemeByName("neon")
	assert.False(t, ok)
}
