package components

import (
	"hash/fnv"
	"strings"
	"unicode"
)

// AvatarSize controls the padding around the initials.
type AvatarSize int

const (
	AvatarSizeSmall AvatarSize = iota
	AvatarSizeMedium
	AvatarSizeLarge
)

const avatarFallback = "?"

// Avatar shows a person's initials on a colour derived from their name.
type Avatar struct {
	BaseComponent
	name     string
	size     AvatarSize
	fallback string
}

// NewAvatar creates a medium avatar for name.
func NewAvatar(name string) *Avatar {
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		name:          name,
		size:          AvatarSizeMedium,
		fallback:      avatarFallback,
	}
}

func (a *Avatar) WithSize(size AvatarSize) *Avatar {
	a.size = size
	return a
}

// WithFallback sets the glyph shown when the name has no initials.
func (a *Avatar) WithFallback(glyph string) *Avatar {
	if glyph != "" {
		a.fallback = glyph
	}
	return a
}

func (a *Avatar) WithAppliers(appliers ...StyleFunc) *Avatar {
	a.AddAppliers(appliers...)
	return a
}

// Initials returns the rendered initials, or the fallback glyph.
func (a *Avatar) Initials() string {
	if initials := Initials(a.name); initials != "" {
		return initials
	}
	return a.fallback
}

func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	slot := avatarSlot(a.name)
	style := Background(slot)(a.ComputeStyle(ctx.Theme), ctx.Theme).Bold(true)

	switch a.size {
	case AvatarSizeSmall:
		style = style.Padding(0, 0)
	case AvatarSizeLarge:
		style = style.Padding(1, 2)
	default:
		style = style.Padding(0, 1)
	}
	return style.Render(a.Initials())
}

// Initials takes the first letter of the first and last words of name,
// upper-cased. Single words give one letter; blank names give "".
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
	})
	if len(words) == 0 {
		return ""
	}

	first := firstLetter(words[0])
	if len(words) == 1 {
		return first
	}
	return first + firstLetter(words[len(words)-1])
}

func firstLetter(word string) string {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}

var avatarSlots = []PaletteSlot{
	PalettePrimary,
	PaletteSecondary,
	PaletteSuccess,
	PaletteWarning,
	PaletteDanger,
	PaletteNeutral,
}

// avatarSlot picks a stable palette slot for name.
func avatarSlot(name string) PaletteSlot {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return avatarSlots[h.Sum32()%uint32(len(avatarSlots))]
}
