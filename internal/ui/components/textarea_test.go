package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func focusedTextarea(t *testing.T, ta *Textarea) *Textarea {
	t.Helper()
	doc, _ := newDoc()
	ta.Mount(doc, nil)
	require.NoError(t, doc.Focus(ta.Node()))
	return ta
}

func typeText(ta *Textarea, text string) {
	for _, r := range text {
		ta.Update(keyMsg(string(r)))
	}
}

func TestTextareaUncontrolledEditing(t *testing.T) {
	t.Parallel()

	var changes []string
	ta := focusedTextarea(t, NewTextarea("Notes").WithOnChange(func(v string) { changes = append(changes, v) }))

	typeText(ta, "hi")
	assert.Equal(t, "hi", ta.Value())
	assert.Equal(t, []string{"h", "hi"}, changes)
}

func TestTextareaControlledRevertsUntilOwnerUpdates(t *testing.T) {
	t.Parallel()

	var requested string
	ta := focusedTextarea(t, NewTextarea("Bio").
		WithValue("a").
		WithOnChange(func(v string) { requested = v }))

	_, handled := ta.Update(keyMsg("b"))
	require.True(t, handled)
	assert.Equal(t, "ab", requested)
	assert.Equal(t, "a", ta.Value())

	ta.SetValue(requested)
	assert.Equal(t, "ab", ta.Value())
}

func TestTextareaReadOnlyAndLimits(t *testing.T) {
	t.Parallel()

	readOnly := focusedTextarea(t, NewTextarea("Log").WithDefaultValue("fixed").WithReadOnly(true))
	_, handled := readOnly.Update(keyMsg("x"))
	assert.True(t, handled, "input is swallowed")
	assert.Equal(t, "fixed", readOnly.Value())

	limited := focusedTextarea(t, NewTextarea("Code").WithMaxLength(3))
	typeText(limited, "abcdef")
	assert.Equal(t, "abc", limited.Value())
}

func TestTextareaLeavesTabAndEscape(t *testing.T) {
	t.Parallel()

	ta := focusedTextarea(t, NewTextarea("Comment"))
	for _, key := range []string{"tab", "shift+tab", "esc"} {
		_, handled := ta.Update(keyMsg(key))
		assert.False(t, handled, key)
	}

	unfocused := NewTextarea("Other")
	_, handled := unfocused.Update(keyMsg("a"))
	assert.False(t, handled)
	assert.Empty(t, unfocused.Value())
}
