package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

// Button ids the stories react to.
const (
	openDialogID    = "open-dialog"
	cancelDeleteID  = "cancel-delete"
	confirmDeleteID = "confirm-delete"
	submitID        = "submit"
)

var errTermsRequired = errors.New("the terms must be accepted")

// actionDelay simulates the latency of the async demo actions.
var actionDelay = 600 * time.Millisecond

func sleep(ctx context.Context) error {
	select {
	case <-time.After(actionDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func noop(context.Context) error { return nil }

func menuStory(env Env) *Scene {
	s := newScene(env)
	cfg := env.Config

	menu := components.NewMenuBar(
		components.MenuItem{ID: "file", Label: "File", Items: []components.MenuItem{
			{ID: "file.new", Label: "New"},
			{ID: "file.open", Label: "Open…"},
			{ID: "file.export", Label: "Export", Disabled: true},
			{ID: "file.close", Label: "Close window"},
		}},
		components.MenuItem{ID: "edit", Label: "Edit", Items: []components.MenuItem{
			{ID: "edit.undo", Label: "Undo"},
			{ID: "edit.redo", Label: "Redo", Disabled: true},
			{ID: "edit.copy", Label: "Copy"},
			{ID: "edit.paste", Label: "Paste"},
		}},
		components.MenuItem{ID: "share", Label: "Share"},
		components.MenuItem{ID: "archive", Label: "Archive", Disabled: true},
		components.MenuItem{ID: "help", Label: "Help", Items: []components.MenuItem{
			{ID: "help.docs", Label: "Documentation"},
			{ID: "help.shortcuts", Label: "Keyboard shortcuts"},
		}},
	).
		WithOrientation(cfg.MenuOrientation()).
		WithLoop(cfg.MenuLoop()).
		WithKeyMap(env.Keys).
		WithLogger(env.Log).
		WithOnSelect(func(id string) { s.setStatus("selected " + id) })
	s.mount(menu)

	hint := components.MutedText("Arrows move between triggers, Enter or the cross-axis arrow opens a submenu, Escape closes it.")
	s.layout = func(ctx components.RenderContext) string {
		return components.VStack(menu, hint).WithGap(1).ViewWithContext(ctx)
	}
	return s
}

func tabsStory(env Env) *Scene {
	s := newScene(env)
	cfg := env.Config

	panel := func(title, body string) *components.Stack {
		return components.VStack(components.SubtitleText(title), components.NewText(body))
	}
	tabs := components.NewTabs(
		components.Tab{ID: "overview", Label: "Overview", Panel: panel("Overview", "Three services, all healthy.")},
		components.Tab{ID: "activity", Label: "Activity", Panel: panel("Activity", "12 deploys this week.")},
		components.Tab{ID: "billing", Label: "Billing", Disabled: true, Panel: panel("Billing", "Owners only.")},
		components.Tab{ID: "settings", Label: "Settings", Panel: panel("Settings", "Notifications are on.")},
	).
		WithOrientation(cfg.TabsOrientation()).
		WithActivation(cfg.TabsActivation()).
		WithKeyMap(env.Keys).
		WithLogger(env.Log).
		WithOnChange(func(_ int, id string) { s.setStatus("showing " + id) })
	s.mount(tabs)

	hint := components.MutedText(fmt.Sprintf("%s activation: arrows move between tabs, Home and End jump, Billing is disabled.", cfg.TabsActivation()))
	s.layout = func(ctx components.RenderContext) string {
		return components.VStack(tabs, hint).WithGap(1).ViewWithContext(ctx)
	}
	return s
}

func modalStory(env Env) *Scene {
	s := newScene(env)
	cfg := env.Config

	cancel := components.SecondaryButton("Cancel").
		WithID(cancelDeleteID).
		WithKeyMap(env.Keys).
		WithLogger(env.Log).
		WithOnClick(noop)
	confirm := components.DangerButton("Delete").
		WithID(confirmDeleteID).
		WithKeyMap(env.Keys).
		WithLogger(env.Log).
		WithOnClick(sleep)

	modal := components.NewModal("Delete project?").
		WithBody(components.NewText("This removes the project and its history. Tab cycles inside the dialog.")).
		WithControls(cancel, confirm).
		WithCloseOnEscape(cfg.ModalCloseOnEscape()).
		WithCloseOnOverlay(cfg.ModalCloseOnOverlay()).
		WithKeyMap(env.Keys).
		WithLogger(env.Log).
		WithOnClose(func(reason components.CloseReason) { s.setStatus("dialog closed: " + reason.String()) })

	trigger := components.PrimaryButton("Delete project…").
		WithID(openDialogID).
		WithKeyMap(env.Keys).
		WithLogger(env.Log).
		WithOnClick(noop)
	s.mount(modal, trigger)

	s.onMsg = func(msg tea.Msg) tea.Cmd {
		done, ok := msg.(components.ButtonDoneMsg)
		if !ok {
			return nil
		}
		switch done.ButtonID {
		case openDialogID:
			if err := modal.Open(); err != nil {
				s.log.Error(err, "modal open failed")
			}
		case cancelDeleteID:
			modal.Close()
		case confirmDeleteID:
			if done.Err != nil {
				s.setStatus("delete failed: " + done.Err.Error())
				return nil
			}
			modal.Close()
			s.setStatus("project deleted")
		}
		return nil
	}

	hint := components.MutedText("Press Enter on the button to open the dialog.")
	s.layout = func(ctx components.RenderContext) string {
		page := components.VStack(trigger, hint).WithGap(1).ViewWithContext(ctx)
		if !modal.IsOpen() {
			return page
		}
		dialog := lipgloss.PlaceHorizontal(ctx.Width(0, 60), lipgloss.Center, modal.ViewWithContext(ctx))
		return lipgloss.JoinVertical(lipgloss.Left, page, "", dialog)
	}
	return s
}

func formStory(env Env) *Scene {
	s := newScene(env)

	var accepted atomic.Bool
	var terms *components.Checkbox
	terms = components.NewCheckbox("I accept the terms").
		WithID("terms").
		WithChecked(false).
		WithKeyMap(env.Keys).
		WithOnChange(func(checked bool) {
			terms.SetChecked(checked)
			accepted.Store(checked)
		})
	newsletter := components.NewCheckbox("Send me the newsletter").
		WithID("newsletter").
		WithDefaultChecked(true).
		WithKeyMap(env.Keys).
		WithOnChange(func(checked bool) { s.setStatus(fmt.Sprintf("newsletter: %t", checked)) })
	notifications := components.NewCheckbox("All notifications").
		WithID("notifications").
		WithIndeterminate(true).
		WithKeyMap(env.Keys)
	locked := components.NewCheckbox("Two-factor authentication").
		WithID("two-factor").
		WithDefaultChecked(true).
		WithReadOnly(true)

	bio := components.NewTextarea("Bio").
		WithID("bio").
		WithPlaceholder("Tell us about yourself").
		WithMaxLength(140).
		WithSize(40, 3)

	submit := components.PrimaryButton("Submit").
		WithID(submitID).
		WithKeyMap(env.Keys).
		WithLogger(env.Log).
		WithOnClick(func(ctx context.Context) error {
			if !accepted.Load() {
				return errTermsRequired
			}
			return sleep(ctx)
		})
	s.mount(terms, newsletter, notifications, locked, bio, submit)

	s.onMsg = func(msg tea.Msg) tea.Cmd {
		done, ok := msg.(components.ButtonDoneMsg)
		if !ok || done.ButtonID != submitID {
			return nil
		}
		if done.Err != nil {
			s.setStatus("submit failed: " + done.Err.Error())
			return nil
		}
		s.setStatus(fmt.Sprintf("submitted %d characters", len([]rune(bio.Value()))))
		return nil
	}

	hint := components.MutedText("Tab moves between fields, Space toggles checkboxes, Enter submits.")
	s.layout = func(ctx components.RenderContext) string {
		return components.VStack(terms, newsletter, notifications, locked, bio, submit, hint).WithGap(1).ViewWithContext(ctx)
	}
	return s
}

func primitivesStory(env Env) *Scene {
	s := newScene(env)

	page := components.VStack(
		components.TitleText("Typography"),
		components.NewText("Body text for paragraphs."),
		components.NewText("Emphasised text with a custom style.").WithStyle(lipgloss.NewStyle().Bold(true).Italic(true)),
		components.MutedText("Muted text for captions."),
		components.CodeText("trellis render primitives"),
		components.LabeledDivider("Avatars"),
		components.HStack(
			components.NewAvatar("Ada Lovelace").WithSize(components.AvatarSizeSmall),
			components.NewAvatar("grace-hopper"),
			components.NewAvatar("Linus Torvalds").WithSize(components.AvatarSizeLarge),
			components.NewAvatar(""),
		).WithGap(1).WithAlign(components.CrossCenter),
		components.LabeledDivider("Buttons"),
		components.HStack(
			components.PrimaryButton("Primary"),
			components.SecondaryButton("Secondary"),
			components.GhostButton("Ghost"),
			components.DangerButton("Danger"),
			components.NewButton("Disabled").WithDisabled(true),
		).WithGap(1),
		components.DashedDivider(),
	).WithGap(1)

	s.layout = page.ViewWithContext
	return s
}
