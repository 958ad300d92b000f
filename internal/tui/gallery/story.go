package gallery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/trellis/internal/config"
	"github.com/alexisbeaulieu97/trellis/internal/focus"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

// ErrUnknownStory is returned when a story name does not match any story.
var ErrUnknownStory = errors.New("unknown story")

// Env carries what stories need to build their widgets.
type Env struct {
	Config *config.Config
	Keys   focus.KeyMap
	Log    *logger.Logger
}

// NewEnv derives an Env from cfg. A nil cfg means defaults.
func NewEnv(cfg *config.Config, log *logger.Logger) Env {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return Env{Config: cfg, Keys: cfg.KeyMap(), Log: log}
}

// Story is a named, self-contained demonstration of one or more components.
type Story struct {
	Name        string
	Title       string
	Description string
	build       func(env Env) *Scene
}

// Build mounts a fresh scene for the story.
func (s Story) Build(env Env) *Scene {
	scene := s.build(env)
	scene.Start()
	return scene
}

// Stories returns every story in gallery order.
func Stories() []Story {
	return []Story{
		{Name: "menu", Title: "Menu bar", Description: "Roving focus across triggers with one open submenu.", build: menuStory},
		{Name: "tabs", Title: "Tabs", Description: "Tab list with disabled tabs and configurable activation.", build: tabsStory},
		{Name: "modal", Title: "Modal", Description: "Focus trap with restore on close and dismissal policies.", build: modalStory},
		{Name: "form", Title: "Form controls", Description: "Controlled and uncontrolled checkboxes, a textarea and an async submit.", build: formStory},
		{Name: "primitives", Title: "Primitives", Description: "Text, dividers, stacks, avatars and button variants.", build: primitivesStory},
	}
}

// FindStory looks a story up by name, case-insensitively.
func FindStory(name string) (Story, error) {
	for _, story := range Stories() {
		if strings.EqualFold(story.Name, name) {
			return story, nil
		}
	}
	return Story{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStory, name, strings.Join(StoryNames(), ", "))
}

// StoryNames lists story names in gallery order.
func StoryNames() []string {
	stories := Stories()
	names := make([]string, len(stories))
	for i, story := range stories {
		names[i] = story.Name
	}
	return names
}
