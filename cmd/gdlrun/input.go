package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gdl-engine/config"
	"github.com/lixenwraith/gdl-engine/engine"
)

// keyHoldWindow approximates a held key from terminal repeat events.
// Terminals deliver discrete key presses with auto-repeat, so a key is
// treated as held while repeats keep arriving inside this window.
const keyHoldWindow = 150 * time.Millisecond

// termInput adapts tcell key events to the simulation's action-state
// input model.
type termInput struct {
	mu      sync.Mutex
	pressed map[string]time.Time
	binds   map[rune][]string
}

// A rune may drive several actions at once; the defaults bind w to both
// ActionUp and ActionAccelerate, and the movement behaviors that do not
// read an action simply ignore it.
func newTermInput(keys config.KeyBinds) *termInput {
	binds := make(map[rune][]string)
	bind := func(key string, action string) {
		for _, r := range key {
			binds[r] = append(binds[r], action)
			break
		}
	}
	bind(keys.Up, engine.ActionUp)
	bind(keys.Down, engine.ActionDown)
	bind(keys.Left, engine.ActionLeft)
	bind(keys.Right, engine.ActionRight)
	bind(keys.Jump, engine.ActionJump)
	bind(keys.Interact, engine.ActionInteract)
	bind(keys.Accelerate, engine.ActionAccelerate)
	bind(keys.Brake, engine.ActionBrake)
	return &termInput{
		pressed: make(map[string]time.Time),
		binds:   binds,
	}
}

// Handle records a key event. Arrow keys map to directional actions
// regardless of the configured rune bindings.
func (in *termInput) Handle(ev *tcell.EventKey) {
	var actions []string
	switch ev.Key() {
	case tcell.KeyUp:
		actions = []string{engine.ActionUp}
	case tcell.KeyDown:
		actions = []string{engine.ActionDown}
	case tcell.KeyLeft:
		actions = []string{engine.ActionLeft}
	case tcell.KeyRight:
		actions = []string{engine.ActionRight}
	case tcell.KeyRune:
		actions = in.binds[ev.Rune()]
	}
	if len(actions) == 0 {
		return
	}

	now := time.Now()
	in.mu.Lock()
	for _, action := range actions {
		in.pressed[action] = now
	}
	in.mu.Unlock()
}

func (in *termInput) IsKeyPressed(action string) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	at, ok := in.pressed[action]
	if !ok {
		return false
	}
	if time.Since(at) > keyHoldWindow {
		delete(in.pressed, action)
		return false
	}
	return true
}
