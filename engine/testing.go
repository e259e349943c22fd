package engine

// Test doubles for the game context capabilities.
// Behavior packages and cmd tooling share these, so they live here
// rather than in a _test file.

// ScriptedInput reports exactly the actions in Pressed as held down
type ScriptedInput struct {
	Pressed map[string]bool
}

// NewScriptedInput creates an input scripting the given held actions
func NewScriptedInput(actions ...string) *ScriptedInput {
	in := &ScriptedInput{Pressed: make(map[string]bool)}
	for _, a := range actions {
		in.Pressed[a] = true
	}
	return in
}

func (s *ScriptedInput) IsKeyPressed(action string) bool {
	return s.Pressed[action]
}

// Press marks an action as held
func (s *ScriptedInput) Press(action string) {
	s.Pressed[action] = true
}

// Release marks an action as no longer held
func (s *ScriptedInput) Release(action string) {
	delete(s.Pressed, action)
}

// ReleaseAll clears all held actions
func (s *ScriptedInput) ReleaseAll() {
	s.Pressed = make(map[string]bool)
}

// RecordingAudio captures sound trigger keys in order
type RecordingAudio struct {
	Played []string
}

func (r *RecordingAudio) PlaySound(key string) {
	r.Played = append(r.Played, key)
}

// StaticQuest answers quest queries from a fixed completion set
type StaticQuest struct {
	Completed map[string]bool
}

func (q *StaticQuest) IsQuestCompleted(id string) bool {
	return q.Completed[id]
}
