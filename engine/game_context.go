package engine

import (
	"github.com/lixenwraith/gdl-engine/core"
)

// Input answers key-pressed queries. Implemented by the host input layer;
// NullInput and ScriptedInput cover headless and test runs.
type Input interface {
	IsKeyPressed(action string) bool
}

// Audio triggers sound playback by key
type Audio interface {
	PlaySound(key string)
}

// Quest answers quest-completion queries from the host's quest tracker
type Quest interface {
	IsQuestCompleted(id string) bool
}

// NullInput reports no keys pressed
type NullInput struct{}

func (NullInput) IsKeyPressed(string) bool { return false }

// NullAudio drops all sound triggers
type NullAudio struct{}

func (NullAudio) PlaySound(string) {}

// NullQuest reports no quests completed
type NullQuest struct{}

func (NullQuest) IsQuestCompleted(string) bool { return false }

// Dialogue is one spoken line surfaced to the UI layer
type Dialogue struct {
	Speaker string
	Text    string
}

// DamageNumber is a floating combat number at a world position
type DamageNumber struct {
	X, Y   float64
	Amount float64
}

// UIState is the signaling sink behaviors write and the excluded
// render/UI layer reads each frame.
type UIState struct {
	// Interaction prompt, re-asserted by behaviors every tick and
	// cleared by the simulation at tick start
	InteractionPromptVisible bool
	InteractionText          string

	// Dialogue is the most recent line; nil when nothing is shown
	Dialogue *Dialogue

	// Accumulated signals, drained by the consumer
	Notifications []string
	DamageNumbers []DamageNumber
}

// PromptInteraction raises the interaction prompt with the given text
func (u *UIState) PromptInteraction(text string) {
	u.InteractionPromptVisible = true
	u.InteractionText = text
}

// ClearPrompt hides the interaction prompt; called at tick start
func (u *UIState) ClearPrompt() {
	u.InteractionPromptVisible = false
	u.InteractionText = ""
}

// ShowDialogue surfaces a spoken line
func (u *UIState) ShowDialogue(speaker, text string) {
	u.Dialogue = &Dialogue{Speaker: speaker, Text: text}
}

// ShowNotification queues a transient notification
func (u *UIState) ShowNotification(text string) {
	u.Notifications = append(u.Notifications, text)
}

// ShowDamageNumber queues a floating damage number
func (u *UIState) ShowDamageNumber(x, y, amount float64) {
	u.DamageNumbers = append(u.DamageNumbers, DamageNumber{X: x, Y: y, Amount: amount})
}

// DrainNotifications returns and clears queued notifications
func (u *UIState) DrainNotifications() []string {
	out := u.Notifications
	u.Notifications = nil
	return out
}

// DrainDamageNumbers returns and clears queued damage numbers
func (u *UIState) DrainDamageNumbers() []DamageNumber {
	out := u.DamageNumbers
	u.DamageNumbers = nil
	return out
}

// CameraState is the camera signaling sink: shake impulses and the
// follow target, consumed by the host camera
type CameraState struct {
	ShakeX, ShakeY float64
	ShakeDuration  float64
	FollowTarget   core.Entity
}

// Shake requests a camera shake
func (c *CameraState) Shake(x, y, duration float64) {
	c.ShakeX = x
	c.ShakeY = y
	c.ShakeDuration = duration
}

// SceneRequest asks the host to switch scenes, placing the player at the
// given position in the target scene
type SceneRequest struct {
	Scene string
	X, Y  float64
}

// SceneRouter queues at most one pending scene transition
type SceneRouter struct {
	pending *SceneRequest
}

// RequestTransition records a scene switch request; a request already
// pending wins (first transition this tick is authoritative)
func (r *SceneRouter) RequestTransition(scene string, x, y float64) {
	if r.pending != nil {
		return
	}
	r.pending = &SceneRequest{Scene: scene, X: x, Y: y}
}

// TakeRequest returns and clears the pending transition, if any
func (r *SceneRouter) TakeRequest() *SceneRequest {
	req := r.pending
	r.pending = nil
	return req
}

// GameContext is the shared world context passed by reference into every
// behavior call: capability queries in, UI/audio/camera signals out.
// Exactly one GameContext is live per running simulation.
type GameContext struct {
	Input  Input
	UI     *UIState
	Audio  Audio
	Camera *CameraState
	Quest  Quest
	Scene  *SceneRouter

	// Now is accumulated simulation time in seconds, advanced by the
	// driver's deltaTime each tick. Spam windows measure against it.
	Now float64
}

// NewGameContext creates a context with null capabilities and fresh
// signal sinks. Hosts replace Input/Audio/Quest with real providers.
func NewGameContext() *GameContext {
	return &GameContext{
		Input:  NullInput{},
		UI:     &UIState{},
		Audio:  NullAudio{},
		Camera: &CameraState{},
		Quest:  NullQuest{},
		Scene:  &SceneRouter{},
	}
}
