package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("npcDialogue", func(props map[string]any) (any, error) {
		return NewNPCDialogue(props), nil
	})
}

// NPCDialogueConfig is the designer configuration for a talking NPC.
// QuestDialogue replaces Dialogue once QuestID reports completed.
type NPCDialogueConfig struct {
	Name             string
	Dialogue         []string
	QuestID          string
	QuestDialogue    []string
	InteractionRange float64
}

type npcDialogueState struct {
	initialized bool
	gate        interactGate
	lineIndex   int
}

// NPCDialogue shows an interaction prompt near the player and cycles
// through dialogue lines on the interact action
type NPCDialogue struct {
	Config NPCDialogueConfig
	state  npcDialogueState
}

func NewNPCDialogue(props Props) *NPCDialogue {
	return &NPCDialogue{
		Config: NPCDialogueConfig{
			Name:             props.Str("name", "NPC"),
			Dialogue:         props.Strings("dialogue"),
			QuestID:          props.Str("questId", ""),
			QuestDialogue:    props.Strings("questDialogue"),
			InteractionRange: props.Float("interactionRange", 50),
		},
	}
}

func (b *NPCDialogue) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.state.initialized = true
		b.state.gate = newInteractGate(1.0)
	}
	info := sim.World.Info(e)
	if !info.Active {
		return
	}

	_, dist, ok := playerDistance(sim, e)
	if !ok || dist > b.Config.InteractionRange {
		return
	}

	sim.Ctx.UI.PromptInteraction("Press E to talk")

	if !sim.Ctx.Input.IsKeyPressed(engine.ActionInteract) {
		return
	}
	if !b.state.gate.allow(sim.Ctx.Now) {
		return
	}

	lines := b.Config.Dialogue
	if b.Config.QuestID != "" && len(b.Config.QuestDialogue) > 0 &&
		sim.Ctx.Quest.IsQuestCompleted(b.Config.QuestID) {
		lines = b.Config.QuestDialogue
	}
	if len(lines) == 0 {
		return
	}

	sim.Ctx.UI.ShowDialogue(b.Config.Name, lines[b.state.lineIndex%len(lines)])
	b.state.lineIndex++
	sim.Ctx.Audio.PlaySound("dialogue")
}
