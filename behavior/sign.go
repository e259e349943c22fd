package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("sign", func(props map[string]any) (any, error) {
		return NewSign(props), nil
	})
}

// SignConfig is the designer configuration for a readable sign
type SignConfig struct {
	Text             string
	InteractionRange float64
}

type signState struct {
	initialized bool
	gate        interactGate
}

// Sign shows its text as dialogue when read
type Sign struct {
	Config SignConfig
	state  signState
}

func NewSign(props Props) *Sign {
	return &Sign{
		Config: SignConfig{
			Text:             props.Str("text", ""),
			InteractionRange: props.Float("interactionRange", 40),
		},
	}
}

func (b *Sign) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.state.initialized = true
		b.state.gate = newInteractGate(0.5)
	}
	if !sim.World.Info(e).Active {
		return
	}

	_, dist, ok := playerDistance(sim, e)
	if !ok || dist > b.Config.InteractionRange {
		return
	}

	sim.Ctx.UI.PromptInteraction("Press E to read")

	if sim.Ctx.Input.IsKeyPressed(engine.ActionInteract) && b.state.gate.allow(sim.Ctx.Now) {
		sim.Ctx.UI.ShowDialogue("Sign", b.Config.Text)
	}
}
