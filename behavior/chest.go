package behavior

import (
	"strings"

	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("chest", func(props map[string]any) (any, error) {
		return NewChest(props), nil
	})
}

// ChestConfig is the designer configuration for a lootable chest
type ChestConfig struct {
	Loot             []string
	InteractionRange float64
}

type chestState struct {
	initialized bool
	gate        interactGate
	opened      bool
}

// Chest opens exactly once, dumping its loot into the player's
// inventory. The opened chest stays in the world inert (Active=false)
// rather than being deleted.
type Chest struct {
	Config ChestConfig
	state  chestState
}

func NewChest(props Props) *Chest {
	return &Chest{
		Config: ChestConfig{
			Loot:             props.Strings("loot"),
			InteractionRange: props.Float("interactionRange", 48),
		},
	}
}

func (b *Chest) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.state.initialized = true
		b.state.gate = newInteractGate(1.0)
	}
	info := sim.World.Info(e)
	if !info.Active || b.state.opened {
		return
	}

	player, dist, ok := playerDistance(sim, e)
	if !ok || dist > b.Config.InteractionRange {
		return
	}

	sim.Ctx.UI.PromptInteraction("Press E to open")

	if !sim.Ctx.Input.IsKeyPressed(engine.ActionInteract) {
		return
	}
	if !b.state.gate.allow(sim.Ctx.Now) {
		return
	}

	b.state.opened = true
	info.Active = false

	if inv, ok := sim.World.Inventories.Ptr(player); ok {
		for _, item := range b.Config.Loot {
			inv.Add(item)
		}
	}
	if spr, ok := sim.World.Sprites.Ptr(e); ok {
		spr.Animation = "open"
	}
	if len(b.Config.Loot) > 0 {
		sim.Ctx.UI.ShowNotification("Found: " + strings.Join(b.Config.Loot, ", "))
	} else {
		sim.Ctx.UI.ShowNotification("The chest is empty")
	}
	sim.Ctx.Audio.PlaySound("chest_open")
}
