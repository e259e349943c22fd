package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("door", func(props map[string]any) (any, error) {
		return NewDoor(props), nil
	})
}

// DoorConfig is the designer configuration for a door.
// A door is locked while RequiredKey is missing from the player's
// inventory or RequiredQuest is incomplete; both empty means unlocked.
type DoorConfig struct {
	RequiredKey      string
	RequiredQuest    string
	ConsumeKey       bool
	InteractionRange float64
}

type doorState struct {
	initialized bool
	gate        interactGate
	open        bool
	unlocked    bool
}

// Door toggles between solid (closed) and passable (open); opening a
// locked door first requires its key or quest
type Door struct {
	Config DoorConfig
	state  doorState
}

func NewDoor(props Props) *Door {
	return &Door{
		Config: DoorConfig{
			RequiredKey:      props.Str("requiredKey", ""),
			RequiredQuest:    props.Str("requiredQuest", ""),
			ConsumeKey:       props.Bool("consumeKey", false),
			InteractionRange: props.Float("interactionRange", 48),
		},
	}
}

func (b *Door) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.state.initialized = true
		b.state.gate = newInteractGate(0.8)
		b.state.unlocked = b.Config.RequiredKey == "" && b.Config.RequiredQuest == ""
	}
	if !sim.World.Info(e).Active {
		return
	}

	player, dist, ok := playerDistance(sim, e)
	if !ok || dist > b.Config.InteractionRange {
		return
	}

	if b.state.open {
		sim.Ctx.UI.PromptInteraction("Press E to close")
	} else if b.state.unlocked {
		sim.Ctx.UI.PromptInteraction("Press E to open")
	} else {
		sim.Ctx.UI.PromptInteraction("Locked")
	}

	if !sim.Ctx.Input.IsKeyPressed(engine.ActionInteract) {
		return
	}
	if !b.state.gate.allow(sim.Ctx.Now) {
		return
	}

	if !b.state.unlocked && !b.tryUnlock(sim, player) {
		sim.Ctx.UI.ShowNotification("The door is locked")
		sim.Ctx.Audio.PlaySound("door_locked")
		return
	}

	b.state.open = !b.state.open
	// Open doors stop blocking: the collider degrades to a sensor
	if col, ok := sim.World.Colliders.Ptr(e); ok {
		col.IsTrigger = b.state.open
	}
	if spr, ok := sim.World.Sprites.Ptr(e); ok {
		if b.state.open {
			spr.Animation = "open"
		} else {
			spr.Animation = "closed"
		}
	}
	if b.state.open {
		sim.Ctx.Audio.PlaySound("door_open")
	} else {
		sim.Ctx.Audio.PlaySound("door_close")
	}
}

func (b *Door) tryUnlock(sim *engine.Simulation, player core.Entity) bool {
	if b.Config.RequiredQuest != "" && !sim.Ctx.Quest.IsQuestCompleted(b.Config.RequiredQuest) {
		return false
	}
	if b.Config.RequiredKey != "" {
		inv, ok := sim.World.Inventories.Ptr(player)
		if !ok || !inv.Has(b.Config.RequiredKey) {
			return false
		}
		if b.Config.ConsumeKey {
			inv.Remove(b.Config.RequiredKey)
		}
	}
	b.state.unlocked = true
	sim.Ctx.Audio.PlaySound("door_unlock")
	return true
}
