package behavior

import (
	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("zoneTransition", func(props map[string]any) (any, error) {
		return NewZoneTransition(props), nil
	})
}

// ZoneTransitionConfig is the designer configuration for a scene exit.
// Auto transitions fire on proximity alone; otherwise the player must
// press interact. SignText spawns a marker sign next to the exit.
type ZoneTransitionConfig struct {
	TargetScene string
	TargetX     float64
	TargetY     float64
	Range       float64
	Auto        bool
	SignText    string
}

type zoneTransitionState struct {
	initialized bool
	gate        interactGate
}

// ZoneTransition teleports the player and requests a scene switch from
// the host through the scene router
type ZoneTransition struct {
	Config ZoneTransitionConfig
	state  zoneTransitionState
}

func NewZoneTransition(props Props) *ZoneTransition {
	return &ZoneTransition{
		Config: ZoneTransitionConfig{
			TargetScene: props.Str("targetScene", ""),
			TargetX:     props.Float("targetX", 0),
			TargetY:     props.Float("targetY", 0),
			Range:       props.Float("range", 32),
			Auto:        props.Bool("auto", true),
			SignText:    props.Str("signText", ""),
		},
	}
}

func (b *ZoneTransition) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.state.initialized = true
		b.state.gate = newInteractGate(1.0)
		if b.Config.SignText != "" {
			b.spawnSign(e, sim)
		}
	}
	if !sim.World.Info(e).Active {
		return
	}

	player, dist, ok := playerDistance(sim, e)
	if !ok || dist > b.Config.Range {
		return
	}

	if !b.Config.Auto {
		sim.Ctx.UI.PromptInteraction("Press E to travel")
		if !sim.Ctx.Input.IsKeyPressed(engine.ActionInteract) {
			return
		}
	}
	if !b.state.gate.allow(sim.Ctx.Now) {
		return
	}

	if tr, ok := sim.World.Transforms.Ptr(player); ok {
		tr.X = b.Config.TargetX
		tr.Y = b.Config.TargetY
	}
	if phys, ok := sim.World.Physics.Ptr(player); ok {
		phys.VelX = 0
		phys.VelY = 0
	}
	if b.Config.TargetScene != "" {
		sim.Ctx.Scene.RequestTransition(b.Config.TargetScene, b.Config.TargetX, b.Config.TargetY)
	}
	sim.Ctx.Audio.PlaySound("zone_transition")
}

// spawnSign places a runtime marker sign beside the exit. Signs built
// here never appear in the compiled scene; they exist only for this
// simulation session.
func (b *ZoneTransition) spawnSign(e core.Entity, sim *engine.Simulation) {
	x, y := position(sim, e)
	sign := sim.World.CreateEntity("zone-sign", "sign")
	sim.World.Transforms.Set(sign, component.TransformComponent{
		X: x, Y: y - 24, ScaleX: 1, ScaleY: 1,
	})
	sim.World.Sprites.Set(sign, component.SpriteComponent{
		Texture: "sign", Width: 16, Height: 16, Color: "#c8a165",
	})
	sim.World.Behaviors.Set(sign, engine.BehaviorComponent{
		Behaviors: []engine.Behavior{NewSign(Props{
			"text":             b.Config.SignText,
			"interactionRange": 40.0,
		})},
	})
}
