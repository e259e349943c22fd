package behavior

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

const (
	fleeSpeedFactor  = 1.5
	chaseSpeedFactor = 1.2
	wanderRepickMin  = 2.0
	wanderRepickMax  = 5.0
)

func init() {
	registry.RegisterBehavior("wildCreature", func(props map[string]any) (any, error) {
		return NewWildCreature(props), nil
	})
}

// WildCreatureConfig is the designer configuration for ambient creature
// locomotion
type WildCreatureConfig struct {
	Speed   float64
	Pattern string // wander | patrol | territorial | guard

	WanderRadius    float64
	TerritoryRadius float64
	GuardRadius     float64
	PatrolPoints    []core.Vec2

	Aggressive   bool
	FleeDistance float64
}

type wildCreatureState struct {
	initialized bool
	homeX       float64
	homeY       float64
	targetX     float64
	targetY     float64
	repickTimer float64
	patrolIndex int
}

// WildCreature runs one of four interchangeable locomotion patterns
// around a fixed home point. Flee (non-aggressive, player close) and
// chase (aggressive, player within twice the flee distance) override the
// configured pattern every tick, before the pattern logic runs.
type WildCreature struct {
	Config WildCreatureConfig
	state  wildCreatureState
}

func NewWildCreature(props Props) *WildCreature {
	return &WildCreature{
		Config: WildCreatureConfig{
			Speed:           props.Float("speed", 60),
			Pattern:         props.Str("pattern", "wander"),
			WanderRadius:    props.Float("wanderRadius", 100),
			TerritoryRadius: props.Float("territoryRadius", 150),
			GuardRadius:     props.Float("guardRadius", 40),
			PatrolPoints:    props.Points("patrolPoints"),
			Aggressive:      props.Bool("aggressive", false),
			FleeDistance:    props.Float("fleeDistance", 120),
		},
	}
}

func (b *WildCreature) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		// Home is wherever the creature was compiled to start
		b.state.initialized = true
		b.state.homeX, b.state.homeY = position(sim, e)
		b.state.targetX, b.state.targetY = b.state.homeX, b.state.homeY
	}
	if !sim.World.Info(e).Active {
		return
	}

	// Player reactions override the locomotion pattern
	if player, dist, ok := playerDistance(sim, e); ok {
		if !b.Config.Aggressive && dist <= b.Config.FleeDistance {
			b.flee(e, sim, player)
			return
		}
		if b.Config.Aggressive && dist <= b.Config.FleeDistance*2 {
			px, py := position(sim, player)
			moveToward(sim, e, px, py, b.Config.Speed*chaseSpeedFactor, 0)
			return
		}
	}

	switch b.Config.Pattern {
	case "patrol":
		b.tickPatrol(e, sim)
	case "territorial":
		b.tickTerritorial(e, dt, sim)
	case "guard":
		b.tickGuard(e, sim)
	default: // wander
		b.tickWander(e, dt, sim)
	}
}

func (b *WildCreature) flee(e core.Entity, sim *engine.Simulation, player core.Entity) {
	phys, ok := sim.World.Physics.Ptr(e)
	if !ok {
		return
	}
	x, y := position(sim, e)
	px, py := position(sim, player)
	away := core.Vec2{X: x - px, Y: y - py}.Normalized()
	if away.X == 0 && away.Y == 0 {
		away = core.Vec2{X: 1}
	}
	speed := b.Config.Speed * fleeSpeedFactor
	phys.VelX = away.X * speed
	phys.VelY = away.Y * speed
}

// tickWander re-picks a random target within WanderRadius of home every
// few seconds
func (b *WildCreature) tickWander(e core.Entity, dt float64, sim *engine.Simulation) {
	b.state.repickTimer -= dt
	x, y := position(sim, e)
	arrived := core.Dist(x, y, b.state.targetX, b.state.targetY) < arriveRadius
	if b.state.repickTimer <= 0 || arrived {
		b.pickWanderTarget()
	}
	moveToward(sim, e, b.state.targetX, b.state.targetY, b.Config.Speed, arriveRadius)
}

func (b *WildCreature) pickWanderTarget() {
	angle := rand.Float64() * 2 * math.Pi
	radius := rand.Float64() * b.Config.WanderRadius
	b.state.targetX = b.state.homeX + math.Cos(angle)*radius
	b.state.targetY = b.state.homeY + math.Sin(angle)*radius
	b.state.repickTimer = wanderRepickMin + rand.Float64()*(wanderRepickMax-wanderRepickMin)
}

func (b *WildCreature) tickPatrol(e core.Entity, sim *engine.Simulation) {
	if len(b.Config.PatrolPoints) == 0 {
		halt(sim, e)
		return
	}
	target := b.Config.PatrolPoints[b.state.patrolIndex]
	x, y := position(sim, e)
	if core.Dist(x, y, target.X, target.Y) < arriveRadius {
		b.state.patrolIndex = (b.state.patrolIndex + 1) % len(b.Config.PatrolPoints)
		target = b.Config.PatrolPoints[b.state.patrolIndex]
	}
	moveToward(sim, e, target.X, target.Y, b.Config.Speed, 0)
}

// tickTerritorial wanders, but straying outside the territory radius
// sends the creature straight back to its center
func (b *WildCreature) tickTerritorial(e core.Entity, dt float64, sim *engine.Simulation) {
	x, y := position(sim, e)
	if core.Dist(x, y, b.state.homeX, b.state.homeY) > b.Config.TerritoryRadius {
		moveToward(sim, e, b.state.homeX, b.state.homeY, b.Config.Speed, arriveRadius)
		return
	}
	b.tickWander(e, dt, sim)
}

// tickGuard holds near the post, moving only when displaced beyond the
// guard radius
func (b *WildCreature) tickGuard(e core.Entity, sim *engine.Simulation) {
	x, y := position(sim, e)
	if core.Dist(x, y, b.state.homeX, b.state.homeY) > b.Config.GuardRadius {
		moveToward(sim, e, b.state.homeX, b.state.homeY, b.Config.Speed, 2)
		return
	}
	halt(sim, e)
}
