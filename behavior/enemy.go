package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

// Enemy FSM tuning. Timers are reset explicitly on each transition and
// decremented by deltaTime, flooring at zero.
const (
	alertDuration       = 2.0 // first sighting
	reAlertDuration     = 1.0 // re-detection during search
	attackCooldownReset = 1.5
	searchSpeedFactor   = 0.7
	arriveRadius        = 16.0
	defaultPatrolSpan   = 50.0
)

// EnemyState is the FSM state of one enemy instance
type EnemyState string

const (
	EnemyPatrol EnemyState = "patrol"
	EnemyAlert  EnemyState = "alert"
	EnemyCombat EnemyState = "combat"
	EnemySearch EnemyState = "search"
)

func init() {
	registry.RegisterBehavior("enemyAI", func(props map[string]any) (any, error) {
		return NewEnemyAI(props), nil
	})
}

// EnemyAIConfig is the designer configuration of the enemy state machine
type EnemyAIConfig struct {
	Speed          float64
	DetectionRange float64
	AttackRange    float64
	AttackDamage   float64
	PatrolPoints   []core.Vec2
	AttackSound    string
}

type enemyAIState struct {
	initialized    bool
	fsm            EnemyState
	alertTimer     float64
	attackCooldown float64
	lastSeenX      float64
	lastSeenY      float64
	patrolIndex    int
	patrol         []core.Vec2 // resolved patrol route (configured or default)
}

// EnemyAI runs the patrol → alert → combat ⇄ search → patrol state
// machine. All distance comparisons are Euclidean in world units.
type EnemyAI struct {
	Config EnemyAIConfig
	state  enemyAIState
}

func NewEnemyAI(props Props) *EnemyAI {
	return &EnemyAI{
		Config: EnemyAIConfig{
			Speed:          props.Float("speed", 80),
			DetectionRange: props.Float("detectionRange", 150),
			AttackRange:    props.Float("attackRange", 40),
			AttackDamage:   props.Float("attackDamage", 10),
			PatrolPoints:   props.Points("patrolPoints"),
			AttackSound:    props.Str("attackSound", "enemy_attack"),
		},
	}
}

// State exposes the current FSM state for host debug overlays
func (b *EnemyAI) State() EnemyState {
	return b.state.fsm
}

func (b *EnemyAI) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.init(e, sim)
	}
	if !sim.World.Info(e).Active {
		return
	}

	if b.state.attackCooldown > 0 {
		b.state.attackCooldown -= dt
		if b.state.attackCooldown < 0 {
			b.state.attackCooldown = 0
		}
	}

	player, dist, seen := playerDistance(sim, e)

	switch b.state.fsm {
	case EnemyPatrol:
		b.tickPatrol(e, sim, player, dist, seen)
	case EnemyAlert:
		b.tickAlert(e, dt, sim, dist, seen)
	case EnemyCombat:
		b.tickCombat(e, sim, player, dist, seen)
	case EnemySearch:
		b.tickSearch(e, sim, dist, seen)
	}
}

// init resolves the patrol route; the default back-and-forth leg spans
// the compiled spawn position, which is why state waits for first tick
func (b *EnemyAI) init(e core.Entity, sim *engine.Simulation) {
	b.state.initialized = true
	b.state.fsm = EnemyPatrol
	x, y := position(sim, e)
	if len(b.Config.PatrolPoints) > 0 {
		b.state.patrol = b.Config.PatrolPoints
	} else {
		b.state.patrol = []core.Vec2{
			{X: x - defaultPatrolSpan, Y: y},
			{X: x + defaultPatrolSpan, Y: y},
		}
	}
}

func (b *EnemyAI) tickPatrol(e core.Entity, sim *engine.Simulation, player core.Entity, dist float64, seen bool) {
	if seen && dist <= b.Config.DetectionRange {
		b.noticePlayer(sim, player, alertDuration)
		halt(sim, e)
		return
	}

	target := b.state.patrol[b.state.patrolIndex]
	x, y := position(sim, e)
	if core.Dist(x, y, target.X, target.Y) < arriveRadius {
		b.state.patrolIndex = (b.state.patrolIndex + 1) % len(b.state.patrol)
		target = b.state.patrol[b.state.patrolIndex]
	}
	moveToward(sim, e, target.X, target.Y, b.Config.Speed, 0)
}

// tickAlert freezes the entity while it "notices", then commits to
// combat or search when the timer expires
func (b *EnemyAI) tickAlert(e core.Entity, dt float64, sim *engine.Simulation, dist float64, seen bool) {
	halt(sim, e)

	b.state.alertTimer -= dt
	if b.state.alertTimer > 0 {
		return
	}
	b.state.alertTimer = 0

	if seen && dist <= b.Config.AttackRange*2 {
		b.state.fsm = EnemyCombat
	} else {
		b.state.fsm = EnemySearch
	}
}

func (b *EnemyAI) tickCombat(e core.Entity, sim *engine.Simulation, player core.Entity, dist float64, seen bool) {
	if !seen || dist > b.Config.AttackRange*3 {
		b.state.fsm = EnemySearch
		return
	}

	// Player visible: keep the last-seen point current
	px, py := position(sim, player)
	b.state.lastSeenX, b.state.lastSeenY = px, py

	if dist > b.Config.AttackRange {
		moveToward(sim, e, px, py, b.Config.Speed, 0)
		return
	}

	halt(sim, e)
	if b.state.attackCooldown <= 0 {
		b.attack(sim, player, px, py)
		b.state.attackCooldown = attackCooldownReset
	}
}

func (b *EnemyAI) tickSearch(e core.Entity, sim *engine.Simulation, dist float64, seen bool) {
	inRange := seen && dist <= b.Config.DetectionRange
	if inRange {
		// Re-detection re-alerts with the shorter timer
		b.state.fsm = EnemyAlert
		b.state.alertTimer = reAlertDuration
		halt(sim, e)
		return
	}

	x, y := position(sim, e)
	if core.Dist(x, y, b.state.lastSeenX, b.state.lastSeenY) < arriveRadius {
		// Gave up: nothing at the last-seen point
		b.state.fsm = EnemyPatrol
		halt(sim, e)
		return
	}
	moveToward(sim, e, b.state.lastSeenX, b.state.lastSeenY, b.Config.Speed*searchSpeedFactor, 0)
}

func (b *EnemyAI) noticePlayer(sim *engine.Simulation, player core.Entity, timer float64) {
	px, py := position(sim, player)
	b.state.lastSeenX, b.state.lastSeenY = px, py
	b.state.fsm = EnemyAlert
	b.state.alertTimer = timer
}

// attack applies damage to the player and fans the hit out to the UI,
// audio and camera sinks
func (b *EnemyAI) attack(sim *engine.Simulation, player core.Entity, px, py float64) {
	if stats, ok := sim.World.Stats.Ptr(player); ok {
		stats.Damage(b.Config.AttackDamage)
	}
	sim.Ctx.UI.ShowDamageNumber(px, py, b.Config.AttackDamage)
	sim.Ctx.Audio.PlaySound(b.Config.AttackSound)
	sim.Ctx.Camera.Shake(4, 4, 0.3)
}
