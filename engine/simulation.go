package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/gdl-engine/compile"
	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
)

// Simulation is one live, single-threaded world: compiled definitions
// instantiated into entities, advanced tick by tick by an external
// driver. No entity outlives its owning scene's simulation session.
type Simulation struct {
	ID    uuid.UUID
	World *World
	Ctx   *GameContext

	Def     *compile.GameDefinition
	Scene   *compile.SceneDefinition
	Gravity core.Vec2
	Bounds  core.Vec2 // world rect; zero means unbounded

	log     *zap.Logger
	player  core.Entity // cached once per tick, before any behavior runs
	elapsed float64
}

// NewSimulation creates a simulation over a compiled game definition.
// Nil ctx gets null capabilities; nil log disables logging.
func NewSimulation(def *compile.GameDefinition, ctx *GameContext, log *zap.Logger) *Simulation {
	if ctx == nil {
		ctx = NewGameContext()
	}
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	return &Simulation{
		ID:     id,
		World:  NewWorld(),
		Ctx:    ctx,
		Def:    def,
		Bounds: core.Vec2{X: def.Width, Y: def.Height},
		log:    log.With(zap.String("session", id.String())),
	}
}

// LoadScene tears down the current world and instantiates the named
// scene's entities in reference order
func (s *Simulation) LoadScene(name string) error {
	scene := s.Def.Scene(name)
	if scene == nil {
		return fmt.Errorf("engine: scene %q not found", name)
	}

	s.World.Clear()
	s.Scene = scene
	s.Gravity = scene.Gravity

	for _, entName := range scene.Entities {
		def := s.Def.Entity(entName)
		if def == nil {
			s.log.Warn("scene references unknown entity, skipping",
				zap.String("scene", name),
				zap.String("entity", entName))
			continue
		}
		s.SpawnDefinition(def)
	}

	if player, ok := s.World.FindByType("player"); ok {
		s.Ctx.Camera.FollowTarget = player
	}
	s.player = core.InvalidEntity

	s.log.Debug("scene loaded",
		zap.String("scene", name),
		zap.Int("entities", s.World.Count()))
	return nil
}

// LoadStartScene loads the definition's start scene
func (s *Simulation) LoadStartScene() error {
	if s.Def.StartScene == "" {
		return fmt.Errorf("engine: game definition has no scenes")
	}
	return s.LoadScene(s.Def.StartScene)
}

// SpawnDefinition instantiates one entity definition into a live entity:
// component blocks are copied (definitions stay immutable templates) and
// behavior specs are decoded through the registry. Also used by
// behaviors for runtime spawns.
func (s *Simulation) SpawnDefinition(def *compile.EntityDefinition) core.Entity {
	e := s.World.CreateEntity(def.Name, def.Type)

	if def.Transform != nil {
		s.World.Transforms.Set(e, *def.Transform)
	} else {
		s.World.Transforms.Set(e, component.TransformComponent{ScaleX: 1, ScaleY: 1})
	}
	if def.Sprite != nil {
		s.World.Sprites.Set(e, *def.Sprite)
	}
	if def.Physics != nil {
		s.World.Physics.Set(e, *def.Physics)
	}
	if def.Collider != nil {
		s.World.Colliders.Set(e, *def.Collider)
	}

	s.applyInitialState(e, def)

	if len(def.Behaviors) > 0 {
		bc := BehaviorComponent{}
		for _, spec := range def.Behaviors {
			b, err := decodeBehavior(spec.Type, spec.Props)
			if err != nil {
				// A typo in one behavior does not break the entity
				s.log.Warn("skipping behavior",
					zap.String("entity", def.Name),
					zap.String("type", spec.Type),
					zap.Error(err))
				continue
			}
			bc.Behaviors = append(bc.Behaviors, b)
		}
		if len(bc.Behaviors) > 0 {
			s.World.Behaviors.Set(e, bc)
		}
	}

	s.log.Debug("entity spawned",
		zap.String("entity", def.Name),
		zap.Uint64("id", uint64(e)))
	return e
}

// Spawn instantiates a definition by name, for runtime spawns like a
// zone transition placing a sign. Returns false when the name is unknown.
func (s *Simulation) Spawn(name string) (core.Entity, bool) {
	def := s.Def.Entity(name)
	if def == nil {
		return core.InvalidEntity, false
	}
	return s.SpawnDefinition(def), true
}

// applyInitialState interprets the entity's `state` block: stats and
// flags have dedicated homes, players always get stats and an inventory
func (s *Simulation) applyInitialState(e core.Entity, def *compile.EntityDefinition) {
	info := s.World.Info(e)

	health, hasHealth := stateFloat(def.State, "health")
	if hasHealth || def.Type == "player" || def.Type == "enemy" {
		if !hasHealth {
			health = 100
		}
		maxHealth, ok := stateFloat(def.State, "maxHealth")
		if !ok {
			maxHealth = health
		}
		s.World.Stats.Set(e, component.StatsComponent{Health: health, MaxHealth: maxHealth})
	}

	if def.Type == "player" {
		s.World.Inventories.Set(e, component.InventoryComponent{})
	}

	if v, ok := def.State["visible"]; ok {
		if b, ok := v.(bool); ok {
			info.Visible = b
		}
	}
	if v, ok := def.State["active"]; ok {
		if b, ok := v.(bool); ok {
			info.Active = b
		}
	}
}

func stateFloat(state map[string]any, key string) (float64, bool) {
	if state == nil {
		return 0, false
	}
	f, ok := state[key].(float64)
	return f, ok
}

// Advance runs one simulation tick: physics integration for all
// entities, then exactly one behavior pass per entity, both in creation
// order. dt is in seconds.
func (s *Simulation) Advance(dt float64) {
	s.elapsed += dt
	s.Ctx.Now = s.elapsed

	// Prompt is re-asserted by whichever interaction is in range
	s.Ctx.UI.ClearPrompt()

	s.integrate(dt)

	// Cache the player once per tick so every behavior observes the
	// same authoritative player, and linear rescans stay out of the
	// dispatch loop
	s.player, _ = s.World.FindByType("player")

	s.dispatch(dt)
}

// dispatch calls each entity's behaviors in entity creation order.
// Inactive entities still tick their own behaviors (respawn timers run
// while a collectible is inert); behaviors gate their external effects
// on Active themselves.
func (s *Simulation) dispatch(dt float64) {
	// Snapshot: behaviors may spawn entities mid-tick; new entities
	// first tick on the next Advance
	live := s.World.Entities()
	snapshot := make([]core.Entity, len(live))
	copy(snapshot, live)

	for _, e := range snapshot {
		if !s.World.Exists(e) {
			continue
		}
		bc, ok := s.World.Behaviors.Get(e)
		if !ok {
			continue
		}
		for _, b := range bc.Behaviors {
			b.Update(e, dt, s)
		}
	}
}

// Player returns the tick-authoritative player entity: the first
// player-type entity in creation order, cached before behaviors run.
// Multiple player entities are not a supported configuration.
func (s *Simulation) Player() (core.Entity, bool) {
	return s.player, s.player != core.InvalidEntity
}

// Elapsed returns accumulated simulation time in seconds
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Logger exposes the session logger to behavior packages
func (s *Simulation) Logger() *zap.Logger {
	return s.log
}
