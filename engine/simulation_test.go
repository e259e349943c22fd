package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gdl-engine/compile"
	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/registry"
)

// probe records every Update call it receives
type probe struct {
	calls []probeCall
	onRun func(e core.Entity, sim *Simulation)
}

type probeCall struct {
	entity core.Entity
	x, y   float64
}

func (p *probe) Update(e core.Entity, dt float64, sim *Simulation) {
	x, y := 0.0, 0.0
	if tr, ok := sim.World.Transforms.Get(e); ok {
		x, y = tr.X, tr.Y
	}
	p.calls = append(p.calls, probeCall{entity: e, x: x, y: y})
	if p.onRun != nil {
		p.onRun(e, sim)
	}
}

func testDefinition() *compile.GameDefinition {
	return &compile.GameDefinition{
		Title:      "test",
		Width:      800,
		Height:     600,
		StartScene: "main",
		Scenes: []compile.SceneDefinition{
			{
				Name:     "main",
				Gravity:  core.Vec2{Y: 800},
				Entities: []string{"hero", "goblin", "ghost"},
			},
			{Name: "cellar", Entities: []string{"goblin"}},
		},
		Entities: []compile.EntityDefinition{
			{
				Name:      "hero",
				Type:      "player",
				Transform: &component.TransformComponent{X: 100, Y: 100, ScaleX: 1, ScaleY: 1},
			},
			{
				Name:  "goblin",
				Type:  "enemy",
				State: map[string]any{"health": 30.0},
			},
		},
	}
}

func TestLoadScene_SpawnsInReferenceOrder(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	require.NoError(t, sim.LoadStartScene())

	require.Equal(t, 2, sim.World.Count(), "unknown entity references are skipped")
	names := make([]string, 0, 2)
	for _, e := range sim.World.Entities() {
		names = append(names, sim.World.Info(e).Name)
	}
	require.Equal(t, []string{"hero", "goblin"}, names)
	require.Equal(t, core.Vec2{Y: 800}, sim.Gravity)
}

func TestLoadScene_CameraFollowsPlayer(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	require.NoError(t, sim.LoadStartScene())

	hero, ok := sim.World.FindByName("hero")
	require.True(t, ok)
	require.Equal(t, hero, sim.Ctx.Camera.FollowTarget)
}

func TestLoadScene_UnknownScene(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	require.Error(t, sim.LoadScene("attic"))
}

func TestLoadScene_IDsNeverReused(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	require.NoError(t, sim.LoadScene("main"))
	firstMax := sim.World.Entities()[sim.World.Count()-1]

	require.NoError(t, sim.LoadScene("cellar"))
	require.Equal(t, 1, sim.World.Count())
	require.Less(t, firstMax, sim.World.Entities()[0])
}

func TestSpawn_InitialState(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	require.NoError(t, sim.LoadStartScene())

	hero, _ := sim.World.FindByName("hero")
	stats, ok := sim.World.Stats.Get(hero)
	require.True(t, ok, "players always get stats")
	require.Equal(t, 100.0, stats.Health)
	require.True(t, sim.World.Inventories.Has(hero), "players always get an inventory")

	goblin, _ := sim.World.FindByName("goblin")
	gs, _ := sim.World.Stats.Get(goblin)
	require.Equal(t, 30.0, gs.Health)
	require.Equal(t, 30.0, gs.MaxHealth, "maxHealth defaults to health")
	require.False(t, sim.World.Inventories.Has(goblin))
}

func TestSpawn_StateFlags(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	e := sim.SpawnDefinition(&compile.EntityDefinition{
		Name:  "secret",
		Type:  "prop",
		State: map[string]any{"visible": false, "active": false},
	})
	info := sim.World.Info(e)
	require.False(t, info.Visible)
	require.False(t, info.Active)
}

func TestSpawn_UnknownBehaviorSkipped(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	e := sim.SpawnDefinition(&compile.EntityDefinition{
		Name:      "e",
		Type:      "prop",
		Behaviors: []compile.BehaviorSpec{{Type: "noSuchBehavior"}},
	})
	require.True(t, sim.World.Exists(e), "a bad behavior never kills the entity")
	require.False(t, sim.World.Behaviors.Has(e))
}

func TestAdvance_IntegrationBeforeBehaviors(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	p := &probe{}
	e := sim.World.CreateEntity("mover", "prop")
	sim.World.Transforms.Set(e, component.TransformComponent{X: 0})
	sim.World.Physics.Set(e, component.PhysicsComponent{VelX: 100})
	sim.World.Behaviors.Set(e, BehaviorComponent{Behaviors: []Behavior{p}})

	sim.Advance(0.5)

	require.Len(t, p.calls, 1)
	require.InDelta(t, 50.0, p.calls[0].x, 1e-9, "behaviors observe post-integration positions")
}

func TestAdvance_DispatchInCreationOrder(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	p := &probe{}
	var es []core.Entity
	for i := 0; i < 3; i++ {
		e := sim.World.CreateEntity("e", "prop")
		sim.World.Behaviors.Set(e, BehaviorComponent{Behaviors: []Behavior{p}})
		es = append(es, e)
	}

	sim.Advance(0.016)

	require.Len(t, p.calls, 3)
	for i, call := range p.calls {
		require.Equal(t, es[i], call.entity)
	}
}

func TestAdvance_MidTickSpawnTicksNextAdvance(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	spawned := &probe{}

	spawner := &probe{onRun: func(e core.Entity, s *Simulation) {
		if s.World.Count() > 1 {
			return
		}
		child := s.World.CreateEntity("child", "prop")
		s.World.Behaviors.Set(child, BehaviorComponent{Behaviors: []Behavior{spawned}})
	}}
	e := sim.World.CreateEntity("spawner", "prop")
	sim.World.Behaviors.Set(e, BehaviorComponent{Behaviors: []Behavior{spawner}})

	sim.Advance(0.016)
	require.Empty(t, spawned.calls, "entities spawned mid-tick first tick on the next Advance")

	sim.Advance(0.016)
	require.Len(t, spawned.calls, 1)
}

func TestAdvance_InactiveEntitiesStillTick(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	p := &probe{}
	e := sim.World.CreateEntity("pickup", "collectible")
	sim.World.Behaviors.Set(e, BehaviorComponent{Behaviors: []Behavior{p}})
	sim.World.Info(e).Active = false

	sim.Advance(0.016)

	require.Len(t, p.calls, 1, "respawn timers run while an entity is inert")
}

func TestAdvance_ClearsPromptEachTick(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	sim.Ctx.UI.PromptInteraction("Press E")
	sim.Advance(0.016)
	require.False(t, sim.Ctx.UI.InteractionPromptVisible)
}

func TestAdvance_ElapsedAndNow(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	sim.Advance(0.25)
	sim.Advance(0.25)
	require.InDelta(t, 0.5, sim.Elapsed(), 1e-9)
	require.InDelta(t, 0.5, sim.Ctx.Now, 1e-9)
}

func TestSpawn_RuntimeByName(t *testing.T) {
	sim := NewSimulation(testDefinition(), nil, nil)
	e, ok := sim.Spawn("goblin")
	require.True(t, ok)
	require.Equal(t, "enemy", sim.World.Info(e).Type)

	_, ok = sim.Spawn("dragon")
	require.False(t, ok)
}

func TestDecodeBehavior_WrongKindRejected(t *testing.T) {
	registry.RegisterBehavior("notABehavior", func(props map[string]any) (any, error) {
		return 42, nil
	})
	_, err := decodeBehavior("notABehavior", nil)
	require.Error(t, err)
}
