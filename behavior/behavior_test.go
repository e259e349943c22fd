package behavior

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gdl-engine/compile"
	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
)

// testRig is one simulation wired with scriptable capabilities
type testRig struct {
	sim   *engine.Simulation
	input *engine.ScriptedInput
	audio *engine.RecordingAudio
	quest *engine.StaticQuest
}

func newRig() *testRig {
	ctx := engine.NewGameContext()
	rig := &testRig{
		input: engine.NewScriptedInput(),
		audio: &engine.RecordingAudio{},
		quest: &engine.StaticQuest{Completed: make(map[string]bool)},
	}
	ctx.Input = rig.input
	ctx.Audio = rig.audio
	ctx.Quest = rig.quest

	def := &compile.GameDefinition{Title: "test", Width: 10000, Height: 10000}
	rig.sim = engine.NewSimulation(def, ctx, nil)
	return rig
}

func (r *testRig) addPlayer(x, y float64) core.Entity {
	e := r.sim.World.CreateEntity("hero", "player")
	r.sim.World.Transforms.Set(e, component.TransformComponent{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	r.sim.World.Physics.Set(e, component.PhysicsComponent{})
	r.sim.World.Stats.Set(e, component.StatsComponent{Health: 100, MaxHealth: 100})
	r.sim.World.Inventories.Set(e, component.InventoryComponent{})
	return e
}

func (r *testRig) addBody(name, typ string, x, y float64) core.Entity {
	e := r.sim.World.CreateEntity(name, typ)
	r.sim.World.Transforms.Set(e, component.TransformComponent{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	r.sim.World.Physics.Set(e, component.PhysicsComponent{})
	r.sim.World.Sprites.Set(e, component.SpriteComponent{Width: 16, Height: 16})
	return e
}

func (r *testRig) attach(e core.Entity, b engine.Behavior) {
	r.sim.World.Behaviors.Set(e, engine.BehaviorComponent{Behaviors: []engine.Behavior{b}})
}

func (r *testRig) moveTo(e core.Entity, x, y float64) {
	tr, _ := r.sim.World.Transforms.Ptr(e)
	tr.X, tr.Y = x, y
}

func (r *testRig) vel(e core.Entity) (float64, float64) {
	phys, _ := r.sim.World.Physics.Get(e)
	return phys.VelX, phys.VelY
}

func (r *testRig) tick(n int, dt float64) {
	for i := 0; i < n; i++ {
		r.sim.Advance(dt)
	}
}

func TestInteractGate_FirstUseImmediate(t *testing.T) {
	g := newInteractGate(1.0)
	require.True(t, g.allow(0), "a gate must not swallow the first interaction")
	require.False(t, g.allow(0.5))
	require.False(t, g.allow(0.99))
	require.True(t, g.allow(1.0))
	require.False(t, g.allow(1.5))
	require.True(t, g.allow(2.0))
}

func TestProps_Accessors(t *testing.T) {
	p := Props{
		"speed":  120.0,
		"name":   "grak",
		"flying": true,
		"loot":   []any{"sword", "gold"},
		"nested": []any{[]any{10.0, 20.0}, []any{30.0, 40.0}},
		"flat":   []any{1.0, 2.0, 3.0, 4.0},
	}

	require.Equal(t, 120.0, p.Float("speed", 0))
	require.Equal(t, 7.0, p.Float("missing", 7))
	require.Equal(t, "grak", p.Str("name", ""))
	require.True(t, p.Bool("flying", false))
	require.Equal(t, []string{"sword", "gold"}, p.Strings("loot"))

	require.Equal(t, []core.Vec2{{X: 10, Y: 20}, {X: 30, Y: 40}}, p.Points("nested"))
	require.Equal(t, []core.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}, p.Points("flat"))
}
