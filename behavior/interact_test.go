package behavior

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/engine"
)

func TestNPCDialogue_CyclesLines(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	npc := rig.addBody("elder", "npc", 110, 100)
	rig.attach(npc, NewNPCDialogue(Props{
		"name":     "Elder",
		"dialogue": []any{"Welcome.", "Beware the cave."},
	}))

	// In range without pressing: prompt only
	rig.tick(1, 0.016)
	require.True(t, rig.sim.Ctx.UI.InteractionPromptVisible)
	require.Equal(t, "Press E to talk", rig.sim.Ctx.UI.InteractionText)
	require.Nil(t, rig.sim.Ctx.UI.Dialogue)

	// Interact: first line
	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	require.Equal(t, "Elder", rig.sim.Ctx.UI.Dialogue.Speaker)
	require.Equal(t, "Welcome.", rig.sim.Ctx.UI.Dialogue.Text)
	require.Contains(t, rig.audio.Played, "dialogue")

	// Wait out the window, interact again: second line, then wrap
	rig.tick(70, 0.016)
	require.Equal(t, "Beware the cave.", rig.sim.Ctx.UI.Dialogue.Text)
	rig.tick(70, 0.016)
	require.Equal(t, "Welcome.", rig.sim.Ctx.UI.Dialogue.Text)
}

func TestNPCDialogue_SpamWindow(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	npc := rig.addBody("elder", "npc", 110, 100)
	rig.attach(npc, NewNPCDialogue(Props{"dialogue": []any{"Hello."}}))

	// Interact held for three simulated seconds
	rig.input.Press(engine.ActionInteract)
	rig.tick(30, 0.1)

	fires := 0
	for _, key := range rig.audio.Played {
		if key == "dialogue" {
			fires++
		}
	}
	require.Equal(t, 3, fires, "one interaction per one-second window")
}

func TestNPCDialogue_QuestGated(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	npc := rig.addBody("elder", "npc", 110, 100)
	rig.attach(npc, NewNPCDialogue(Props{
		"dialogue":      []any{"Find my ring."},
		"questId":       "lost_ring",
		"questDialogue": []any{"You found it!"},
	}))

	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	require.Equal(t, "Find my ring.", rig.sim.Ctx.UI.Dialogue.Text)

	rig.quest.Completed["lost_ring"] = true
	rig.tick(70, 0.016)
	require.Equal(t, "You found it!", rig.sim.Ctx.UI.Dialogue.Text)
}

func TestNPCDialogue_OutOfRange(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	npc := rig.addBody("elder", "npc", 500, 100)
	rig.attach(npc, NewNPCDialogue(Props{"dialogue": []any{"Hello."}}))

	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	require.False(t, rig.sim.Ctx.UI.InteractionPromptVisible)
	require.Nil(t, rig.sim.Ctx.UI.Dialogue)
}

func TestSign_Read(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	sign := rig.addBody("sign", "sign", 120, 100)
	rig.attach(sign, NewSign(Props{"text": "Town square"}))

	rig.tick(1, 0.016)
	require.Equal(t, "Press E to read", rig.sim.Ctx.UI.InteractionText)

	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	require.Equal(t, "Sign", rig.sim.Ctx.UI.Dialogue.Speaker)
	require.Equal(t, "Town square", rig.sim.Ctx.UI.Dialogue.Text)
}

func TestCollectible_PickupAndRespawn(t *testing.T) {
	rig := newRig()
	player := rig.addPlayer(100, 100)
	coin := rig.addBody("coin", "collectible", 110, 100)
	rig.attach(coin, NewCollectible(Props{
		"item":        "coin",
		"respawnTime": 5000.0,
	}))

	rig.tick(1, 0.016)

	info := rig.sim.World.Info(coin)
	require.False(t, info.Active)
	require.False(t, info.Visible)
	inv, _ := rig.sim.World.Inventories.Get(player)
	require.True(t, inv.Has("coin"))
	require.Contains(t, rig.audio.Played, "pickup")
	require.Contains(t, rig.sim.Ctx.UI.DrainNotifications(), "Picked up coin")

	// The respawn countdown runs while the entity is inert
	rig.tick(4, 1.0)
	require.False(t, info.Active, "not yet: five seconds configured")
	rig.tick(1, 1.0)
	require.True(t, info.Active)
	require.True(t, info.Visible)

	// Player still standing there: immediately collected again
	rig.tick(1, 0.016)
	require.False(t, info.Active)
	inv, _ = rig.sim.World.Inventories.Get(player)
	require.Equal(t, []string{"coin", "coin"}, inv.Items)
}

func TestCollectible_NoRespawnByDefault(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	coin := rig.addBody("gem", "collectible", 110, 100)
	rig.attach(coin, NewCollectible(Props{"item": "gem"}))

	rig.tick(1, 0.016)
	rig.tick(100, 1.0)
	require.False(t, rig.sim.World.Info(coin).Active)
}

func TestChest_OpensOnce(t *testing.T) {
	rig := newRig()
	player := rig.addPlayer(100, 100)
	chest := rig.addBody("chest", "chest", 130, 100)
	rig.attach(chest, NewChest(Props{"loot": []any{"sword", "gold"}}))

	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)

	inv, _ := rig.sim.World.Inventories.Get(player)
	require.Equal(t, []string{"sword", "gold"}, inv.Items)
	require.Contains(t, rig.sim.Ctx.UI.DrainNotifications(), "Found: sword, gold")
	require.Contains(t, rig.audio.Played, "chest_open")
	require.False(t, rig.sim.World.Info(chest).Active, "an opened chest stays in the world, inert")

	spr, _ := rig.sim.World.Sprites.Get(chest)
	require.Equal(t, "open", spr.Animation)

	// Holding interact over the open chest yields nothing more
	rig.tick(120, 0.016)
	inv, _ = rig.sim.World.Inventories.Get(player)
	require.Len(t, inv.Items, 2)
}

func TestDoor_UnlockedToggle(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	door := rig.addBody("door", "door", 130, 100)
	rig.attach(door, NewDoor(Props{}))

	rig.tick(1, 0.016)
	require.Equal(t, "Press E to open", rig.sim.Ctx.UI.InteractionText)

	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	require.Contains(t, rig.audio.Played, "door_open")
	spr, _ := rig.sim.World.Sprites.Get(door)
	require.Equal(t, "open", spr.Animation)

	// Close it again after the window
	rig.tick(60, 0.016)
	require.Contains(t, rig.audio.Played, "door_close")
	spr, _ = rig.sim.World.Sprites.Get(door)
	require.Equal(t, "closed", spr.Animation)
}

func TestDoor_KeyLock(t *testing.T) {
	rig := newRig()
	player := rig.addPlayer(100, 100)
	door := rig.addBody("door", "door", 130, 100)
	rig.attach(door, NewDoor(Props{
		"requiredKey": "rusty_key",
		"consumeKey":  true,
	}))

	rig.tick(1, 0.016)
	require.Equal(t, "Locked", rig.sim.Ctx.UI.InteractionText)

	// Without the key: refused
	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	require.Contains(t, rig.sim.Ctx.UI.DrainNotifications(), "The door is locked")
	require.Contains(t, rig.audio.Played, "door_locked")

	// With the key: unlocks, opens, consumes
	inv, _ := rig.sim.World.Inventories.Ptr(player)
	inv.Add("rusty_key")
	rig.tick(60, 0.016)

	require.Contains(t, rig.audio.Played, "door_unlock")
	require.Contains(t, rig.audio.Played, "door_open")
	inv, _ = rig.sim.World.Inventories.Ptr(player)
	require.False(t, inv.Has("rusty_key"))
}

func TestDoor_QuestLock(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	door := rig.addBody("door", "door", 130, 100)
	rig.attach(door, NewDoor(Props{"requiredQuest": "clear_mine"}))

	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	require.Contains(t, rig.audio.Played, "door_locked")

	rig.quest.Completed["clear_mine"] = true
	rig.tick(60, 0.016)
	require.Contains(t, rig.audio.Played, "door_open")
}

func TestDoor_OpenColliderBecomesTrigger(t *testing.T) {
	rig := newRig()
	rig.addPlayer(100, 100)
	door := rig.addBody("door", "door", 130, 100)
	rig.sim.World.Colliders.Set(door, component.ColliderComponent{
		Shape: component.ShapeRectangle, Width: 16, Height: 32,
	})
	rig.attach(door, NewDoor(Props{}))

	rig.input.Press(engine.ActionInteract)
	rig.tick(1, 0.016)
	col, _ := rig.sim.World.Colliders.Get(door)
	require.True(t, col.IsTrigger, "an open door stops blocking")

	rig.tick(60, 0.016)
	col, _ = rig.sim.World.Colliders.Get(door)
	require.False(t, col.IsTrigger)
}
