package behavior

import (
	"fmt"

	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("collectible", func(props map[string]any) (any, error) {
		return NewCollectible(props), nil
	})
}

// CollectibleConfig is the designer configuration for a pickup.
// RespawnTime is in milliseconds; zero means the item never respawns.
type CollectibleConfig struct {
	Item        string
	PickupRange float64
	RespawnTime float64
	Sound       string
}

type collectibleState struct {
	initialized  bool
	respawnTimer float64 // seconds remaining; 0 when not pending
}

// Collectible auto-collects on player proximity: the entity goes
// invisible and inactive (the slot is reused, never deleted) and the
// item lands in the player's inventory. The respawn timer keeps ticking
// while the entity is inactive.
type Collectible struct {
	Config CollectibleConfig
	state  collectibleState
}

func NewCollectible(props Props) *Collectible {
	return &Collectible{
		Config: CollectibleConfig{
			Item:        props.Str("item", "coin"),
			PickupRange: props.Float("pickupRange", 24),
			RespawnTime: props.Float("respawnTime", 0),
			Sound:       props.Str("sound", "pickup"),
		},
	}
}

func (b *Collectible) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.state.initialized = true
	}
	info := sim.World.Info(e)

	if !info.Active {
		if b.state.respawnTimer > 0 {
			b.state.respawnTimer -= dt
			if b.state.respawnTimer <= 0 {
				b.state.respawnTimer = 0
				info.Active = true
				info.Visible = true
			}
		}
		return
	}

	player, dist, ok := playerDistance(sim, e)
	if !ok || dist > b.Config.PickupRange {
		return
	}

	info.Visible = false
	info.Active = false
	if inv, ok := sim.World.Inventories.Ptr(player); ok {
		inv.Add(b.Config.Item)
	}
	sim.Ctx.UI.ShowNotification(fmt.Sprintf("Picked up %s", b.Config.Item))
	sim.Ctx.Audio.PlaySound(b.Config.Sound)

	if b.Config.RespawnTime > 0 {
		b.state.respawnTimer = b.Config.RespawnTime / 1000
	}
}
