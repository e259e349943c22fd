package engine

import (
	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
)

// groundTolerance is how far (world units) below an entity's bottom edge
// the integrator probes for standable ground
const groundTolerance = 2.0

// integrate advances every dynamic physics body by one tick, in entity
// creation order. Runs to completion before any behavior handler, so
// behaviors always observe post-integration positions.
func (s *Simulation) integrate(dt float64) {
	for _, e := range s.World.Entities() {
		info := s.World.Info(e)
		if !info.Active {
			continue
		}
		phys, ok := s.World.Physics.Ptr(e)
		if !ok || phys.Static {
			// Static bodies never have position or velocity written
			continue
		}
		tr, ok := s.World.Transforms.Ptr(e)
		if !ok {
			continue
		}

		phys.VelX += s.Gravity.X * phys.GravityScale * dt
		phys.VelY += s.Gravity.Y * phys.GravityScale * dt

		if phys.Drag > 0 {
			decay := 1 - phys.Drag*dt
			if decay < 0 {
				decay = 0
			}
			phys.VelX *= decay
			phys.VelY *= decay
		}

		core.CapSpeed(&phys.VelX, &phys.VelY, phys.MaxSpeed)

		tr.X += phys.VelX * dt
		tr.Y += phys.VelY * dt

		// World bounds clamp position, not velocity
		if phys.CollideWorldBounds && s.Bounds.X > 0 && s.Bounds.Y > 0 {
			tr.X = core.Clamp(tr.X, 0, s.Bounds.X)
			tr.Y = core.Clamp(tr.Y, 0, s.Bounds.Y)
		}

		s.resolveGround(e, tr, phys)
	}
}

// resolveGround performs the downward collider check against
// static/platform bodies: snaps a falling entity onto a surface it has
// just penetrated and flags ground contact for jump-capable entities
func (s *Simulation) resolveGround(e core.Entity, tr *component.TransformComponent, phys *component.PhysicsComponent) {
	halfW, halfH := s.colliderExtents(e)
	bottom := tr.Y + halfH
	phys.OnGround = false

	for _, other := range s.World.Entities() {
		if other == e {
			continue
		}
		oInfo := s.World.Info(other)
		if !oInfo.Active {
			continue
		}
		oPhys, hasPhys := s.World.Physics.Get(other)
		isPlatform := oInfo.Type == "platform" || (hasPhys && oPhys.Static)
		if !isPlatform {
			continue
		}
		if col, ok := s.World.Colliders.Get(other); ok && col.IsTrigger {
			continue
		}
		oTr, ok := s.World.Transforms.Get(other)
		if !ok {
			continue
		}
		oHalfW, oHalfH := s.colliderExtents(other)

		if tr.X+halfW <= oTr.X-oHalfW || tr.X-halfW >= oTr.X+oHalfW {
			continue
		}
		top := oTr.Y - oHalfH

		// Falling into the surface this tick: land on it
		if phys.VelY > 0 && bottom >= top && bottom <= top+oHalfH {
			tr.Y = top - halfH
			phys.VelY = 0
			phys.OnGround = true
			return
		}
		// Resting within tolerance of the surface
		if bottom >= top-groundTolerance && bottom <= top+groundTolerance {
			phys.OnGround = true
			return
		}
	}
}

// colliderExtents returns the half extents of an entity's collision
// footprint, falling back to the sprite and then to a nominal tile
func (s *Simulation) colliderExtents(e core.Entity) (halfW, halfH float64) {
	if col, ok := s.World.Colliders.Get(e); ok {
		switch col.Shape {
		case component.ShapeCircle:
			if col.Radius > 0 {
				return col.Radius, col.Radius
			}
		default:
			if col.Width > 0 && col.Height > 0 {
				return col.Width / 2, col.Height / 2
			}
		}
	}
	if spr, ok := s.World.Sprites.Get(e); ok && spr.Width > 0 {
		return spr.Width / 2, spr.Height / 2
	}
	return 16, 16
}
