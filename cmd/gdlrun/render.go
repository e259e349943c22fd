package main

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gdl-engine/engine"
)

const uiRows = 4

// renderer projects the simulation's pixel-space world onto terminal
// cells. Each entity draws as one rune; the bottom rows carry the UI
// channel output.
type renderer struct {
	screen tcell.Screen

	worldW, worldH float64
	shakeLeft      float64

	notices []notice
}

type notice struct {
	text string
	ttl  float64
}

func newRenderer(screen tcell.Screen, worldW, worldH float64) *renderer {
	return &renderer{screen: screen, worldW: worldW, worldH: worldH}
}

func (r *renderer) Draw(sim *engine.Simulation, dt float64) {
	r.screen.Clear()

	w, h := r.screen.Size()
	viewH := h - uiRows
	if viewH < 1 {
		viewH = 1
	}

	offX, offY := r.shakeOffset(sim, dt)

	for _, e := range sim.World.Entities() {
		info := sim.World.Info(e)
		if !info.Visible {
			continue
		}
		tr, ok := sim.World.Transforms.Get(e)
		if !ok {
			continue
		}

		cx := int((tr.X+offX)/r.worldW*float64(w)) % w
		cy := int((tr.Y+offY)/r.worldH*float64(viewH)) % viewH
		if cx < 0 || cy < 0 {
			continue
		}

		style := tcell.StyleDefault
		glyph := glyphFor(info.Type)
		if sp, ok := sim.World.Sprites.Get(e); ok {
			if sp.Color != "" {
				style = style.Foreground(tcell.GetColor(sp.Color))
			}
			if sp.Texture != "" {
				glyph = rune(sp.Texture[0])
			}
		}
		r.screen.SetContent(cx, cy, glyph, nil, style)
	}

	r.drawUI(sim, dt, w, h)
	r.screen.Show()
}

// shakeOffset consumes pending camera shake, returning a random pixel
// offset while the shake timer runs.
func (r *renderer) shakeOffset(sim *engine.Simulation, dt float64) (float64, float64) {
	cam := sim.Ctx.Camera
	if cam.ShakeDuration > 0 {
		r.shakeLeft = cam.ShakeDuration
		cam.ShakeDuration = 0
	}
	if r.shakeLeft <= 0 {
		return 0, 0
	}
	r.shakeLeft -= dt
	return (rand.Float64()*2 - 1) * cam.ShakeX, (rand.Float64()*2 - 1) * cam.ShakeY
}

func (r *renderer) drawUI(sim *engine.Simulation, dt float64, w, h int) {
	ui := sim.Ctx.UI

	for _, text := range ui.DrainNotifications() {
		r.notices = append(r.notices, notice{text: text, ttl: 3})
	}
	live := r.notices[:0]
	for _, n := range r.notices {
		n.ttl -= dt
		if n.ttl > 0 {
			live = append(live, n)
		}
	}
	r.notices = live

	row := h - uiRows
	r.hline(row, w)
	row++

	if ui.InteractionPromptVisible {
		r.text(0, row, ui.InteractionText, tcell.StyleDefault.Bold(true))
	} else if d := ui.Dialogue; d != nil {
		r.text(0, row, fmt.Sprintf("%s: %s", d.Speaker, d.Text), tcell.StyleDefault)
	}
	row++

	for i := len(r.notices) - 1; i >= 0 && row < h; i-- {
		r.text(0, row, r.notices[i].text, tcell.StyleDefault.Dim(true))
		row++
	}

	for _, dn := range ui.DrainDamageNumbers() {
		cx := int(dn.X / r.worldW * float64(w))
		cy := int(dn.Y / r.worldH * float64(h-uiRows))
		r.text(cx, cy, fmt.Sprintf("-%.0f", dn.Amount), tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
}

func (r *renderer) hline(y, w int) {
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, tcell.RuneHLine, nil, tcell.StyleDefault)
	}
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for _, c := range s {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}

func glyphFor(typ string) rune {
	switch typ {
	case "player":
		return '@'
	case "enemy":
		return 'x'
	case "npc":
		return 'n'
	default:
		return '#'
	}
}
