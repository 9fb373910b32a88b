package gallery

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-gallery/internal/config"
	"github.com/vovakirdan/tui-gallery/internal/core"
)

// Visual characters for rendering
const (
	EnemyChar        = '●'
	EnemyCoreChar    = '◎'
	CivilianChar     = '▒'
	CivilianCoreChar = 'X'
	ProjectileChar   = '│'
	SightChar        = '+'
	PlayerChar       = '▲'
	BaselineChar     = '═'
	HeartChar        = '♥'
)

// Viewport maps field units onto the character cells inside the field box.
// Row 0 holds the HUD; the box spans the remaining rows.
type Viewport struct {
	X0, Y0 int // Top-left inner cell
	W, H   int // Inner size in cells
	Field  config.GalleryField
}

// NewViewport computes the field area for a screen of the given size.
func NewViewport(screenW, screenH int, field config.GalleryField) Viewport {
	return Viewport{
		X0:    1,
		Y0:    2,
		W:     max(1, screenW-2),
		H:     max(1, screenH-3),
		Field: field,
	}
}

// ToCell converts a field point to the cell that contains it.
func (v Viewport) ToCell(p core.Vec) (int, int) {
	cx := int(p.X / v.Field.Width * float64(v.W))
	cy := int(p.Y / v.Field.Height * float64(v.H))
	return v.X0 + core.Clamp(cx, 0, v.W-1), v.Y0 + core.Clamp(cy, 0, v.H-1)
}

// ToField converts a screen cell to the field point at its center.
func (v Viewport) ToField(cx, cy int) core.Vec {
	x := (float64(cx-v.X0) + 0.5) / float64(v.W) * v.Field.Width
	y := (float64(cy-v.Y0) + 0.5) / float64(v.H) * v.Field.Height
	return core.Vec{
		X: core.ClampF(x, 0, v.Field.Width),
		Y: core.ClampF(y, 0, v.Field.Height),
	}
}

// Viewport returns the field mapping for a screen of the given size.
func (g *Game) Viewport(screenW, screenH int) Viewport {
	return NewViewport(screenW, screenH, g.cfg.Field)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	vp := g.Viewport(dst.Width(), dst.Height())

	g.drawHUD(dst, snap)
	dst.DrawBox(vp.X0-1, vp.Y0-1, vp.W+2, vp.H+2)

	switch snap.Status {
	case StatusIdle:
		drawCenteredMessage(dst, g.Title(),
			"Shoot enemies (◎), spare civilians (X)",
			"Mouse or arrows aim, click or space fires",
			"Press Enter to start")
		return
	case StatusEnded:
		drawCenteredMessage(dst, "MISSION COMPLETE",
			fmt.Sprintf("Final score: %d  (%s)", snap.Score, endReasonText(snap.EndReason)),
			fmt.Sprintf("Shots %d  Enemies %d  Civilians %d  Escaped %d",
				snap.Stats.ShotsFired, snap.Stats.EnemyHits, snap.Stats.CivilianHits, snap.Stats.EnemyEscapes),
			"Press Enter to play again")
		return
	}

	// Player zone divider
	_, baseY := vp.ToCell(core.Vec{Y: g.cfg.Field.SpawnHeight()})
	dst.DrawHLine(vp.X0, baseY, vp.W, BaselineChar, core.ColorBaseline)

	for _, t := range snap.Targets {
		drawTarget(dst, vp, t)
	}

	for _, p := range snap.Projectiles {
		x, y := vp.ToCell(p.Pos())
		dst.SetColor(x, y, ProjectileChar, core.ColorProjectile)
	}

	// Turret sits below the divider, following the sight horizontally
	px, _ := vp.ToCell(core.Vec{X: snap.Aim.X})
	dst.SetColor(px, min(baseY+1, vp.Y0+vp.H-1), PlayerChar, core.ColorPlayer)

	sx, sy := vp.ToCell(snap.Aim)
	dst.SetColor(sx, sy, SightChar, core.ColorSight)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawHUD renders score, time and health on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" SCORE %d   TIME %ds   HEALTH ", snap.Score, int(snap.TimeRemaining.Seconds()))
	dst.DrawTextColor(0, 0, hud, core.ColorHUD)

	hearts := strings.Repeat(string(HeartChar), snap.Health)
	lost := strings.Repeat("·", max(0, snap.MaxHealth-snap.Health))
	dst.DrawTextColor(len(hud), 0, hearts, core.ColorHealth)
	dst.DrawTextColor(len(hud)+snap.Health, 0, lost, core.ColorDim)
}

// drawTarget fills every cell whose center lies inside the target circle.
// The center cell is always drawn so small targets stay visible.
func drawTarget(dst *core.Screen, vp Viewport, t Target) {
	fill, center, color := EnemyChar, EnemyCoreChar, core.ColorEnemy
	if t.Dangerous {
		fill, center, color = CivilianChar, CivilianCoreChar, core.ColorCivilian
	}

	hit := t.Hitbox()
	b := t.Bounds()
	x0, y0 := vp.ToCell(core.Vec{X: b.X, Y: b.Y})
	x1, y1 := vp.ToCell(core.Vec{X: b.Right(), Y: b.Bottom()})

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if hit.Contains(vp.ToField(x, y)) {
				dst.SetColor(x, y, fill, color)
			}
		}
	}

	cx, cy := vp.ToCell(hit.Center)
	dst.SetColor(cx, cy, center, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 3 + 2*len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorHUD)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+2*i, l)
	}
}

func endReasonText(r EndReason) string {
	switch r {
	case EndTime:
		return "time up"
	case EndHealth:
		return "out of health"
	default:
		return string(r)
	}
}
