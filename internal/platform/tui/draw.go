package tui

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Visual elements
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '━'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
	cloudSprite  = ".-~~-."
	headroom     = 24.0 // World px above the jump peak kept on screen
	minCols      = 20
	minRows      = 6
)

// Scene draws session snapshots into a screen buffer.
// World space is scaled independently on both axes to fill the terminal.
type Scene struct {
	ViewHeight  float64 // World px visible above the bottom edge
	FloorPeriod float64
	SkyPeriod   float64
}

// NewScene sizes the visible world so the highest jump stays on screen.
func NewScene(cfg config.RunnerConfig) Scene {
	peak := 0.0
	if cfg.Physics.Gravity > 0 {
		peak = cfg.Physics.JumpStrength * cfg.Physics.JumpStrength / (2 * cfg.Physics.Gravity)
	}
	return Scene{
		ViewHeight:  cfg.Track.FloorHeight + peak + cfg.Player.Standing.Height + headroom,
		FloorPeriod: cfg.Scroll.FloorPeriod,
		SkyPeriod:   cfg.Scroll.SkyPeriod,
	}
}

// HUD carries host-side information shown next to the snapshot.
type HUD struct {
	Best   int
	Player string
}

// viewport maps world px (y-up) to screen cells (y-down).
type viewport struct {
	top, cols, rows int
	sx, sy          float64
}

func newViewport(top, cols, rows int, worldW, worldH float64) viewport {
	return viewport{
		top:  top,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / worldW,
		sy:   float64(rows) / worldH,
	}
}

// span returns the first cell covering [lo, hi) and the number of cells, at least one.
func span(lo, hi, scale float64) (start, n int) {
	start = int(math.Floor(lo * scale))
	end := int(math.Ceil(hi * scale))
	return start, core.Max(1, end-start)
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

// rect converts a world box to the cells it covers.
func (v viewport) rect(b core.Box) core.Rect {
	x, w := span(b.Left(), b.Right(), v.sx)
	band, h := span(b.Bottom(), b.Top(), v.sy)
	return core.NewRect(x, v.top+v.rows-(band+h), w, h)
}

// groundRow returns the topmost screen row below the floor height.
func (v viewport) groundRow(floor float64) int {
	return v.top + v.rows - int(math.Ceil(floor*v.sy))
}

// Draw renders a snapshot with the HUD on the first row.
func (sc Scene) Draw(dst *core.Screen, snap runner.Snapshot, hud HUD) {
	dst.Clear()

	if dst.Width() < minCols || dst.Height() < minRows {
		dst.DrawText(0, 0, "terminal too small")
		return
	}

	vp := newViewport(1, dst.Width(), dst.Height()-1, snap.TrackWidth, sc.ViewHeight)

	sc.drawSky(dst, vp, snap)
	sc.drawGround(dst, vp, snap)

	for _, ob := range snap.Obstacles {
		color := core.ColorOrange
		if ob.Hit {
			color = core.ColorRed
		}
		dst.DrawRect(vp.rect(core.NewBox(ob.X, ob.Bottom, ob.Width, ob.Height)), ObstacleChar, color)
	}

	drawPlayer(dst, vp, snap.Player)
	drawHUD(dst, snap, hud)

	switch {
	case snap.GameOver():
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Hits: %d  |  Enter to restart, Esc for menu", snap.Score, snap.Hits))
	case snap.Paused():
		drawCenteredMessage(dst, "PAUSED", "Enter to resume  |  Esc for menu")
	}
}

func (sc Scene) drawSky(dst *core.Screen, vp viewport, snap runner.Snapshot) {
	spacing := sc.SkyPeriod / 2
	if spacing <= 0 {
		return
	}
	phase := math.Mod(snap.SkyPhase, spacing)
	for x := -phase; x < snap.TrackWidth; x += spacing {
		// Parity of the absolute cloud index survives the phase wrap.
		idx := int(math.Round((x + snap.SkyPhase) / spacing))
		row := vp.top + 1 + (idx%2)*2
		dst.DrawTextColored(vp.col(x), row, cloudSprite, core.ColorGray)
	}
}

func (sc Scene) drawGround(dst *core.Screen, vp viewport, snap runner.Snapshot) {
	row := vp.groundRow(snap.FloorHeight)
	dst.DrawHLine(0, row, vp.cols, GroundChar, core.ColorDefault)

	spacing := sc.FloorPeriod / 2
	if spacing <= 0 {
		return
	}
	phase := math.Mod(snap.FloorPhase, spacing)
	for x := -phase; x < snap.TrackWidth; x += spacing {
		idx := int(math.Round((x + snap.FloorPhase) / spacing))
		mark := '.'
		if idx%2 != 0 {
			mark = '`'
		}
		dst.SetColored(vp.col(x), row+1+idx%2, mark, core.ColorGray)
	}
}

func drawPlayer(dst *core.Screen, vp viewport, p runner.PlayerView) {
	r := vp.rect(p.Sprite)
	color := core.ColorGreen
	if p.Posture == runner.PostureCrouching {
		color = core.ColorCyan
	}
	dst.DrawRect(r, PlayerChar, color)
	dst.SetColored(r.Right()-1, r.Y, tiltGlyph(p.Tilt), color)
}

// tiltGlyph picks the head glyph from the rotation hint.
func tiltGlyph(tilt float64) rune {
	switch {
	case tilt > 5:
		return '◥'
	case tilt < -5:
		return '◢'
	default:
		return PlayerChar
	}
}

func drawHUD(dst *core.Screen, snap runner.Snapshot, hud HUD) {
	x := 1
	dst.DrawText(x, 0, "HP ")
	x += 3
	for i := 0; i < snap.MaxHP; i++ {
		if i < snap.HP {
			dst.SetColored(x+i, 0, HeartFull, core.ColorRed)
		} else {
			dst.SetColored(x+i, 0, HeartEmpty, core.ColorGray)
		}
	}
	x += snap.MaxHP + 2

	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(x, 0, score, core.ColorYellow)
	x += len(score) + 2

	dst.DrawText(x, 0, fmt.Sprintf("Best: %d", core.Max(hud.Best, snap.Score)))

	right := fmt.Sprintf("%.1fs", snap.RunTime.Seconds())
	if hud.Player != "" {
		right = hud.Player + "  " + right
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorGray)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW := utf8.RuneCountInString(title)
	subW := utf8.RuneCountInString(subtitle)

	boxW := core.Min(core.Max(titleW, subW)+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+core.Max(1, (boxW-subW)/2), boxY+3, subtitle)
}
