package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/johnxnguyen/newton/internal/body"
)

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	if a.mode == modeMenu {
		a.drawMenu()
	} else {
		a.drawScene()
		a.drawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawScene() {
	rl.BeginMode3D(a.camera)

	for _, s := range a.stars {
		rl.DrawPoint3D(s, colTextDim)
	}

	// Central mass.
	rl.DrawSphere(rl.NewVector3(0, 0, 0), 6, colSun)
	rl.DrawCircle3D(rl.NewVector3(0, 0, 0), 9, rl.NewVector3(0, 0, 1), 0, rl.NewColor(255, 240, 200, 60))

	switch a.mode {
	case modeOrbit:
		a.renderOrbit()
	case modeSwarm:
		a.renderSwarm()
	}

	rl.EndMode3D()
}

func (a *App) renderOrbit() {
	if a.showTrails {
		for _, trail := range a.trails {
			for i := 1; i < len(trail); i++ {
				fade := uint8(40 + 120*i/len(trail))
				rl.DrawLine3D(trail[i-1], trail[i], rl.NewColor(180, 180, 180, fade))
			}
		}
	}

	a.field.Each(func(b body.Body) {
		pos := rl.NewVector3(float32(b.Pos.X)*a.scale, float32(b.Pos.Y)*a.scale, 0)
		speed := math.Hypot(b.Vel.X, b.Vel.Y)
		// Faster bodies render brighter.
		val := uint8(math.Min(120+speed*2, 255))
		rl.DrawSphere(pos, 1.6, rl.NewColor(val, val, val, 255))
	})
}

func (a *App) renderSwarm() {
	for i := 0; i < a.swarm.N; i++ {
		x, y := a.swarm.Pos(i)
		rl.DrawPoint3D(rl.NewVector3(x*a.scale, y*a.scale, 0), colAccent)
	}
}

func (a *App) drawHUD() {
	a.drawText("newton", 30, 30, 24, colSelect)

	name := ""
	bodies := 0
	switch a.mode {
	case modeOrbit:
		name = a.cfg.Name
		bodies = a.field.Len()
		a.drawText(fmt.Sprintf(":: %s", name), 140, 34, 16, colText)
		a.drawText(fmt.Sprintf("bodies %d   steps %d   t %.1f", bodies, a.field.Steps(), a.field.Time()), 30, 64, 14, colText)
	case modeSwarm:
		name = a.swarmCfg.Name
		bodies = a.swarm.N
		a.drawText(fmt.Sprintf(":: %s (swarm, %s)", name, a.stepper.Name()), 140, 34, 16, colText)
		a.drawText(fmt.Sprintf("particles %d", bodies), 30, 64, 14, colText)
	}

	a.drawTelemetry()

	status := "RUNNING"
	col := colSelect
	if !a.running {
		status = "PAUSED"
		col = colTextDim
	}
	a.drawText(status, 1150, 30, 16, col)

	a.drawText(fmt.Sprintf("x%d", a.stepsPerTick), 1150, 54, 14, colText)
	if a.sonifier != nil && a.sonifier.Active() {
		a.drawText("SOUND", 1150, 74, 14, colAccent)
	}

	a.drawText("[SPACE] PAUSE  [R] RESET  [T] TRAILS  [+/-] SPEED  [ESC] MENU  [Q] QUIT", 560, 680, 14, colTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, colTextDim)
}

// drawTelemetry plots the energy history as a line strip in the lower
// left corner.
func (a *App) drawTelemetry() {
	if len(a.telemetry) < 2 {
		return
	}

	rectX, rectY := 30, 600
	width, height := 400, 60

	minVal, maxVal := a.telemetry[0], a.telemetry[0]
	for _, v := range a.telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.telemetry))
	for i, val := range a.telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, colAccent)
	a.drawText(fmt.Sprintf("E: %.3e", a.telemetry[len(a.telemetry)-1]), rectX+width+10, rectY+height-10, 14, colText)
}

func (a *App) drawMenu() {
	a.drawText("newton", 50, 50, 40, colSelect)
	a.drawText("Select Preset", 50, 100, 16, colTextDim)

	y := 160
	for i, name := range a.presets {
		if i == a.selected {
			a.drawText(fmt.Sprintf("> %s", name), 50, y, 20, colSelect)
		} else {
			a.drawText(fmt.Sprintf("  %s", name), 50, y, 20, colText)
		}
		y += 28
	}

	if a.err != nil {
		a.drawText(fmt.Sprintf("error: %v", a.err), 50, y+20, 14, rl.Red)
	}

	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 850, 680, 14, colTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
