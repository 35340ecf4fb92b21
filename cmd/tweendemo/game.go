package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/ecs/entity"
	"github.com/milk9111/tween/ecs/system"
	"github.com/milk9111/tween/prefabs"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 800
	screenHeight = 480

	graphX      = 600
	graphY      = 300
	graphSize   = 160
	graphSample = 64
)

type Game struct {
	lib     *prefabs.Library
	world   *ecs.World
	tweens  *system.TweenSystem
	watcher *prefabs.Watcher
	pixel   *ebiten.Image

	curveIndex int
	frames     int
}

func NewGame(watch bool) (*Game, error) {
	lib, err := prefabs.LoadLibrary()
	if err != nil {
		return nil, err
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	g := &Game{lib: lib, pixel: pixel}
	if err := g.reset(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.WatchDir()
		if err != nil {
			log.Printf("tweendemo: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) reset() error {
	scene, err := prefabs.LoadScene()
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	tweens := system.NewTweenSystem()
	tweens.SetTPS(ebiten.TPS())
	if g.tweens != nil {
		tweens.SetPaused(g.tweens.Paused())
	}
	world.AddSystem(tweens)
	world.AddSystem(system.NewYoyoSystem(g.lib))

	if _, err := entity.BuildScene(world, g.lib, scene); err != nil {
		return err
	}
	g.world = world
	g.tweens = tweens
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.tweens.SetPaused(!g.tweens.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			log.Printf("tweendemo: reset: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.curveIndex++
	}

	g.world.Update()
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("tweendemo: watcher: %v", err)
		}
	default:
	}

	changed := g.watcher.Changed()
	if len(changed) == 0 {
		return
	}
	log.Printf("tweendemo: reloading after change to %s", strings.Join(changed, ", "))
	if err := g.lib.Reload(); err != nil {
		log.Printf("tweendemo: reload: %v", err)
		return
	}
	if err := g.reset(); err != nil {
		log.Printf("tweendemo: rebuild scene: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	for _, e := range g.world.Query(component.TransformComponent.Kind(), component.ShapeComponent.Kind()) {
		tr, _ := ecs.Get(g.world, e, component.TransformComponent)
		shape, _ := ecs.Get(g.world, e, component.ShapeComponent)
		tint := component.Tint{R: 1, G: 1, B: 1, A: 1}
		if t, ok := ecs.Get(g.world, e, component.TintComponent); ok {
			tint = t
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(shape.Size*tr.ScaleX, shape.Size*tr.ScaleY)
		op.GeoM.Rotate(tr.Rotation)
		op.GeoM.Translate(tr.X, tr.Y)
		op.ColorScale.ScaleWithColor(tint.NRGBA())
		screen.DrawImage(g.pixel, op)
	}

	g.drawCurve(screen)

	state := "running"
	if g.tweens.Paused() {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f    %s\n[space] pause  [r] reset  [tab] next curve",
		g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), state))
}

// drawCurve plots the selected library curve over t in [0, 1]. Overshoot
// leaves the box.
func (g *Game) drawCurve(screen *ebiten.Image) {
	names := g.lib.CurveNames()
	if len(names) == 0 {
		return
	}
	name := names[g.curveIndex%len(names)]
	curve, err := g.lib.Curve(name)
	if err != nil {
		return
	}

	vector.StrokeRect(screen, graphX, graphY, graphSize, graphSize, 1, colornames.Slategray, false)
	px, py := float32(graphX), float32(graphY+graphSize)-float32(curve.Evaluate(0))*graphSize
	for i := 1; i <= graphSample; i++ {
		t := float64(i) / graphSample
		x := float32(graphX) + float32(t)*graphSize
		y := float32(graphY+graphSize) - float32(curve.Evaluate(t))*graphSize
		vector.StrokeLine(screen, px, py, x, y, 2, colornames.Gold, true)
		px, py = x, y
	}
	ebitenutil.DebugPrintAt(screen, name, graphX, graphY-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
