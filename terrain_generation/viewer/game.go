package viewer

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"lowpoly_terrain/terrain_generation/config"
	"lowpoly_terrain/terrain_generation/lowpoly"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game hosts one terrain at a time. R regenerates with a new seed, D toggles
// the parameter panel and E toggles triangle edges.
type Game struct {
	cfg    lowpoly.TerrainConfig
	rng    *rand.Rand
	view   *TerrainView
	ui     *DebugUI
	status string
}

// NewGame generates the first terrain. A nil cfg.Seed is replaced by a random
// one so that the seed on screen reproduces the terrain.
func NewGame(cfg lowpoly.TerrainConfig) (*Game, error) {
	g := &Game{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		view: NewTerrainView(config.WindowW, config.WindowH),
	}
	if cfg.Seed == nil {
		seed := g.rng.Int63()
		cfg.Seed = &seed
	}
	if err := g.regenerate(cfg); err != nil {
		return nil, err
	}
	g.ui = NewDebugUI(ParamsFromConfig(cfg), func(p Params) {
		_ = g.regenerate(p.Apply(g.cfg))
	})
	return g, nil
}

// regenerate replaces the terrain. On error the previous terrain stays.
func (g *Game) regenerate(next lowpoly.TerrainConfig) error {
	start := time.Now()
	mesh, err := lowpoly.Generate(next)
	if err != nil {
		log.Printf("regenerate: %v", err)
		g.status = err.Error()
		return err
	}
	g.cfg = next
	g.view.SetMesh(mesh, lowpoly.Domain{Width: next.Width, Height: next.Height})
	g.status = ""
	log.Printf("generated %d triangles (seed %d) in %v", mesh.TriangleCount(), *next.Seed, time.Since(start))
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		next := g.cfg
		seed := g.rng.Int63()
		next.Seed = &seed
		_ = g.regenerate(next)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ui.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.view.ShowEdges = !g.view.ShowEdges
	}
	g.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)

	hud := fmt.Sprintf("R=regenerate  D=panel  E=edges\nseed=%d  triangles=%d  y=[%.2f, %.2f]",
		*g.cfg.Seed, g.view.Mesh.TriangleCount(), g.view.Mesh.MinY, g.view.Mesh.MaxY)

	x, z := g.view.ScreenToWorld(ebiten.CursorPosition())
	if h, ok := g.view.Surface.HeightAt(x, z); ok {
		hud += fmt.Sprintf("\ncursor (%.2f, %.2f) height %.3f", x, z, h)
	}
	if g.status != "" {
		hud += "\n" + g.status
	}

	if g.ui.IsVisible() {
		g.ui.Draw(screen)
		ebitenutil.DebugPrintAt(screen, hud, 0, config.WindowH-64)
		return
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return config.WindowW, config.WindowH
}
