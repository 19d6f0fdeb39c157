package viewer

import (
	"image/color"
	"math"

	"lowpoly_terrain/terrain_generation/config"
	"lowpoly_terrain/terrain_generation/lowpoly"
	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// maxBatchVertices keeps DrawTriangles indices inside uint16.
const maxBatchVertices = 3 * 20000

// TerrainView draws a mesh top-down: x to the right, z down the screen.
type TerrainView struct {
	Mesh      *lowpoly.MeshBuffers
	Surface   *lowpoly.Surface
	ScreenW   int
	ScreenH   int
	Scale     float64 // pixels per world unit
	ShowEdges bool

	light    core.Vec3
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewTerrainView(screenW, screenH int) *TerrainView {
	return &TerrainView{
		ScreenW: screenW,
		ScreenH: screenH,
		Scale:   config.PixelsPerUnit,
		light:   core.Vec3(config.LightDir).Normalize(),
	}
}

// SetMesh replaces the mesh and fits it to the screen.
func (v *TerrainView) SetMesh(m *lowpoly.MeshBuffers, domain lowpoly.Domain) {
	v.Mesh = m
	v.Surface = lowpoly.NewSurface(m)
	if domain.Width > 0 && domain.Height > 0 {
		v.Scale = math.Min(float64(v.ScreenW)/domain.Width, float64(v.ScreenH)/domain.Height) * 0.9
	}
}

// worldToScreen converts centered world coordinates to screen coordinates.
func (v *TerrainView) worldToScreen(x, z float64) (float32, float32) {
	sx := float64(v.ScreenW)/2 + x*v.Scale
	sz := float64(v.ScreenH)/2 + z*v.Scale
	return float32(sx), float32(sz)
}

// ScreenToWorld is the inverse of worldToScreen.
func (v *TerrainView) ScreenToWorld(sx, sy int) (x, z float64) {
	x = (float64(sx) - float64(v.ScreenW)/2) / v.Scale
	z = (float64(sy) - float64(v.ScreenH)/2) / v.Scale
	return x, z
}

// Shade darkens a face color by a directional light on its normal.
func Shade(c colorful.Color, normal, light core.Vec3) colorful.Color {
	intensity := math.Max(0, normal.Dot(light))
	intensity = 0.3 + 0.7*intensity // Ambient + diffuse
	return colorful.Color{R: c.R * intensity, G: c.G * intensity, B: c.B * intensity}.Clamped()
}

// Draw renders the mesh.
func (v *TerrainView) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if v.Mesh == nil {
		return
	}

	m := v.Mesh
	v.vertices = v.vertices[:0]
	v.indices = v.indices[:0]
	for ti := 0; ti < m.TriangleCount(); ti++ {
		if len(v.vertices)+3 > maxBatchVertices {
			v.flush(screen)
		}
		c := Shade(m.Colors[3*ti], m.Normals[3*ti], v.light)
		for k := 0; k < 3; k++ {
			p := m.Positions[3*ti+k]
			sx, sy := v.worldToScreen(p.X(), p.Z())
			v.indices = append(v.indices, uint16(len(v.vertices)))
			v.vertices = append(v.vertices, ebiten.Vertex{
				DstX:   sx,
				DstY:   sy,
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(c.R),
				ColorG: float32(c.G),
				ColorB: float32(c.B),
				ColorA: 1,
			})
		}
	}
	v.flush(screen)

	if v.ShowEdges {
		for ti := 0; ti < m.TriangleCount(); ti++ {
			a, b, c := m.Face(ti)
			ax, ay := v.worldToScreen(a.X(), a.Z())
			bx, by := v.worldToScreen(b.X(), b.Z())
			cx, cy := v.worldToScreen(c.X(), c.Z())
			vector.StrokeLine(screen, ax, ay, bx, by, 1, config.EdgeColor, false)
			vector.StrokeLine(screen, bx, by, cx, cy, 1, config.EdgeColor, false)
			vector.StrokeLine(screen, cx, cy, ax, ay, 1, config.EdgeColor, false)
		}
	}
}

func (v *TerrainView) flush(screen *ebiten.Image) {
	if len(v.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(v.vertices, v.indices, emptyImage(), op)
	v.vertices = v.vertices[:0]
	v.indices = v.indices[:0]
}

// emptyImage returns a white image for solid color fills.
var emptyImageInstance *ebiten.Image

func emptyImage() *ebiten.Image {
	if emptyImageInstance == nil {
		emptyImageInstance = ebiten.NewImage(3, 3)
		emptyImageInstance.Fill(color.White)
	}
	return emptyImageInstance
}
