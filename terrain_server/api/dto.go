package api

import (
	"lowpoly_terrain/terrain_generation/lowpoly"
	"lowpoly_terrain/terrain_generation/lowpoly/core"
)

// TerrainRequest is the body of POST /v1/terrain. Omitted fields keep the
// generator defaults.
type TerrainRequest struct {
	Width       float64    `json:"width" binding:"required,gt=0,lte=10000"`
	Height      float64    `json:"height" binding:"required,gt=0,lte=10000"`
	MinDistance float64    `json:"min_distance" binding:"required,gt=0"`
	MaxTries    *int       `json:"max_tries" binding:"omitempty,gte=1"`
	Octaves     *int       `json:"octaves" binding:"omitempty,gte=1"`
	Persistence *float64   `json:"persistence" binding:"omitempty,gte=0"`
	Offset      [2]float64 `json:"offset"`
	HeightScale *float64   `json:"height_scale" binding:"omitempty,gt=0"`
	SeaLevel    *float64   `json:"sea_level"`
	Dampening   *float64   `json:"dampening" binding:"omitempty,gte=0,lte=1"`
	RangeScale  *float64   `json:"range_scale"`
	RangeOffset *float64   `json:"range_offset"`
	Seed        *int64     `json:"seed"`
	Noise       string     `json:"noise" binding:"omitempty,oneof=perlin simplex"`
	NoiseSeed   int64      `json:"noise_seed"`

	// Probe asks for the surface height and normal at a centered (x, z).
	Probe []float64 `json:"probe" binding:"omitempty,len=2"`
}

// Config merges the request into lowpoly.DefaultTerrainConfig.
func (r TerrainRequest) Config() lowpoly.TerrainConfig {
	cfg := lowpoly.DefaultTerrainConfig()
	cfg.Width = r.Width
	cfg.Height = r.Height
	cfg.MinDistance = r.MinDistance
	cfg.Offset = core.Vec2{r.Offset[0], r.Offset[1]}
	cfg.Seed = r.Seed
	cfg.NoiseSeed = r.NoiseSeed
	if r.Noise != "" {
		cfg.NoiseKind = lowpoly.NoiseKind(r.Noise)
	}
	if r.MaxTries != nil {
		cfg.MaxTries = *r.MaxTries
	}
	if r.Octaves != nil {
		cfg.Octaves = *r.Octaves
	}
	if r.Persistence != nil {
		cfg.Persistence = *r.Persistence
	}
	if r.HeightScale != nil {
		cfg.HeightScale = *r.HeightScale
	}
	if r.SeaLevel != nil {
		cfg.SeaLevel = *r.SeaLevel
	}
	if r.Dampening != nil {
		cfg.Dampening = *r.Dampening
	}
	if r.RangeScale != nil {
		cfg.RangeScale = *r.RangeScale
	}
	if r.RangeOffset != nil {
		cfg.RangeOffset = *r.RangeOffset
	}
	return cfg
}

type ProbeResult struct {
	X      float64   `json:"x"`
	Z      float64   `json:"z"`
	Inside bool      `json:"inside"`
	Height float64   `json:"height"`
	Normal core.Vec3 `json:"normal"`
}

type TerrainResponse struct {
	ID            string       `json:"id"`
	VertexCount   int          `json:"vertexCount"`
	TriangleCount int          `json:"triangleCount"`
	MinY          float64      `json:"minY"`
	MaxY          float64      `json:"maxY"`
	Positions     []core.Vec3  `json:"positions"`
	Indices       []uint32     `json:"indices"`
	Normals       []core.Vec3  `json:"normals"`
	Colors        []string     `json:"colors"`
	Probe         *ProbeResult `json:"probe,omitempty"`
}

type ErrorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

func newTerrainResponse(id string, m *lowpoly.MeshBuffers) TerrainResponse {
	colors := make([]string, len(m.Colors))
	for i, c := range m.Colors {
		colors[i] = c.Clamped().Hex()
	}
	return TerrainResponse{
		ID:            id,
		VertexCount:   len(m.Positions),
		TriangleCount: m.TriangleCount(),
		MinY:          m.MinY,
		MaxY:          m.MaxY,
		Positions:     m.Positions,
		Indices:       m.Indices,
		Normals:       m.Normals,
		Colors:        colors,
	}
}
