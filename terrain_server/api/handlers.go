package api

import (
	"errors"
	"net/http"

	"lowpoly_terrain/terrain_generation/lowpoly"
	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// TerrainHandler serves generated terrain. It keeps no state between
// requests.
type TerrainHandler struct{}

func NewTerrainHandler() *TerrainHandler {
	return &TerrainHandler{}
}

// statusFor maps generator errors to HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrDegenerateInput):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// generate binds the request and runs the generator. It writes the error
// response itself and returns ok=false on failure.
func (h *TerrainHandler) generate(c *gin.Context) (id string, req TerrainRequest, mesh *lowpoly.MeshBuffers, ok bool) {
	id = uuid.New().String()
	c.Header("X-Request-ID", id)

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: err.Error()})
		return id, req, nil, false
	}

	mesh, err := lowpoly.Generate(req.Config())
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{ID: id, Error: err.Error()})
		return id, req, nil, false
	}
	return id, req, mesh, true
}

// Generate handles POST /v1/terrain.
func (h *TerrainHandler) Generate(c *gin.Context) {
	id, req, mesh, ok := h.generate(c)
	if !ok {
		return
	}

	resp := newTerrainResponse(id, mesh)
	if len(req.Probe) == 2 {
		x, z := req.Probe[0], req.Probe[1]
		probe := &ProbeResult{X: x, Z: z}
		surface := lowpoly.NewSurface(mesh)
		if height, inside := surface.HeightAt(x, z); inside {
			probe.Inside = true
			probe.Height = height
			probe.Normal, _ = surface.NormalAt(x, z)
		}
		resp.Probe = probe
	}
	c.JSON(http.StatusOK, resp)
}

// GeoJSON handles POST /v1/terrain/geojson: one polygon per face in the
// (x, z) plane with its color and centroid height.
func (h *TerrainHandler) GeoJSON(c *gin.Context) {
	id, _, mesh, ok := h.generate(c)
	if !ok {
		return
	}

	fc := geojson.NewFeatureCollection()
	for ti := 0; ti < mesh.TriangleCount(); ti++ {
		a, b, cc := mesh.Face(ti)
		// Faces are stored clockwise in (x, z); GeoJSON rings are counter-clockwise.
		ring := orb.Ring{
			{a.X(), a.Z()},
			{cc.X(), cc.Z()},
			{b.X(), b.Z()},
			{a.X(), a.Z()},
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.ID = ti
		f.Properties["color"] = mesh.Colors[3*ti].Clamped().Hex()
		f.Properties["height"] = (a.Y() + b.Y() + cc.Y()) / 3
		fc.Append(f)
	}
	fc.ExtraMembers = geojson.Properties{"id": id}
	c.JSON(http.StatusOK, fc)
}
