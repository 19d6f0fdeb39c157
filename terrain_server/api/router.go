package api

import "github.com/gin-gonic/gin"

// Routers registers the terrain endpoints on r.
func Routers(r *gin.Engine) {
	terrainHandler := NewTerrainHandler()
	v1 := r.Group("/v1")
	{
		v1.POST("/terrain", terrainHandler.Generate)
		v1.POST("/terrain/geojson", terrainHandler.GeoJSON)
	}
}

// NewEngine returns a gin engine with logging, recovery and the terrain routes.
func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	Routers(r)
	return r
}
