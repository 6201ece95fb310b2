package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API. rl guards the rendering and classification
// endpoints; pass nil to disable it.
func RegisterRoutes(r *gin.Engine, s *Server, rl gin.HandlerFunc) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/emotions", s.emotionsHandler)
		api.POST("/resolve", s.resolveHandler)
		api.GET("/preview/ws", gin.WrapH(s.preview))

		limited := api.Group("")
		if rl != nil {
			limited.Use(rl)
		}
		limited.POST("/bubble", s.bubbleHandler)
		limited.GET("/bubble.png", s.bubblePNGHandler)
		limited.GET("/bubble/qr", s.qrHandler)
		limited.GET("/bubble/card", s.cardHandler)
		limited.POST("/classify", s.classifyHandler)
	}
}
