package user

import "github.com/gin-gonic/gin"

// Routes mounts the user endpoints on the given router group.
func Routes(rg *gin.RouterGroup, h *Handler) {
	users := rg.Group("/users")
	users.POST("", h.Create)
	users.GET("", h.List)
	users.GET("/:id", h.Get)
	users.PUT("/:id", h.Update)
	users.DELETE("/:id", h.Delete)
}
