package subject

import (
	"github.com/gin-gonic/gin"
	"github.com/study-space/core/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resources/:subject", h.resources)
}

// GET /resources/:subject
func (h *Handler) resources(c *gin.Context) {
	items, ok := ResourcesFor(Normalize(c.Param("subject")))
	if !ok {
		response.NotFoundMsg(c, "Subject not found")
		return
	}
	response.OK(c, items)
}
