package chat

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/study-space/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
	rg.POST("/sessions", h.createSession)
	rg.GET("/sessions/:id/messages", h.sessionMessages)
}

// POST /chat
func (h *Handler) chat(c *gin.Context) {
	var dto ChatRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.svc.Process(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.InternalErrorMsg(c, ErrNotConfigured.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, msg)
}

// POST /sessions
func (h *Handler) createSession(c *gin.Context) {
	session, err := h.svc.StartSession(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, session)
}

// GET /sessions/:id/messages
func (h *Handler) sessionMessages(c *gin.Context) {
	messages, err := h.svc.SessionMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, messages)
}
