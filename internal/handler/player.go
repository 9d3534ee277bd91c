package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lmartin/tennis-stats-service/internal/model"
	"github.com/lmartin/tennis-stats-service/internal/service"
	"github.com/lmartin/tennis-stats-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.Engine) {
	g := r.Group(PlayersPath)
	{
		g.GET("", h.get)
		g.POST("", h.create)
	}
}

// get serves both shapes of GET /players: without an id query it lists every
// player in ranking order, with one it looks up that single player.
func (h *PlayerHandler) get(c *gin.Context) {
	idStr, hasID := c.GetQuery("id")
	if !hasID {
		h.list(c)
		return
	}
	// A malformed id is rejected here, before any store round trip. The
	// value only has to parse; negative or unknown ids resolve to 404
	// through the lookup.
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a base-10 integer"}}))
		return
	}
	player, err := h.svc.GetPlayer(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"player": player})
}

func (h *PlayerHandler) list(c *gin.Context) {
	players, err := h.svc.ListPlayers(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"players": players})
}

func (h *PlayerHandler) create(c *gin.Context) {
	var req model.PlayerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.CreatePlayer(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("%s/%d", PlayersPath, player.ID))
	response.WriteData(c, http.StatusCreated, gin.H{"player": player})
}
