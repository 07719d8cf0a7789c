package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batarcade/arcade-api/internal/catalog"
)

// GameHandler serves the static game catalog.
type GameHandler struct{}

func NewGameHandler() *GameHandler {
	return &GameHandler{}
}

// List returns the full catalog.
//
// @Summary      List catalog games
// @Tags         games
// @Produce      json
// @Success      200  {array}  domain.Game
// @Router       /games [get]
func (h *GameHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Games())
}
