package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batarcade/arcade-api/internal/core/ports"
)

type ScoreHandler struct {
	scores ports.ScoreService
}

func NewScoreHandler(scores ports.ScoreService) *ScoreHandler {
	return &ScoreHandler{scores: scores}
}

type submitScoreRequest struct {
	GameID string `json:"game_id" validate:"required"`
	Score  int64  `json:"score"`
}

// List returns every best-score record owned by the caller.
//
// @Summary      List the caller's best scores
// @Tags         scores
// @Produce      json
// @Success      200  {array}   domain.ScoreRecord
// @Failure      401  {object}  map[string]string
// @Router       /scores [get]
func (h *ScoreHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	records, err := h.scores.ListScores(c.Request().Context(), identity.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, records)
}

// Submit applies the best-score-wins rule for the caller. A non-improving
// score still answers 200; the submission is silently ignored.
//
// @Summary      Submit a score
// @Tags         scores
// @Accept       json
// @Produce      json
// @Param        body  body      submitScoreRequest  true  "Game and score"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /scores [post]
func (h *ScoreHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitScoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing fields"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing fields"})
	}

	if err := h.scores.SubmitScore(c.Request().Context(), identity.ID, req.GameID, req.Score); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
