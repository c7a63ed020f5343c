package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) AddPlayerToSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayerToSquad")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("team.id", teamID))

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID, err := h.playerService.AddPlayerToSquad(ctx, usecase.AddPlayerInput{
		TeamID: teamID,
		Name:   req.Name,
		Role:   req.Role,
	})
	if err != nil {
		h.fail(ctx, w, "add player to squad failed", err, "team_id", teamID)
		return
	}

	h.audit(ctx, "player added to squad", "team_id", teamID, "player_id", playerID)

	writeJSON(ctx, w, http.StatusOK, addPlayerResponse{
		Message:  "Player added to squad successfully",
		PlayerID: playerID,
	})
}

func (h *Handler) GetPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStatistics")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("player.id", playerID))

	item, err := h.playerService.GetPlayerStatistics(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player statistics failed", err, "player_id", playerID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerToStatsDTO(item))
}
