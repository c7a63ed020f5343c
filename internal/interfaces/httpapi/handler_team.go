package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) CreateTeamForMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeamForMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("match.id", matchID))

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	roster := make([]usecase.RosterEntry, 0, len(req.Players))
	for _, item := range req.Players {
		roster = append(roster, usecase.RosterEntry{Name: item.Name, Role: item.Role})
	}

	result, err := h.teamService.CreateTeamForMatch(ctx, usecase.CreateTeamInput{
		MatchID:  matchID,
		TeamName: req.TeamName,
		Players:  roster,
	})
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "match_id", matchID)
		return
	}

	h.audit(ctx, "team created", "match_id", matchID, "team_id", result.TeamID, "players", result.PlayersCreated)

	writeJSON(ctx, w, http.StatusOK, createTeamResponse{
		Message: "Team and players created successfully",
		TeamID:  result.TeamID,
	})
}
