package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		Team1: req.Team1,
		Team2: req.Team2,
		Date:  req.Date,
		Venue: req.Venue,
	})
	if err != nil {
		h.fail(ctx, w, "create match failed", err)
		return
	}

	h.audit(ctx, "match created", "match_id", matchID)

	writeJSON(ctx, w, http.StatusOK, createMatchResponse{
		Message: "Match created successfully",
		MatchID: matchID,
	})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err)
		return
	}

	items := make([]matchSummaryDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToSummaryDTO(m))
	}

	writeJSON(ctx, w, http.StatusOK, listMatchesResponse{Matches: items})
}

func (h *Handler) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetails")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("match.id", matchID))

	details, err := h.matchService.GetMatchDetails(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match details failed", err, "match_id", matchID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchDetailsToDTO(details))
}
