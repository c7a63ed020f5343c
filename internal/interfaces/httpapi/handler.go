package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-league/internal/platform/logging"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

type Handler struct {
	authService   *usecase.AuthService
	matchService  *usecase.MatchService
	teamService   *usecase.TeamService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	matchService *usecase.MatchService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:   authService,
		matchService:  matchService,
		teamService:   teamService,
		playerService: playerService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail logs err at a level matching its HTTP mapping and writes the error body.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = withActor(ctx, append(args, "error", err))
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

// audit records a successful write together with the acting user.
func (h *Handler) audit(ctx context.Context, msg string, args ...any) {
	h.logger.InfoContext(ctx, msg, withActor(ctx, args)...)
}

// pathID reads a positive integer path segment. Anything else is treated as
// an unknown route, so it yields ErrNotFound rather than a bad request.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrNotFound, name)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %s %q is not a number", usecase.ErrNotFound, name, raw)
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is out of range", usecase.ErrNotFound, name, raw)
	}
	return id, nil
}
