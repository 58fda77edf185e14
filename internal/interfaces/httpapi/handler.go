package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	cerrors "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/gridironlab/rosterlink/internal/usecase"
)

type Handler struct {
	ingestionService *usecase.IngestionService
	crosswalkService *usecase.CrosswalkService
	defenseService   *usecase.DefenseRankingService
	unifiedService   *usecase.UnifiedViewService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	ingestionService *usecase.IngestionService,
	crosswalkService *usecase.CrosswalkService,
	defenseService *usecase.DefenseRankingService,
	unifiedService *usecase.UnifiedViewService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		ingestionService: ingestionService,
		crosswalkService: crosswalkService,
		defenseService:   defenseService,
		unifiedService:   unifiedService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) decodeRequest(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, cerrors.Wrap(err, "decode request body"))
	}

	return nil
}

// queryInt parses an optional integer query parameter; missing returns (0,
// false, nil).
func queryInt(r *http.Request, name string) (int, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}

	return value, true, nil
}
