package contentsync

import (
	"context"
	"errors"
	"time"

	"content-sync/core/logger"
	"content-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sync runs.
type Handler struct {
	service *Service
	logger  *zap.Logger
	timeout time.Duration
}

// NewHandler creates a new HTTP handler. Timeout bounds each triggered run.
func NewHandler(service *Service, logger *zap.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 15 * time.Minute
	}
	return &Handler{service: service, logger: logger, timeout: timeout}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/sync", h.HandleSync)
	app.Get("/sync/runs/:id", h.HandleGetRun)
	app.Get("/schema", h.HandleGetSchema)
}

// HandleSync triggers a sync run.
// @Summary Trigger Sync
// @Description Reconcile the local content tree with the remote store. Concurrent requests for the same mode share one run.
// @Tags sync
// @Produce json
// @Param dry_run query bool false "Resolve everything without mutating the remote store"
// @Success 200 {object} Report "Run report"
// @Failure 422 {object} map[string]any "Content type schema unusable"
// @Failure 500 {object} map[string]any "Run failed"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	dryRun := c.QueryBool("dry_run", false)

	// The run outlives a single request when it is shared with other callers.
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	report, shared, err := h.service.Trigger(ctx, dryRun)
	if err != nil {
		l.Error("Sync run failed", zap.Bool("dry_run", dryRun), zap.Error(err))

		status := fiber.StatusInternalServerError
		if errors.Is(err, reconcile.ErrSchema) {
			status = fiber.StatusUnprocessableEntity
		}
		body := fiber.Map{"error": err.Error()}
		if report != nil {
			body["run_id"] = report.RunID
			body["summary"] = report.Summary
		}
		return c.Status(status).JSON(body)
	}

	l.Info("Sync run completed",
		zap.String("run_id", report.RunID),
		zap.Bool("shared", shared),
		zap.Stringer("summary", report.Summary))
	return c.JSON(report)
}

// HandleGetRun returns the journal of a past run.
// @Summary Get Run Journal
// @Description List the records a run created or updated.
// @Tags sync
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {array} journal.Entry "Journal entries"
// @Failure 404 {object} map[string]string "Unknown run"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	id := c.Params("id")

	entries, err := h.service.History(c.Context(), id)
	if err != nil {
		l.Error("Journal lookup failed", zap.String("run_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(entries) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no journal entries for run " + id,
		})
	}
	return c.JSON(entries)
}

// HandleGetSchema describes the remote content types.
// @Summary Get Schema
// @Description List every remote content type with its identity field and body field.
// @Tags sync
// @Produce json
// @Success 200 {array} SchemaInfo "Content types"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /schema [get]
func (h *Handler) HandleGetSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	infos, err := h.service.Schemas(c.Context())
	if err != nil {
		l.Error("Schema lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(infos)
}
