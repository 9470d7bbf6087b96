package inventory

import (
	"errors"

	"nursery-monitor/core/logger"
	"nursery-monitor/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory feature.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/stats", h.HandleGetStats)
	group.Get("/recent", h.HandleGetRecent)
	group.Get("/species/:name", h.HandleGetSpecies)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/snapshots", h.HandleGetSnapshots)
}

// HandleGetStats returns the aggregate inventory view.
// @Summary Get Inventory Stats
// @Description Aggregate stock figures, latest activity and the watched-species view.
// @Tags inventory
// @Produce json
// @Success 200 {object} models.StatsResponse "Inventory Stats"
// @Failure 502 {object} models.ErrorResponse "Feed Unavailable"
// @Router /inventory/stats [get]
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	stats, err := h.service.Stats(c.Context())
	if err != nil {
		l.Error("Stats request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}

// HandleGetRecent returns recent records, most recent first.
// @Summary Get Recent Records
// @Description Canonical inventory records ordered most recent first.
// @Tags inventory
// @Produce json
// @Param limit query int false "Maximum number of records (default 10)"
// @Success 200 {object} models.RecentResponse "Recent Records"
// @Failure 502 {object} models.ErrorResponse "Feed Unavailable"
// @Router /inventory/recent [get]
func (h *Handler) HandleGetRecent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit := utils.ToInt(c.Query("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	recent, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		l.Error("Recent request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(recent)
}

// HandleGetSpecies returns the live view for one species.
// @Summary Get Species View
// @Description Stock snapshot and last activity for records whose species contains the given term.
// @Tags inventory
// @Produce json
// @Param name path string true "Species term (e.g. 'sengon')"
// @Success 200 {object} models.SpeciesResponse "Species View"
// @Failure 502 {object} models.ErrorResponse "Feed Unavailable"
// @Router /inventory/species/{name} [get]
func (h *Handler) HandleGetSpecies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	view, err := h.service.Species(c.Context(), c.Params("name"))
	if err != nil {
		l.Error("Species request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(view)
}

// HandleRefresh forces a live fetch and returns the refreshed view.
// @Summary Refresh Inventory
// @Description Invalidates the cached feed payload and reconciles against live data.
// @Tags inventory
// @Produce json
// @Success 200 {object} models.StatsResponse "Refreshed Stats"
// @Failure 502 {object} models.ErrorResponse "Feed Unavailable"
// @Router /inventory/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	stats, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("Refresh request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Inventory refreshed")
	return c.JSON(stats)
}

// HandleGetSnapshots lists archived snapshots.
// @Summary List Snapshots
// @Description Archived daily snapshot objects for this feed.
// @Tags inventory
// @Produce json
// @Success 200 {object} models.SnapshotsResponse "Snapshot List"
// @Failure 503 {object} models.ErrorResponse "Archive Disabled"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /inventory/snapshots [get]
func (h *Handler) HandleGetSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	snapshots, err := h.service.Snapshots(c.Context())
	if err != nil {
		if errors.Is(err, ErrArchiveDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(snapshots)
}
