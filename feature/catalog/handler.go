package catalog

import (
	"trade-ledger/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the card catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleStats)
	group.Post("/reload", h.HandleReload)
	group.Get("/:name", h.HandleLookup)
}

// HandleStats reports catalog size.
// @Summary Catalog Stats
// @Description Returns the number of cards currently loaded.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]int "Card count"
// @Router /catalog [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cards": h.service.Size()})
}

// HandleLookup looks up a card by name.
// @Summary Lookup Card
// @Description Looks up a card by exact or case-insensitive name.
// @Tags catalog
// @Produce json
// @Param name path string true "Card name"
// @Success 200 {object} CardView "Card"
// @Failure 404 {object} map[string]string "Unknown card"
// @Router /catalog/{name} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	name, err := decodeParam(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	card, ok := h.service.Lookup(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown card: " + name})
	}
	return c.JSON(card)
}

// HandleReload reloads the catalog from its source.
// @Summary Reload Catalog
// @Description Reloads the catalog from the configured source. The previous catalog is kept on failure.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]int "Card count"
// @Failure 500 {object} map[string]string "Reload failed"
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := h.service.Reload(c.UserContext())
	if err != nil {
		l.Error("Catalog reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"cards": n})
}
