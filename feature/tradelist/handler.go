package tradelist

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"trade-ledger/core/ledger"
	"trade-ledger/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// LinesRequest is the body of add and remove requests.
type LinesRequest struct {
	// Lines holds one "<quantity> <card name> [<printing>]" entry per element.
	Lines []string `json:"lines"`
}

// VisibilityRequest is the body of a visibility change.
type VisibilityRequest struct {
	Public *bool `json:"public"`
}

// Handler handles HTTP requests for tradelists.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tradelist routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tradelist")
	group.Get("/:owner", h.HandleView)
	group.Post("/:owner/add", h.HandleAdd)
	group.Post("/:owner/remove", h.HandleRemove)
	group.Put("/:owner/visibility", h.HandleVisibility)
	group.Get("/:owner/contains", h.HandleContains)
}

// ownerParam returns the decoded owner path parameter.
// Fiber reuses the request buffer behind c.Params, and owners are kept as store keys,
// so the value is copied before it leaves the handler.
func ownerParam(c *fiber.Ctx) (string, error) {
	owner, err := url.PathUnescape(utils.CopyString(c.Params("owner")))
	if err != nil {
		return "", fmt.Errorf("invalid owner: %w", err)
	}
	return owner, nil
}

// HandleView renders a tradelist.
// @Summary View Tradelist
// @Description Renders the owner's tradelist. Other viewers only see public tradelists. An owner without cards gets an empty listing.
// @Tags tradelist
// @Produce json
// @Param owner path string true "Owner ID"
// @Param viewer query string false "Viewer ID (defaults to the owner)"
// @Success 200 {object} Response "Rendered tradelist"
// @Failure 403 {object} map[string]string "Tradelist is private"
// @Router /tradelist/{owner} [get]
func (h *Handler) HandleView(c *fiber.Ctx) error {
	owner, err := ownerParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	viewer := c.Query("viewer", owner)

	resp, err := h.service.ViewAs(viewer, owner)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Info("View denied",
			zap.String("owner", owner), zap.String("viewer", viewer))
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(resp)
}

// HandleAdd adds cards to a tradelist.
// @Summary Add Cards
// @Description Adds each line to the owner's tradelist. Unknown cards are skipped; malformed lines fail individually.
// @Tags tradelist
// @Accept json
// @Produce json
// @Param owner path string true "Owner ID"
// @Param request body LinesRequest true "Lines to add"
// @Success 200 {object} Result "Per-line results"
// @Failure 400 {object} map[string]string "Malformed body"
// @Router /tradelist/{owner}/add [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	return h.handleLines(c, "add", h.service.Add)
}

// HandleRemove removes cards from a tradelist.
// @Summary Remove Cards
// @Description Removes each line from the owner's tradelist. Missing entries are skipped; over-removal clamps at zero.
// @Tags tradelist
// @Accept json
// @Produce json
// @Param owner path string true "Owner ID"
// @Param request body LinesRequest true "Lines to remove"
// @Success 200 {object} Result "Per-line results"
// @Failure 400 {object} map[string]string "Malformed body"
// @Router /tradelist/{owner}/remove [post]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	return h.handleLines(c, "remove", h.service.Remove)
}

func (h *Handler) handleLines(c *fiber.Ctx, op string, apply func(string, []Line) Result) error {
	l := logger.WithRayID(h.service.logger, c)
	owner, err := ownerParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req LinesRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed request body", zap.String("op", op), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	lines, failures := ParseLines(req.Lines)
	res := apply(owner, lines)
	for _, f := range failures {
		res.record(f)
	}
	sort.SliceStable(res.Lines, func(i, j int) bool {
		return res.Lines[i].Line.Number < res.Lines[j].Line.Number
	})

	l.Info("Tradelist updated",
		zap.String("op", op),
		zap.String("owner", owner),
		zap.Int("applied", res.Applied),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	return c.JSON(res)
}

// HandleVisibility changes a tradelist's visibility.
// @Summary Set Visibility
// @Description Makes the owner's tradelist public or private.
// @Tags tradelist
// @Accept json
// @Produce json
// @Param owner path string true "Owner ID"
// @Param request body VisibilityRequest true "Visibility"
// @Success 200 {object} map[string]interface{} "Visibility set"
// @Failure 400 {object} map[string]string "Malformed body"
// @Router /tradelist/{owner}/visibility [put]
func (h *Handler) HandleVisibility(c *fiber.Ctx) error {
	owner, err := ownerParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req VisibilityRequest
	if err := c.BodyParser(&req); err != nil || req.Public == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body must be {\"public\": bool}"})
	}

	h.service.SetVisibility(owner, *req.Public)
	return c.JSON(fiber.Map{"owner": owner, "public": *req.Public})
}

// HandleContains checks whether a tradelist holds a card.
// @Summary Contains Card
// @Description Reports whether the owner holds the card. Without a printing any printing matches.
// @Tags tradelist
// @Produce json
// @Param owner path string true "Owner ID"
// @Param name query string true "Card name"
// @Param printing query string false "Printing code"
// @Success 200 {object} map[string]interface{} "Containment"
// @Failure 400 {object} map[string]string "Unknown printing"
// @Failure 404 {object} map[string]string "Unknown card"
// @Router /tradelist/{owner}/contains [get]
func (h *Handler) HandleContains(c *fiber.Ctx) error {
	owner, err := ownerParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	name := c.Query("name")
	printing := c.Query("printing")

	ok, err := h.service.Contains(owner, name, printing)
	switch {
	case errors.Is(err, ErrUnknownCard):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrUnknownPrinting):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		logger.WithRayID(h.service.logger, c).Error("Contains check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"owner":    owner,
		"name":     name,
		"printing": printing,
		"contains": ok,
	})
}
