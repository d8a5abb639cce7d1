package handler

import (
	"errors"

	"seo-provisioner/internal/core/logger"
	"seo-provisioner/internal/features/provisioning/domain"
	"seo-provisioner/internal/features/provisioning/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProvisioningHandler handles HTTP requests for account lifecycle operations.
type ProvisioningHandler struct {
	provisioningService *service.ProvisioningService
}

// NewProvisioningHandler creates a new ProvisioningHandler.
func NewProvisioningHandler(provisioningService *service.ProvisioningService) *ProvisioningHandler {
	return &ProvisioningHandler{
		provisioningService: provisioningService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Data carries diagnostic context such as the raw vendor response.
	Data map[string]any `json:"data,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RegisterRoutes mounts the provisioning routes on router.
func (h *ProvisioningHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/providers", h.ListProviders)

	group := router.Group("/providers/:provider")
	group.Post("/create", h.Create)
	group.Post("/login", h.Login)
	group.Post("/change-package", h.ChangePackage)
	group.Post("/suspend", h.Suspend)
	group.Post("/unsuspend", h.Unsuspend)
	group.Post("/terminate", h.Terminate)
}

// ListProviders godoc
// @Summary List configured SEO providers
// @Tags provisioning
// @Produce json
// @Success 200 {array} service.ProviderInfo
// @Router /providers [get]
func (h *ProvisioningHandler) ListProviders(c *fiber.Ctx) error {
	return c.JSON(h.provisioningService.Providers())
}

// Create godoc
// @Summary Create an SEO account
// @Description Registers the customer with the vendor and activates the requested package
// @Tags provisioning
// @Accept json
// @Produce json
// @Param provider path string true "Provider key (e.g., ranking-coach, marketgoo)"
// @Param params body domain.CreateParams true "Create parameters"
// @Success 200 {object} domain.CreateResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{provider}/create [post]
func (h *ProvisioningHandler) Create(c *fiber.Ctx) error {
	var params domain.CreateParams
	if err := c.BodyParser(&params); err != nil {
		return h.badBody(c, err)
	}

	result, err := h.provisioningService.Create(c.UserContext(), c.Params("provider"), params)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return c.JSON(result)
}

// Login godoc
// @Summary Get a single sign-on URL
// @Tags provisioning
// @Accept json
// @Produce json
// @Param provider path string true "Provider key"
// @Param params body domain.AccountIdentifierParams true "Account identifier"
// @Success 200 {object} domain.LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{provider}/login [post]
func (h *ProvisioningHandler) Login(c *fiber.Ctx) error {
	var params domain.AccountIdentifierParams
	if err := c.BodyParser(&params); err != nil {
		return h.badBody(c, err)
	}

	result, err := h.provisioningService.Login(c.UserContext(), c.Params("provider"), params)
	if err != nil {
		return h.fail(c, "login", err)
	}
	return c.JSON(result)
}

// ChangePackage godoc
// @Summary Move an account to another package
// @Tags provisioning
// @Accept json
// @Produce json
// @Param provider path string true "Provider key"
// @Param params body domain.ChangePackageParams true "Change package parameters"
// @Success 200 {object} domain.EmptyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{provider}/change-package [post]
func (h *ProvisioningHandler) ChangePackage(c *fiber.Ctx) error {
	var params domain.ChangePackageParams
	if err := c.BodyParser(&params); err != nil {
		return h.badBody(c, err)
	}

	result, err := h.provisioningService.ChangePackage(c.UserContext(), c.Params("provider"), params)
	if err != nil {
		return h.fail(c, "change_package", err)
	}
	return c.JSON(result)
}

// Suspend godoc
// @Summary Suspend an account
// @Tags provisioning
// @Accept json
// @Produce json
// @Param provider path string true "Provider key"
// @Param params body domain.AccountIdentifierParams true "Account identifier"
// @Success 200 {object} domain.EmptyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{provider}/suspend [post]
func (h *ProvisioningHandler) Suspend(c *fiber.Ctx) error {
	var params domain.AccountIdentifierParams
	if err := c.BodyParser(&params); err != nil {
		return h.badBody(c, err)
	}

	result, err := h.provisioningService.Suspend(c.UserContext(), c.Params("provider"), params)
	if err != nil {
		return h.fail(c, "suspend", err)
	}
	return c.JSON(result)
}

// Unsuspend godoc
// @Summary Unsuspend an account
// @Tags provisioning
// @Accept json
// @Produce json
// @Param provider path string true "Provider key"
// @Param params body domain.AccountIdentifierParams true "Account identifier"
// @Success 200 {object} domain.EmptyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{provider}/unsuspend [post]
func (h *ProvisioningHandler) Unsuspend(c *fiber.Ctx) error {
	var params domain.AccountIdentifierParams
	if err := c.BodyParser(&params); err != nil {
		return h.badBody(c, err)
	}

	result, err := h.provisioningService.Unsuspend(c.UserContext(), c.Params("provider"), params)
	if err != nil {
		return h.fail(c, "unsuspend", err)
	}
	return c.JSON(result)
}

// Terminate godoc
// @Summary Terminate an account
// @Tags provisioning
// @Accept json
// @Produce json
// @Param provider path string true "Provider key"
// @Param params body domain.AccountIdentifierParams true "Account identifier"
// @Success 200 {object} domain.EmptyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /providers/{provider}/terminate [post]
func (h *ProvisioningHandler) Terminate(c *fiber.Ctx) error {
	var params domain.AccountIdentifierParams
	if err := c.BodyParser(&params); err != nil {
		return h.badBody(c, err)
	}

	result, err := h.provisioningService.Terminate(c.UserContext(), c.Params("provider"), params)
	if err != nil {
		return h.fail(c, "terminate", err)
	}
	return c.JSON(result)
}

func (h *ProvisioningHandler) badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: "Invalid request body",
		Data:    map[string]any{"error": err.Error()},
		RayID:   rayID(c),
	})
}

func (h *ProvisioningHandler) fail(c *fiber.Ctx, operation string, err error) error {
	status := StatusFor(err)

	resp := ErrorResponse{Message: err.Error(), RayID: rayID(c)}
	if pe, ok := domain.AsProvisionError(err); ok {
		resp.Data = pe.Data
	}
	if status == fiber.StatusInternalServerError {
		resp.Message = "Internal server error"
	}

	logger.Get().Warn("Provisioning request failed",
		zap.String("provider", c.Params("provider")),
		zap.String("operation", operation),
		zap.String("ray_id", resp.RayID),
		zap.Int("status", status),
		zap.Error(err),
	)

	return c.Status(status).JSON(resp)
}

// StatusFor maps a provisioning error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrProviderNotSupported),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrUnknownProvider),
		errors.Is(err, domain.ErrTransport):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
