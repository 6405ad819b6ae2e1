package http

import (
	"wedding-line-bot/internal/domain"
	"wedding-line-bot/internal/ports/input"
	"wedding-line-bot/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.GuestService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.GuestService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		validator: validator.New(),
	}
}

// Alive func - Liveness probe. Must answer even while the database or the
// LINE credentials are missing.
// @Summary Liveness
// @Description Reports that the process is up
// @Tags HEALTH
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (hdl *HTTPHandler) Alive(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: "wedding-line-bot"})
}

// HealthCheck func - Readiness probe, fails while the database is unreachable
// @Summary Health check
// @Description Pings the database
// @Tags HEALTH
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if hdl.db == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// GetConfirmations func
/* list attendance confirmations */
// GetConfirmations godoc
// @Summary List confirmations
// @Description List attendance confirmations with pagination and filtering
// @Tags GUEST
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/confirmations [get]
// @Produce json
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "order_by"
// @param asc query bool false "asc"
// @param user_id query string false "user_id"
// @param full_name query string false "full_name"
func (hdl *HTTPHandler) GetConfirmations(c *fiber.Ctx) error {
	condition := QueryConfirmationRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.validator.ValidateStruct(condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	// Convert HTTP query request to domain query request
	domainCondition := domain.QueryGuestRequest{
		UserID:   condition.UserID,
		FullName: condition.FullName,
		Limit:    condition.Limit,
		Page:     condition.Page,
		OrderBy:  condition.OrderBy,
		Asc:      condition.Asc,
	}
	result, err := hdl.srv.GetConfirmations(domainCondition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	// Convert domain response to HTTP response
	data := make([]ConfirmationResponse, 0, len(result.Confirmations))
	for _, confirmation := range result.Confirmations {
		data = append(data, ConfirmationResponse{
			UserID:      confirmation.UserID,
			FullName:    confirmation.FullName,
			GuestsCount: confirmation.GuestsCount,
			CreatedAt:   confirmation.CreatedAt,
			UpdatedAt:   confirmation.UpdatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}

// GetWellWishes func
/* list well-wishes */
// GetWellWishes godoc
// @Summary List well-wishes
// @Description List well-wishes with pagination and filtering
// @Tags GUEST
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/wishes [get]
// @Produce json
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "order_by"
// @param asc query bool false "asc"
// @param user_id query string false "user_id"
func (hdl *HTTPHandler) GetWellWishes(c *fiber.Ctx) error {
	condition := QueryWellWishRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.validator.ValidateStruct(condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	// Convert HTTP query request to domain query request
	domainCondition := domain.QueryGuestRequest{
		UserID:  condition.UserID,
		Limit:   condition.Limit,
		Page:    condition.Page,
		OrderBy: condition.OrderBy,
		Asc:     condition.Asc,
	}
	result, err := hdl.srv.GetWellWishes(domainCondition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	// Convert domain response to HTTP response
	data := make([]WellWishResponse, 0, len(result.Wishes))
	for _, wish := range result.Wishes {
		data = append(data, WellWishResponse{
			ID:        wish.ID,
			UserID:    wish.UserID,
			Message:   wish.Message,
			CreatedAt: wish.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}
