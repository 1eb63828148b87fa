package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/jumbaa/internal/pkg/context"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
	"github.com/piresc/jumbaa/services/houses"
)

// HouseHandler handles listing requests
type HouseHandler struct {
	houseUC houses.HouseUC
}

// NewHouseHandler creates a new house handler
func NewHouseHandler(houseUC houses.HouseUC) *HouseHandler {
	return &HouseHandler{
		houseUC: houseUC,
	}
}

// ListHouses returns the listings matching q and bedrooms
func (h *HouseHandler) ListHouses(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "")
	}

	list, err := h.houseUC.ListHouses(c.Request().Context(), filter)
	if err != nil {
		logFailure("Failed to list houses", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Houses retrieved successfully", list)
}

// Feed returns the home screen. A request without a location still succeeds
// with location_available=false.
func (h *HouseHandler) Feed(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "")
	}
	ref, err := parseReference(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "")
	}

	feed, err := h.houseUC.Feed(c.Request().Context(), filter, ref)
	if err != nil {
		logFailure("Failed to build feed", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Feed retrieved successfully", feed)
}

// Nearby returns the listings within the configured radius
func (h *HouseHandler) Nearby(c echo.Context) error {
	ref, err := parseReference(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "")
	}
	if ref == nil {
		return utils.BadRequestResponse(c, "location is required")
	}

	sortByDistance := c.QueryParam("sort") == "distance"
	list, err := h.houseUC.Nearby(c.Request().Context(), *ref, sortByDistance)
	if err != nil {
		logFailure("Failed to find nearby houses", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby houses retrieved successfully", list)
}

// GetHouse returns one listing with the caller's favorite flag
func (h *HouseHandler) GetHouse(c echo.Context) error {
	session := appctx.SessionFromEcho(c)

	detail, err := h.houseUC.GetHouse(c.Request().Context(), c.Param("id"), session)
	if err != nil {
		logFailure("Failed to get house", c, err)
		return utils.DomainErrorResponse(c, err, "House not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "House retrieved successfully", detail)
}

// CreateHouse adds a listing owned by the signed-in user
func (h *HouseHandler) CreateHouse(c echo.Context) error {
	session := appctx.SessionFromEcho(c)
	if !session.IsAuthenticated() {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateHouseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	house, err := h.houseUC.CreateHouse(c.Request().Context(), session.UserID, &req)
	if err != nil {
		logFailure("Failed to create house", c, err)
		return utils.DomainErrorResponse(c, err, "")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "House created successfully", house)
}

// logFailure logs server errors at error level and client errors at debug level
func logFailure(msg string, c echo.Context, err error) {
	fields := []logger.Field{
		logger.ErrorField(err),
		logger.String("request_id", appctx.RequestIDFromEcho(c)),
		logger.String("path", c.Path()),
	}
	if utils.StatusFromError(err) >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
		return
	}
	logger.Debug(msg, fields...)
}
