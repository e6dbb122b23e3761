package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/LucasOrihuela13/sistema-hotel/app/entities"
	"github.com/LucasOrihuela13/sistema-hotel/app/usecases"
)

type ReservationHandler struct {
	reservationUsecase usecases.ReservationUsecase
	log                *zap.SugaredLogger
}

func NewReservationHandler(reservationUsecase usecases.ReservationUsecase, log *zap.SugaredLogger) *ReservationHandler {
	return &ReservationHandler{reservationUsecase: reservationUsecase, log: log}
}

// CreateReservation godoc
// @Summary Create a new reservation
// @Description Book a room for a guest over a date range
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.CreateReservationRequest true "Reservation request body"
// @Success 201 {object} entities.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req entities.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}

	response, err := h.reservationUsecase.Create(req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		h.log.Errorw("CreateReservation", "room", req.Room, "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusCreated, response)
}

// GetReservations godoc
// @Summary List reservations
// @Description List reservations, optionally filtered by room and scope (all, active, history)
// @Tags Reservation
// @Produce json
// @Param room query int false "Room number"
// @Param scope query string false "Scope: all, active or history (default all)"
// @Success 200 {object} entities.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations [get]
func (h *ReservationHandler) GetReservations(c echo.Context) error {
	response, err := h.reservationUsecase.List(c.QueryParam("room"), c.QueryParam("scope"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		h.log.Errorw("GetReservations", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, response)
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Description Delete the reservation with the given id
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid reservation id"})
	}

	rows, err := h.reservationUsecase.Cancel(id)
	if err != nil {
		h.log.Errorw("CancelReservation", "id", id, "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if rows == 0 {
		// Already gone. Still success for the caller.
		h.log.Infow("CancelReservation", "id", id, "rows", rows)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "reservation canceled successfully"})
}

// GetAvailability godoc
// @Summary Check room availability
// @Description Report whether a room is free for the half-open range [checkIn, checkOut)
// @Tags Reservation
// @Produce json
// @Param room query int true "Room number"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} entities.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/availability [get]
func (h *ReservationHandler) GetAvailability(c echo.Context) error {
	response, err := h.reservationUsecase.IsAvailable(
		c.QueryParam("room"), c.QueryParam("checkIn"), c.QueryParam("checkOut"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		h.log.Errorw("GetAvailability", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, response)
}
