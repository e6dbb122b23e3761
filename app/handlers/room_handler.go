package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/LucasOrihuela13/sistema-hotel/app/usecases"
)

type RoomHandler struct {
	roomUsecase usecases.RoomUsecase
	log         *zap.SugaredLogger
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase, log *zap.SugaredLogger) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase, log: log}
}

// GetRoomStatus godoc
// @Summary Room status board
// @Description FREE/OCCUPIED state of every room for one day (default today)
// @Tags Room
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} entities.RoomStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /rooms/status [get]
func (h *RoomHandler) GetRoomStatus(c echo.Context) error {
	response, err := h.roomUsecase.GetStatusBoard(c.QueryParam("date"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		h.log.Errorw("GetRoomStatus", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, response)
}
