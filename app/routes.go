package app

import (
	"github.com/labstack/echo/v4"

	"github.com/LucasOrihuela13/sistema-hotel/app/handlers"
)

func RegisterRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	reservationHandler *handlers.ReservationHandler,
	roomHandler *handlers.RoomHandler,
	authMiddleware echo.MiddlewareFunc,
) {
	e.POST("/login", authHandler.Login)

	authGroup := e.Group("")
	authGroup.Use(authMiddleware)

	// Reservation routes
	authGroup.POST("/reservations", reservationHandler.CreateReservation)
	authGroup.GET("/reservations", reservationHandler.GetReservations)
	authGroup.DELETE("/reservations/:id", reservationHandler.CancelReservation)
	authGroup.GET("/reservations/availability", reservationHandler.GetAvailability)

	// Room routes
	authGroup.GET("/rooms/status", roomHandler.GetRoomStatus)
}
