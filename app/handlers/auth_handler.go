package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/LucasOrihuela13/sistema-hotel/app/entities"
	"github.com/LucasOrihuela13/sistema-hotel/app/usecases"
)

type AuthHandler struct {
	authUsecase usecases.AuthUsecase
	log         *zap.SugaredLogger
}

func NewAuthHandler(authUsecase usecases.AuthUsecase, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, log: log}
}

// Login godoc
// @Summary Log in with the shared access password
// @Description Exchange the access password for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body entities.LoginRequest true "Login request body"
// @Success 200 {object} entities.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req entities.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "password is required"})
	}

	token, err := h.authUsecase.Login(req.Password)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		h.log.Errorw("Login", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, entities.LoginResponse{Message: "login successful", Token: token})
}
