package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/serhatprogramming/notes-backend/internal/auth"
	apperrors "github.com/serhatprogramming/notes-backend/internal/errors"
	"github.com/serhatprogramming/notes-backend/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	noteHandler *handler.NoteHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	jwtService *auth.JWTService,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/notes", noteHandler.List)
	api.GET("/notes/:id", noteHandler.Get)
	api.PUT("/notes/:id", noteHandler.Update)
	api.DELETE("/notes/:id", noteHandler.Delete)
	api.POST("/users", userHandler.Register)
	api.GET("/users", userHandler.List)
	api.POST("/login", authHandler.Login)

	// Secured routes (require JWT authentication). Token validation is
	// delegated to JWTService so the middleware and the handlers agree on the
	// claims type stored under the "user" context key.
	secured := api.Group("/notes", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Parse failures surface as ErrTokenInvalid; anything else means
			// no token reached the parser at all.
			mapped := apperrors.ErrTokenMissing
			if errors.Is(err, apperrors.ErrTokenInvalid) {
				mapped = apperrors.ErrTokenInvalid
			}
			httpErr := apperrors.MapErrorToHTTP(mapped)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}))

	secured.POST("", noteHandler.Create)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
