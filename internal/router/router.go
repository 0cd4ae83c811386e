package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"snadaily/internal/auth"
	"snadaily/internal/config"
	"snadaily/internal/errors"
	"snadaily/internal/handler"
	"snadaily/internal/model"
)

// Handlers bundles every handler the router wires.
type Handlers struct {
	Auth     *handler.AuthHandler
	Fish     *handler.FishHandler
	Order    *handler.OrderHandler
	Payment  *handler.PaymentHandler
	Shipping *handler.ShippingHandler
	Contest  *handler.ContestHandler
	Judge    *handler.JudgeHandler
	Admin    *handler.AdminHandler
	AI       *handler.AIHandler
	Stats    *handler.StatsHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log zerolog.Logger, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.HTTPErrorHandler = errorHandler(cfg, log)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/admin/login", h.Auth.AdminLogin)

	// The fish listing and the per-fish lookup stay public: the lookup is
	// the certificate verification endpoint printed on QR codes.
	api.GET("/fish", h.Fish.List)
	api.GET("/fish/:id", h.Fish.Get)

	api.GET("/stats", h.Stats.Stats)

	api.GET("/shipping/destinations", h.Shipping.SearchDestinations)
	api.POST("/shipping/cost", h.Shipping.CalculateCost)
	api.GET("/shipping/track", h.Shipping.TrackWaybill)

	api.POST("/ai/chat", h.AI.Chat)

	requireJWT := jwtMiddleware(cfg.JWTSecret)

	// Contest routes (any authenticated account)
	contest := api.Group("/contest", requireJWT)
	contest.POST("/register", h.Contest.Register, middleware.BodyLimit(cfg.MaxUploadSize))
	contest.GET("/my-registrations", h.Contest.MyRegistrations)
	contest.POST("/registrations/:id/spin", h.Contest.Spin)
	contest.POST("/registrations/:id/redeem", h.Contest.Redeem)

	// Judge routes
	judge := api.Group("/judge", requireJWT, auth.RequireRole(model.RoleJudge))
	judge.GET("/events", h.Judge.Events)
	judge.GET("/entries", h.Judge.Entries)
	judge.POST("/entries/:id/score", h.Judge.Score)

	// Admin routes
	admin := api.Group("", requireJWT, auth.RequireRole(model.RoleAdmin))

	admin.POST("/fish", h.Fish.Create)
	admin.PUT("/fish/:id", h.Fish.Update)
	admin.PATCH("/fish/:id/status", h.Fish.SetStatus)
	admin.DELETE("/fish/:id", h.Fish.Delete)

	admin.GET("/orders", h.Order.List)
	admin.GET("/orders/:id", h.Order.Get)
	admin.POST("/orders", h.Order.Create)
	admin.DELETE("/orders/:id", h.Order.Delete)

	admin.POST("/payment/token/:order_id", h.Payment.Token)

	admin.GET("/admin/judges", h.Admin.ListJudges)
	admin.POST("/admin/judges", h.Admin.CreateJudge)
	admin.PUT("/admin/judges/:id", h.Admin.UpdateJudge)
	admin.DELETE("/admin/judges/:id", h.Admin.DeleteJudge)

	admin.GET("/admin/events", h.Admin.ListEvents)
	admin.GET("/admin/events/:id", h.Admin.GetEvent)
	admin.POST("/admin/events", h.Admin.CreateEvent)
	admin.PUT("/admin/events/:id", h.Admin.UpdateEvent)
	admin.DELETE("/admin/events/:id", h.Admin.DeleteEvent)
	admin.PUT("/admin/events/:id/judges", h.Admin.AssignJudges)

	admin.GET("/admin/registrations", h.Admin.ListRegistrations)
	admin.PATCH("/admin/registrations/:id/status", h.Admin.SetRegistrationStatus)
	admin.DELETE("/admin/registrations/:id", h.Admin.DeleteRegistration)
}

// jwtMiddleware authenticates bearer tokens and places *auth.Claims on the
// context for RequireRole and the handlers.
func jwtMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	})
}

// errorHandler renders every error as the standard JSON envelope. Upstream
// provider detail is logged always but only echoed to the client outside
// production.
func errorHandler(cfg *config.Config, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		payload := errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		}

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			switch msg := he.Message.(type) {
			case errors.ErrorResponse:
				payload = msg
			case string:
				payload = errors.ErrorResponse{Error: msg, Code: http.StatusText(status)}
			default:
				payload = errors.ErrorResponse{Error: http.StatusText(status), Code: http.StatusText(status)}
			}
			if he.Internal != nil && !cfg.IsProduction() {
				payload.Error = payload.Error + ": " + he.Internal.Error()
			}
		}

		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Int("status", status).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, payload)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
