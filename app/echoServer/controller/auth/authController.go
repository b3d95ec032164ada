package auth

import (
	"log/slog"
	"net/http"

	"github.com/Uday-Kumarr/clickncut-main/app/echoServer/jwtx"
	"github.com/Uday-Kumarr/clickncut-main/model"
	authsvc "github.com/Uday-Kumarr/clickncut-main/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Login
// @Summary      Login
// @Description  Login with email + password; registered users first, then the demo pair
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /v1/users/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	sess, tok, err := ct.Svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds:
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		default:
			ct.logErr(c, "login failed", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome back, " + sess.Name + "!",
		"user":    sess,
		"token":   tok,
	})
}

// Signup
// @Summary      Signup
// @Description  Register a new user; duplicate emails are rejected
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.SignupReq  true  "Signup payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email already registered"
// @Failure      500  {object}  map[string]any
// @Router       /v1/users/signup [post]
func (ct *Controller) Signup(c echo.Context) error {
	var req model.SignupReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	sess, tok, err := ct.Svc.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrEmailTaken:
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		default:
			ct.logErr(c, "signup failed", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "signup failed")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Welcome to Click N Cut, " + sess.Name + "!",
		"user":    sess,
		"token":   tok,
	})
}

// Logout
// @Summary      Logout
// @Description  Drop the persisted session mirror for the current subject
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /v1/users/logout [post]
// @Security     BearerAuth
func (ct *Controller) Logout(c echo.Context) error {
	sub, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	if err := ct.Svc.Logout(c.Request().Context(), sub); err != nil {
		ct.logErr(c, "logout failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "logout failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "You have been logged out successfully",
	})
}

// Me
// @Summary      Current session
// @Tags         users
// @Produce      json
// @Success      200  {object}  model.Session
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /v1/users/me [get]
// @Security     BearerAuth
func (ct *Controller) Me(c echo.Context) error {
	sub, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	sess, err := ct.Svc.Session(c.Request().Context(), sub)
	if err != nil {
		if authsvc.Code(err) == authsvc.ErrNoSession {
			return echo.NewHTTPError(http.StatusNotFound, "no session")
		}
		ct.logErr(c, "session lookup failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, sess)
}

// GuestSession
// @Summary      Guest session
// @Description  Issue an anonymous token so the cart works before login
// @Tags         users
// @Produce      json
// @Success      201  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /v1/session/guest [post]
func (ct *Controller) GuestSession(c echo.Context) error {
	tok, err := ct.Svc.GuestSession(c.Request().Context())
	if err != nil {
		ct.logErr(c, "guest session failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": tok})
}

func (ct *Controller) logErr(c echo.Context, msg string, err error) {
	if ct.Log == nil {
		return
	}
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	ct.Log.Error(msg,
		"err", err,
		"req_id", rid,
		"path", c.Path(),
		"method", c.Request().Method,
	)
}
