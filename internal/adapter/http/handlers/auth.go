package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/adapter/http/validation"
	"todoapp/internal/adapter/http/views"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
	"todoapp/pkg/apierrors"
)

type AuthHandler struct {
	authService   ports.AuthService
	sessions      ports.SessionManager
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionManager, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", views.Page{Title: "Login", Form: dto.LoginRequest{}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := decodeForm(c, &req); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInternalError)
		return
	}

	req, fieldErrors := validation.ValidateLogin(req)
	password := req.Password
	// The password is never echoed back into the form.
	req.Password = ""
	if fieldErrors != nil {
		render(c, http.StatusOK, "login.html", views.Page{
			Title:  "Login",
			Form:   req,
			Errors: translateFieldErrors(fieldErrors, lang),
		})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			render(c, http.StatusOK, "login.html", views.Page{
				Title:  "Login",
				Form:   req,
				Notice: apierrors.GetTransErrorMsg(apierrors.MsgInvalidCredentials, lang),
			})
			return
		}

		zap.L().Error("failed to log in", zap.String("username", req.Username), zap.Error(err))
		renderError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		zap.L().Error("failed to issue session", zap.Uint64("user_id", user.ID), zap.Error(err))
		renderError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	middleware.SetSessionCookie(c, token, h.sessions.TTL(), h.secureCookies)
	c.Redirect(http.StatusFound, middleware.DashboardPath)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", views.Page{Title: "Register", Form: dto.RegisterRequest{}})
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := decodeForm(c, &req); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInternalError)
		return
	}

	input, fieldErrors := validation.BuildRegisterInput(req)
	echo := dto.RegisterRequest{Username: req.Username, Email: req.Email}
	if fieldErrors != nil {
		render(c, http.StatusOK, "register.html", views.Page{
			Title:  "Register",
			Form:   echo,
			Errors: translateFieldErrors(fieldErrors, lang),
		})
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), input); err != nil {
		if errors.Is(err, domain.ErrPasswordTooLong) {
			// The form counts characters; bcrypt limits bytes.
			render(c, http.StatusOK, "register.html", views.Page{
				Title: "Register",
				Form:  echo,
				Errors: translateFieldErrors(validation.FieldErrors{
					"password": {MessageID: validation.MsgFieldTooLong, Param: strconv.Itoa(domain.PasswordMaxBytes)},
				}, lang),
			})
			return
		}

		var notice string
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			notice = apierrors.MsgUsernameTaken
		case errors.Is(err, domain.ErrDuplicateEmail):
			notice = apierrors.MsgEmailTaken
		default:
			zap.L().Error("failed to register user", zap.String("username", input.Username), zap.Error(err))
			renderError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
			return
		}

		render(c, http.StatusOK, "register.html", views.Page{
			Title:  "Register",
			Form:   echo,
			Notice: apierrors.GetTransErrorMsg(notice, lang),
		})
		return
	}

	middleware.AddFlash(c, apierrors.MsgRegistrationSuccessful)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			zap.L().Warn("failed to revoke session", zap.Error(err))
		}
	}

	middleware.ClearSessionCookie(c)
	middleware.AddFlash(c, apierrors.MsgLoggedOut)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
