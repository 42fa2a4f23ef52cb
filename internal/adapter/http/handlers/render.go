package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/adapter/http/validation"
	"todoapp/internal/adapter/http/views"
	"todoapp/pkg/apierrors"
	"todoapp/pkg/translator"
)

// render fills the request-scoped parts of the page and writes the template.
func render(c *gin.Context, status int, name string, page views.Page) {
	lang := middleware.GetLang(c)
	page.Lang = lang
	_, page.Authenticated = middleware.CurrentUserID(c)

	for _, messageID := range middleware.PopFlashes(c) {
		page.Flashes = append(page.Flashes, translator.Localize(messageID, lang, nil))
	}

	c.HTML(status, name, page)
}

func renderError(c *gin.Context, status int, messageID string) {
	render(c, status, "error.html", views.Page{
		Title: http.StatusText(status),
		Data: views.ErrorData{
			Code:    status,
			Message: apierrors.GetTransErrorMsg(messageID, middleware.GetLang(c)),
		},
	})
}

func translateFieldErrors(fieldErrors validation.FieldErrors, lang string) map[string]string {
	if len(fieldErrors) == 0 {
		return nil
	}
	translated := make(map[string]string, len(fieldErrors))
	for field, fe := range fieldErrors {
		translated[field] = translator.Localize(fe.MessageID, lang, map[string]any{"Param": fe.Param})
	}
	return translated
}

// decodeForm parses the request body and maps it onto a form schema.
func decodeForm(c *gin.Context, form any) error {
	if err := c.Request.ParseForm(); err != nil {
		return err
	}
	return validation.Decode(c.Request.PostForm, form)
}

// parseTaskID reports false for non-numeric or zero ids.
func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		return 0, false
	}
	return taskID, true
}

// NotFound renders the 404 page for unknown routes.
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, apierrors.MsgPageNotFound)
}
