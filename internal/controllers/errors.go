package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/budtrack/backend/internal/httputil"
	"github.com/budtrack/backend/internal/mason"
	"github.com/budtrack/backend/internal/models"
	"github.com/budtrack/backend/internal/routes"
	"github.com/budtrack/backend/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrUserNameNotUnique),
		errors.Is(err, models.ErrUserEmailNotUnique),
		errors.Is(err, models.ErrBudgetNameNotUnique),
		errors.Is(err, models.ErrExpenseNameNotUnique):
		return http.StatusConflict

	case errors.Is(err, httputil.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType

	default:
		// Validation failures, unparseable bodies and bad dates
		return http.StatusBadRequest
	}
}

// title returns the human readable title for an error status.
func title(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request body"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusConflict:
		return "Already exists"
	case http.StatusUnsupportedMediaType:
		return "Unsupported media type"
	default:
		return "Internal server error"
	}
}

// render writes the document with the Mason content type.
func render(c *gin.Context, status int, doc *mason.Document) {
	body, err := json.Marshal(doc)
	if err != nil {
		log.Error().Msgf("%T: %v", err, err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(status, mason.ContentType, body)
}

// renderError writes an error document. The status code carries the
// machine readable classification, the body is for humans.
func renderError(c *gin.Context, status int, title string, details ...string) {
	doc := mason.New()
	doc.AddError(title, details...)
	doc.AddControl("profile", mason.Control{Href: routes.ErrorProfile()})

	render(c, status, doc)
}

// renderErr maps the error to its status code and writes the error document.
func renderErr(c *gin.Context, err error) {
	s := status(err)
	renderError(c, s, title(s), err.Error())
}

// bindValidated binds the JSON body and validates it against the schema.
func bindValidated(c *gin.Context, s schema.Schema) (map[string]any, error) {
	var body map[string]any
	if err := httputil.BindData(c, &body); err != nil {
		return nil, err
	}

	if err := schema.Validate(body, s); err != nil {
		return nil, err
	}

	return body, nil
}

// optString reads an optional string property from a validated body.
func optString(body map[string]any, key string) string {
	value, _ := body[key].(string)
	return value
}
