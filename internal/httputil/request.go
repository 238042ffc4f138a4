package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON request body to the value passed in the interface.
//
// Writes must declare a JSON content type, anything else is rejected with
// ErrUnsupportedMediaType so that the caller can answer 415.
func BindData(c *gin.Context, data any) error {
	if c.ContentType() != "application/json" {
		return ErrUnsupportedMediaType
	}

	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
