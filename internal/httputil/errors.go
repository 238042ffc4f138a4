package httputil

import "errors"

var (
	ErrInvalidBody          = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty     = errors.New("the request body must not be empty")
	ErrUnsupportedMediaType = errors.New("requests must have the content type application/json")
)
