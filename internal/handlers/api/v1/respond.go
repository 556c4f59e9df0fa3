package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AnotherWeak/prova/internal/errors"
)

// errorResponse is the failure shape for every endpoint
type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// respondError maps a structured error onto its HTTP status
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	c.JSON(code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

// bindError wraps a gin binding failure as an invalid argument error
func bindError(c *gin.Context, err error) {
	respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
}

// pathID parses a numeric path parameter, reporting ok=false after
// responding with a validation error
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, errors.InvalidArgumentf("%s must be an integer, got %q", name, raw))
		return 0, false
	}
	return id, true
}

// pageParams parses the optional skip/limit query parameters
func pageParams(c *gin.Context) (skip, limit int32, ok bool) {
	parse := func(name, fallback string) (int32, bool) {
		raw := c.DefaultQuery(name, fallback)
		value, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			respondError(c, errors.InvalidArgumentf("%s must be an integer, got %q", name, raw))
			return 0, false
		}
		return int32(value), true
	}

	skip, ok = parse("skip", "0")
	if !ok {
		return 0, 0, false
	}
	limit, ok = parse("limit", "0")
	if !ok {
		return 0, 0, false
	}
	return skip, limit, true
}
