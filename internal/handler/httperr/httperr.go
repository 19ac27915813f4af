package httperr

import (
	"net/http"
	"strconv"

	"qr-loyalty-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error contract: a category, a fixed status, and a
// user-safe message. Internal detail never rides along.
type Response struct {
	Status   int    `json:"-"`
	Category string `json:"category"`
	Error    struct {
		Message string `json:"message"`
	} `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Category: string(errs.KindOf(err))}
	resp.Error.Message = errs.SanitizeMessage(msg)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithAppError maps a pipeline error to its categorized shape.
// Unclassified errors collapse to the generic 500 response.
func AbortWithAppError(c *gin.Context, err error) {
	appErr, ok := errs.AsAppError(err)
	if !ok {
		AbortWithError(c, http.StatusInternalServerError, err,
			"An unexpected error occurred. Please try again.")
		return
	}

	if appErr.Kind == errs.KindRateLimit {
		if retryAfter, found := appErr.Context["retry_after_seconds"]; found {
			if seconds, isInt := retryAfter.(int64); isInt && seconds > 0 {
				c.Header("Retry-After", strconv.FormatInt(seconds, 10))
			}
		}
	}

	AbortWithError(c, appErr.HTTPStatus(), err, appErr.UserMessage())
}
