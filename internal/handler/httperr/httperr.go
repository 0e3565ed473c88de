package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error envelope. Its shape mirrors the backend's own
// error envelope so the frontend handles both uniformly.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Details string `json:"details,omitempty"`
	} `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Details = details

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
