// Package httperr defines the error envelope every API reply uses.
package httperr

import "github.com/gin-gonic/gin"

// Response carries the client-facing message; Status travels out of band.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the enveloped reply and records err on the context
// so the logging middleware sees the underlying cause. msg is what the
// client sees; err is what the logs see.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil error")
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
