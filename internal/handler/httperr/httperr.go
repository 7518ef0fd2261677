package httperr

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is where the logging middleware keeps the request id.
const RequestIDKey = "request_id"

// Response is the error body of every endpoint. The request id lets an admin
// quote a failed submission when reporting it.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		RequestID string `json:"requestId,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	if id, ok := c.Get(RequestIDKey); ok {
		resp.Error.RequestID, _ = id.(string)
	}
	return resp
}

// AbortWithError keeps err on the gin context so ErrorHandler can log it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
