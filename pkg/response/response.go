package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "meeting-room-booking/pkg/errors"
)

// NewOKResp returns a new success envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Status:  StatusSuccess,
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error envelope. HTTPErrors keep their status and message,
// anything else is reported as a 500 with a generic message.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		httpErr = pkgErrors.ErrInternalServerError
	}
	c.JSON(httpErr.Code, Resp{
		Status:  StatusError,
		Message: httpErr.Message,
	})
}

// Abort is Error for middleware: the chain stops after the envelope is written.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		Status:  StatusError,
		Message: "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		Status:  StatusError,
		Message: "Forbidden",
	})
}
