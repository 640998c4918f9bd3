package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MultipartOverhead is the allowance for multipart headers and small form
// fields on top of the file size limit
const MultipartOverhead int64 = 1 << 20

// LimitBody caps how much of the request body any handler can read.
// Reads past limit fail with *http.MaxBytesError; a declared Content-Length
// above limit fails on the first read without touching the body.
func LimitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.Request.Body = rejectedBody{ReadCloser: c.Request.Body, limit: limit}
		} else {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// BodyTooLarge reports whether err came from a body cut off by LimitBody
func BodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

type rejectedBody struct {
	io.ReadCloser
	limit int64
}

func (b rejectedBody) Read([]byte) (int, error) {
	return 0, &http.MaxBytesError{Limit: b.limit}
}
