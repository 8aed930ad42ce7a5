// Package gin provides adapters for using err-taxonomy with Gin framework.
package gin

import (
	"net/http"

	errtaxonomy "github.com/blackwell-systems/err-taxonomy"
	"github.com/gin-gonic/gin"
)

// Trace wires err-taxonomy trace ID middleware into Gin's middleware chain.
//
// This generates or propagates trace IDs and makes them available via
// errtaxonomy.TraceIDFromRequest(c.Request).
//
// Example:
//
//	r := gin.Default()
//	r.Use(Trace())
//	r.GET("/user", func(c *gin.Context) {
//	    traceID := errtaxonomy.TraceIDFromRequest(c.Request)
//	    // ...
//	})
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Wrap remaining chain with err-taxonomy trace middleware
		handler := errtaxonomy.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Update context with traced request
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Write sends a structured error response in the taxonomy envelope format.
//
// This is a convenience wrapper that extracts c.Writer and c.Request
// to call errtaxonomy.Write.
//
// Example:
//
//	r.GET("/user", func(c *gin.Context) {
//	    if userID == "" {
//	        Write(c, errtaxonomy.FileNotExists.New().SetMessage("user not found"))
//	        return
//	    }
//	    // ...
//	})
func Write(c *gin.Context, err error) {
	errtaxonomy.Write(c.Writer, c.Request, err)
}
