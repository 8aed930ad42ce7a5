// Package echo provides adapters for using err-taxonomy with Echo framework.
package echo

import (
	"net/http"

	errtaxonomy "github.com/blackwell-systems/err-taxonomy"
	echofw "github.com/labstack/echo/v4"
)

// Trace adapts err-taxonomy trace middleware to Echo's middleware interface.
//
// This generates or propagates trace IDs and makes them available via
// errtaxonomy.TraceIDFromRequest(c.Request()).
//
// Example:
//
//	e := echo.New()
//	e.Use(Trace)
//	e.GET("/user", func(c echo.Context) error {
//	    traceID := errtaxonomy.TraceIDFromRequest(c.Request())
//	    // ...
//	    return nil
//	})
func Trace(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		// Wrap with err-taxonomy trace middleware
		handler := errtaxonomy.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Update context with traced request
			c.SetRequest(r)
			_ = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return nil
	}
}

// Write sends a structured error response in the taxonomy envelope format.
//
// This is a convenience wrapper that extracts c.Response().Writer and c.Request()
// to call errtaxonomy.Write.
//
// Example:
//
//	e.GET("/user", func(c echo.Context) error {
//	    if userID == "" {
//	        return Write(c, errtaxonomy.FileNotExists.New().SetMessage("user not found"))
//	    }
//	    // ...
//	    return nil
//	})
func Write(c echofw.Context, err error) error {
	errtaxonomy.Write(c.Response().Writer, c.Request(), err)
	return nil
}
