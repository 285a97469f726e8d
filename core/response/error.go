package response

import (
	"net/http"

	"github.com/zephyrhq/zephyr/core/handler"
)

// Error returns a Response that simply propagates err, deferring rendering to
// the router's error handler. Useful when a handler wants to fail after it
// has already decided on a response path:
//
//	func handle(ctx *router.Context) handler.Response {
//		asset, err := load(ctx.Param("*"))
//		if err != nil {
//			return response.Error(response.ErrNotFound.WithError(err))
//		}
//		return response.Bytes(asset.Data, asset.ContentType)
//	}
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
