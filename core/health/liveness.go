package health

import (
	"github.com/zephyrhq/zephyr/core/handler"
	"github.com/zephyrhq/zephyr/core/response"
)

// Liveness reports that the process is up. Always 200 with "ALIVE", no
// dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// NoContent replies 204 with an empty body, for load balancers that probe at
// high frequency.
func NoContent[C handler.Context](C) handler.Response {
	return response.NoContent()
}
