package httpadapter

import (
	"context"
	"slices"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Every ops route is read-only, so cross-origin callers only ever read.
var corsMethods = []string{consts.MethodGet, consts.MethodHead}

const corsMaxAge = "3600"

// corsMiddleware answers preflights itself and refuses ones asking for a
// method the ops surface does not serve.
func corsMiddleware() app.HandlerFunc {
	allowed := strings.Join(corsMethods, ",")
	return func(c context.Context, ctx *app.RequestContext) {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
		ctx.Response.Header.Add("Vary", "Origin")
		if string(ctx.Method()) != consts.MethodOptions {
			ctx.Next(c)
			return
		}
		requested := string(ctx.Request.Header.Peek("Access-Control-Request-Method"))
		if requested != "" && !slices.Contains(corsMethods, requested) {
			ctx.AbortWithStatus(consts.StatusMethodNotAllowed)
			return
		}
		ctx.Response.Header.Set("Access-Control-Allow-Methods", allowed)
		ctx.Response.Header.Set("Access-Control-Allow-Headers", "Accept")
		ctx.Response.Header.Set("Access-Control-Max-Age", corsMaxAge)
		ctx.AbortWithStatus(consts.StatusNoContent)
	}
}
