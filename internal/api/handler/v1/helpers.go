package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
)

type validator interface {
	Validate() error
}

// bindJSON decodes the body into req and validates it. It renders the 400
// itself and reports whether the handler may go on.
func bindJSON(ctx *gin.Context, req validator) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	return true
}

func pathID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		err = fmt.Errorf("invalid %s %q", param, ctx.Param(param))
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, false
	}

	return uint(id), true
}

func queryInt(ctx *gin.Context, key string, def int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}

	return v, nil
}
