package public

import (
	"github.com/soukly/soukly/internal/i18n"
	"github.com/soukly/soukly/internal/provider"

	handlershared "github.com/soukly/soukly/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// Handler serves the public storefront and buyer APIs.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

func localizedMsg(c *gin.Context, key string) string {
	return i18n.T(i18n.ResolveLocale(c), key)
}
