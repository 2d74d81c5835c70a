package seller

import (
	"errors"

	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/provider"
	"github.com/soukly/soukly/internal/service"

	handlershared "github.com/soukly/soukly/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// Handler serves the seller dashboard and the machine API.
type Handler struct {
	*provider.Container
}

// New creates the seller handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// resolveSeller resolves the acting seller. Machine API requests carry the
// seller ID set by the API key middleware; dashboard requests resolve it
// from the authenticated user.
func (h *Handler) resolveSeller(c *gin.Context) (*models.Seller, bool) {
	if value, exists := c.Get("seller_id"); exists {
		id, ok := value.(uint)
		if !ok || id == 0 {
			respondError(c, response.CodeInternal, "error.internal", nil)
			return nil, false
		}
		seller, err := h.SellerRepo.GetByID(id)
		if err != nil || seller == nil {
			respondError(c, response.CodeUnauthorized, "error.api_key_invalid", err)
			return nil, false
		}
		return seller, true
	}

	uid, ok := getUserID(c)
	if !ok {
		return nil, false
	}
	seller, err := h.SellerService.GetByUserID(uid)
	if err != nil {
		if errors.Is(err, service.ErrSellerRequired) {
			respondError(c, response.CodeForbidden, "error.seller_required", nil)
			return nil, false
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return nil, false
	}
	return seller, true
}
