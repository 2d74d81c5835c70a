package public

import (
	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/i18n"

	"github.com/gin-gonic/gin"
)

// OAuthCallbackRequest redeems the provider callback.
type OAuthCallbackRequest struct {
	State string `json:"state" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// GoogleAuthURL issues the Google authorize URL with a one-shot state nonce.
func (h *Handler) GoogleAuthURL(c *gin.Context) {
	url, err := h.OAuthService.AuthURL(c.Request.Context())
	if err != nil {
		respondWithMappedError(c, err, oauthErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, gin.H{"url": url})
}

// GoogleCallback exchanges the authorization code and signs the user in.
func (h *Handler) GoogleCallback(c *gin.Context) {
	var req OAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	user, token, expiresAt, err := h.OAuthService.Exchange(c.Request.Context(), req.State, req.Code, locale)
	if err != nil {
		respondWithMappedError(c, err, oauthErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, authPayload(user, token, expiresAt))
}
