package seller

import (
	"github.com/soukly/soukly/internal/http/response"

	"github.com/gin-gonic/gin"
)

// IssueAPIKeyRequest names a new machine API key.
type IssueAPIKeyRequest struct {
	Name string `json:"name"`
}

// IssueAPIKey mints a machine API key. The plaintext is returned once and
// only its hash is stored.
func (h *Handler) IssueAPIKey(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	var req IssueAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	key, plaintext, err := h.APIKeyService.Issue(seller.ID, req.Name)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"key":       key,
		"plaintext": plaintext,
	})
}

// ListAPIKeys returns the seller's keys, revoked ones included.
func (h *Handler) ListAPIKeys(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	keys, err := h.APIKeyService.List(seller.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"keys": keys})
}

// RevokeAPIKey disables a key immediately.
func (h *Handler) RevokeAPIKey(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	keyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.APIKeyService.Revoke(seller.ID, keyID); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"revoked": true})
}
