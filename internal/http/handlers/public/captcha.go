package public

import (
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCaptchaConfig tells the client which scenes need a captcha.
func (h *Handler) GetCaptchaConfig(c *gin.Context) {
	response.Success(c, gin.H{
		"provider": h.Config.Captcha.Provider,
		"scenes": gin.H{
			constants.CaptchaSceneLogin:   h.CaptchaService.RequiredForScene(constants.CaptchaSceneLogin),
			constants.CaptchaSceneSendOTP: h.CaptchaService.RequiredForScene(constants.CaptchaSceneSendOTP),
		},
	})
}

// GetCaptchaImage mints a new image challenge.
func (h *Handler) GetCaptchaImage(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, challenge)
}
