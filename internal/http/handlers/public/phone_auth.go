package public

import (
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/i18n"

	handlershared "github.com/soukly/soukly/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// SendPhoneOTPRequest asks for a login code over WhatsApp.
type SendPhoneOTPRequest struct {
	Phone          string                              `json:"phone" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// VerifyPhoneOTPRequest redeems a login code.
type VerifyPhoneOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// SendPhoneOTP sends a one-time login code to the phone over WhatsApp.
func (h *Handler) SendPhoneOTP(c *gin.Context) {
	var req SendPhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if !h.verifyCaptchaScene(c, constants.CaptchaSceneSendOTP, req.CaptchaPayload) {
		return
	}

	locale := i18n.ResolveLocale(c)
	if err := h.PhoneAuthService.SendOTP(req.Phone, locale); err != nil {
		respondWithMappedError(c, err, phoneOTPSendErrorRules, response.CodeInternal, "error.otp_send_failed")
		return
	}
	response.Success(c, gin.H{"sent": true})
}

// VerifyPhoneOTP redeems the code, creating the account on first login.
func (h *Handler) VerifyPhoneOTP(c *gin.Context) {
	var req VerifyPhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	user, token, expiresAt, err := h.PhoneAuthService.VerifyOTP(req.Phone, req.Code, locale)
	if err != nil {
		respondWithMappedError(c, err, phoneOTPVerifyErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, authPayload(user, token, expiresAt))
}
