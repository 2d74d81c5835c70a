package shared

import "github.com/soukly/soukly/internal/service"

// CaptchaPayloadRequest carries the captcha answer in request bodies.
type CaptchaPayloadRequest struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// ToServicePayload converts the request payload into the service layer shape.
func (p CaptchaPayloadRequest) ToServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:   p.CaptchaID,
		CaptchaCode: p.CaptchaCode,
	}
}
