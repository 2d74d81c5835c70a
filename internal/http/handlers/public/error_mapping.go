package public

import (
	"errors"

	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds one business error to its API response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidLineItem, code: response.CodeBadRequest, key: "error.line_item_invalid"},
	{target: service.ErrMixedCurrency, code: response.CodeBadRequest, key: "error.mixed_currency"},
}

var phoneOTPSendErrorRules = []mappedHandlerError{
	{target: service.ErrPhoneInvalid, code: response.CodeBadRequest, key: "error.phone_invalid"},
	{target: service.ErrCodeSendInterval, code: response.CodeTooManyRequests, key: "error.code_send_interval"},
}

var phoneOTPVerifyErrorRules = []mappedHandlerError{
	{target: service.ErrPhoneInvalid, code: response.CodeBadRequest, key: "error.phone_invalid"},
	{target: service.ErrCodeInvalid, code: response.CodeBadRequest, key: "error.code_invalid"},
	{target: service.ErrCodeExpired, code: response.CodeBadRequest, key: "error.code_expired"},
	{target: service.ErrCodeAttemptsExceeded, code: response.CodeBadRequest, key: "error.code_attempts_exceeded"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
}

var oauthErrorRules = []mappedHandlerError{
	{target: service.ErrOAuthDisabled, code: response.CodeBadRequest, key: "error.oauth_disabled"},
	{target: service.ErrOAuthStateInvalid, code: response.CodeBadRequest, key: "error.oauth_state_invalid"},
	{target: service.ErrOAuthExchangeFailed, code: response.CodeBadRequest, key: "error.oauth_exchange_failed"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
}
