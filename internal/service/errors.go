package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes and localized messages.
var (
	ErrQuantityInvalid      = errors.New("quantity must be at least 1")
	ErrInvalidLineItem      = errors.New("invalid line item")
	ErrMixedCurrency        = errors.New("mixed currencies in seller group")
	ErrProductNotAvailable  = errors.New("product not available")
	ErrProductSlugExists    = errors.New("product slug already exists")
	ErrEmailExists          = errors.New("email already registered")
	ErrEmailInvalid         = errors.New("email invalid")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordWeak         = errors.New("password does not meet policy")
	ErrUserDisabled         = errors.New("user disabled")
	ErrPhoneInvalid         = errors.New("phone number invalid")
	ErrCodeInvalid          = errors.New("verification code invalid")
	ErrCodeExpired          = errors.New("verification code expired")
	ErrCodeAttemptsExceeded = errors.New("verification attempts exceeded")
	ErrCodeSendInterval     = errors.New("verification code sent too recently")
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrOAuthStateInvalid    = errors.New("oauth state invalid")
	ErrOAuthExchangeFailed  = errors.New("oauth exchange failed")
	ErrOAuthDisabled        = errors.New("oauth provider disabled")
	ErrSellerExists         = errors.New("seller profile already exists")
	ErrSellerRequired       = errors.New("seller profile required")
	ErrSellerNotFound       = errors.New("seller not found")
	ErrAPIKeyInvalid        = errors.New("api key invalid")
	ErrNotFound             = errors.New("record not found")
	ErrForbidden            = errors.New("forbidden")
)
