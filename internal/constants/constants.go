package constants

// Display language constants
const (
	LangFR = "fr"
	LangAR = "ar"
	LangEN = "en"
)

// Supported display languages in fallback order (French is the site default).
var SupportedLangs = []string{LangFR, LangAR, LangEN}

// Currency constants
const (
	CurrencyMAD     = "MAD"
	CurrencyUSD     = "USD"
	CurrencyEUR     = "EUR"
	DefaultCurrency = CurrencyMAD
)

// Supported listing currencies.
var SupportedCurrencies = []string{CurrencyMAD, CurrencyUSD, CurrencyEUR}

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// Auth provider constants
const (
	AuthProviderEmail  = "email"
	AuthProviderPhone  = "phone"
	AuthProviderGoogle = "google"
)

// Verification code purpose constants
const (
	VerifyPurposeLogin  = "login"
	VerifyPurposeSeller = "seller_login"
)

// Queue constants
const (
	QueueDefault      = "default"
	TaskWhatsAppOTP   = "whatsapp:send_otp"
	TaskWhatsAppOrder = "whatsapp:send_order"
)

// Captcha provider constants
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Captcha scene constants
const (
	CaptchaSceneLogin   = "login"
	CaptchaSceneSendOTP = "send_otp"
)

// Cache key prefix default
const (
	RedisPrefixDefault = "souk"
)

// Cart header carrying the anonymous cart identity.
const (
	CartIDHeader = "X-Cart-ID"
)

// Authz role constants
const (
	RoleSeller = "seller"
)

// Default category seed. Sellers can extend these from the dashboard.
var DefaultCategories = map[string][]string{
	"Fashion":     {"Men", "Women", "Kids", "Accessories"},
	"Beauty":      {"Makeup", "Skincare", "Haircare", "Fragrances"},
	"Electronics": {"Phones", "Computers", "TVs", "Accessories"},
	"Home":        {"Furniture", "Decoration", "Kitchen", "Bathroom"},
	"Jewelry":     {"Rings", "Necklaces", "Earrings", "Bracelets"},
	"Food":        {"Snacks", "Beverages", "Desserts", "Organic"},
	"Sports":      {"Clothing", "Equipment", "Shoes", "Accessories"},
}
