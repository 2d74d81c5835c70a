package i18n

import (
	"fmt"
	"strings"

	"github.com/soukly/soukly/internal/constants"

	"github.com/gin-gonic/gin"
)

// localeContextKey is set by auth middleware from the user's saved preference.
const localeContextKey = "locale"

// messages maps key -> lang -> text. Keys missing a language fall back to
// French, the site default.
var messages = map[string]map[string]string{
	"error.bad_request": {
		constants.LangFR: "Requête invalide",
		constants.LangAR: "طلب غير صالح",
		constants.LangEN: "Invalid request",
	},
	"error.unauthorized": {
		constants.LangFR: "Authentification requise",
		constants.LangAR: "المصادقة مطلوبة",
		constants.LangEN: "Authentication required",
	},
	"error.forbidden": {
		constants.LangFR: "Accès refusé",
		constants.LangAR: "تم رفض الوصول",
		constants.LangEN: "Access denied",
	},
	"error.not_found": {
		constants.LangFR: "Ressource introuvable",
		constants.LangAR: "المورد غير موجود",
		constants.LangEN: "Resource not found",
	},
	"error.internal": {
		constants.LangFR: "Erreur interne du serveur",
		constants.LangAR: "خطأ داخلي في الخادم",
		constants.LangEN: "Internal server error",
	},
	"error.rate_limited": {
		constants.LangFR: "Trop de requêtes, réessayez dans %d secondes",
		constants.LangAR: "طلبات كثيرة جدًا، أعد المحاولة بعد %d ثانية",
		constants.LangEN: "Too many requests, retry in %d seconds",
	},
	"error.login_too_many": {
		constants.LangFR: "Trop de tentatives de connexion, réessayez dans %d secondes",
		constants.LangAR: "محاولات تسجيل دخول كثيرة جدًا، أعد المحاولة بعد %d ثانية",
		constants.LangEN: "Too many login attempts, retry in %d seconds",
	},
	"error.email_exists": {
		constants.LangFR: "Cette adresse e-mail est déjà utilisée",
		constants.LangAR: "هذا البريد الإلكتروني مستخدم بالفعل",
		constants.LangEN: "This email address is already in use",
	},
	"error.email_invalid": {
		constants.LangFR: "Adresse e-mail invalide",
		constants.LangAR: "بريد إلكتروني غير صالح",
		constants.LangEN: "Invalid email address",
	},
	"error.invalid_credentials": {
		constants.LangFR: "E-mail ou mot de passe incorrect",
		constants.LangAR: "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		constants.LangEN: "Incorrect email or password",
	},
	"error.password_weak": {
		constants.LangFR: "Le mot de passe ne respecte pas la politique de sécurité",
		constants.LangAR: "كلمة المرور لا تستوفي سياسة الأمان",
		constants.LangEN: "Password does not meet the security policy",
	},
	"error.password_min_length": {
		constants.LangFR: "Le mot de passe doit contenir au moins %d caractères",
		constants.LangAR: "يجب أن تحتوي كلمة المرور على %d أحرف على الأقل",
		constants.LangEN: "Password must be at least %d characters",
	},
	"error.password_require_upper": {
		constants.LangFR: "Le mot de passe doit contenir une majuscule",
		constants.LangAR: "يجب أن تحتوي كلمة المرور على حرف كبير",
		constants.LangEN: "Password must contain an uppercase letter",
	},
	"error.password_require_lower": {
		constants.LangFR: "Le mot de passe doit contenir une minuscule",
		constants.LangAR: "يجب أن تحتوي كلمة المرور على حرف صغير",
		constants.LangEN: "Password must contain a lowercase letter",
	},
	"error.password_require_number": {
		constants.LangFR: "Le mot de passe doit contenir un chiffre",
		constants.LangAR: "يجب أن تحتوي كلمة المرور على رقم",
		constants.LangEN: "Password must contain a digit",
	},
	"error.password_require_special": {
		constants.LangFR: "Le mot de passe doit contenir un caractère spécial",
		constants.LangAR: "يجب أن تحتوي كلمة المرور على رمز خاص",
		constants.LangEN: "Password must contain a special character",
	},
	"error.user_disabled": {
		constants.LangFR: "Ce compte est désactivé",
		constants.LangAR: "هذا الحساب معطل",
		constants.LangEN: "This account is disabled",
	},
	"error.phone_invalid": {
		constants.LangFR: "Numéro de téléphone invalide",
		constants.LangAR: "رقم هاتف غير صالح",
		constants.LangEN: "Invalid phone number",
	},
	"error.code_invalid": {
		constants.LangFR: "Code de vérification incorrect",
		constants.LangAR: "رمز التحقق غير صحيح",
		constants.LangEN: "Incorrect verification code",
	},
	"error.code_expired": {
		constants.LangFR: "Le code de vérification a expiré",
		constants.LangAR: "انتهت صلاحية رمز التحقق",
		constants.LangEN: "Verification code has expired",
	},
	"error.code_attempts_exceeded": {
		constants.LangFR: "Trop de tentatives, demandez un nouveau code",
		constants.LangAR: "محاولات كثيرة جدًا، اطلب رمزًا جديدًا",
		constants.LangEN: "Too many attempts, request a new code",
	},
	"error.code_send_interval": {
		constants.LangFR: "Veuillez patienter avant de demander un nouveau code",
		constants.LangAR: "يرجى الانتظار قبل طلب رمز جديد",
		constants.LangEN: "Please wait before requesting a new code",
	},
	"error.captcha_required": {
		constants.LangFR: "Captcha requis",
		constants.LangAR: "مطلوب رمز التحقق المرئي",
		constants.LangEN: "Captcha required",
	},
	"error.captcha_invalid": {
		constants.LangFR: "Captcha incorrect",
		constants.LangAR: "رمز التحقق المرئي غير صحيح",
		constants.LangEN: "Incorrect captcha",
	},
	"error.oauth_state_invalid": {
		constants.LangFR: "Session de connexion invalide ou expirée",
		constants.LangAR: "جلسة تسجيل الدخول غير صالحة أو منتهية",
		constants.LangEN: "Login session invalid or expired",
	},
	"error.oauth_exchange_failed": {
		constants.LangFR: "La connexion avec le fournisseur a échoué",
		constants.LangAR: "فشل تسجيل الدخول عبر المزود",
		constants.LangEN: "Sign-in with the provider failed",
	},
	"error.product_not_available": {
		constants.LangFR: "Ce produit n'est plus disponible",
		constants.LangAR: "هذا المنتج لم يعد متوفرًا",
		constants.LangEN: "This product is no longer available",
	},
	"error.quantity_invalid": {
		constants.LangFR: "La quantité doit être au moins 1",
		constants.LangAR: "يجب أن تكون الكمية 1 على الأقل",
		constants.LangEN: "Quantity must be at least 1",
	},
	"error.line_item_invalid": {
		constants.LangFR: "Article du panier invalide",
		constants.LangAR: "عنصر السلة غير صالح",
		constants.LangEN: "Invalid cart item",
	},
	"error.mixed_currency": {
		constants.LangFR: "Les articles d'un même vendeur doivent partager la même devise",
		constants.LangAR: "يجب أن تكون عناصر البائع الواحد بنفس العملة",
		constants.LangEN: "Items from one seller must share a single currency",
	},
	"error.cart_fetch_failed": {
		constants.LangFR: "Impossible de charger le panier",
		constants.LangAR: "تعذر تحميل السلة",
		constants.LangEN: "Could not load the cart",
	},
	"error.cart_update_failed": {
		constants.LangFR: "Impossible de mettre à jour le panier",
		constants.LangAR: "تعذر تحديث السلة",
		constants.LangEN: "Could not update the cart",
	},
	"error.seller_exists": {
		constants.LangFR: "Un profil vendeur existe déjà pour ce compte",
		constants.LangAR: "يوجد ملف بائع بالفعل لهذا الحساب",
		constants.LangEN: "A seller profile already exists for this account",
	},
	"error.seller_required": {
		constants.LangFR: "Un profil vendeur est requis",
		constants.LangAR: "مطلوب ملف بائع",
		constants.LangEN: "A seller profile is required",
	},
	"error.api_key_invalid": {
		constants.LangFR: "Clé API invalide ou révoquée",
		constants.LangAR: "مفتاح API غير صالح أو ملغى",
		constants.LangEN: "Invalid or revoked API key",
	},
	"error.token_invalid": {
		constants.LangFR: "Jeton d'authentification invalide",
		constants.LangAR: "رمز المصادقة غير صالح",
		constants.LangEN: "Invalid authentication token",
	},
	"error.auth_header_missing": {
		constants.LangFR: "En-tête d'authentification manquant",
		constants.LangAR: "ترويسة المصادقة مفقودة",
		constants.LangEN: "Missing authorization header",
	},
	"error.auth_header_invalid": {
		constants.LangFR: "En-tête d'authentification invalide",
		constants.LangAR: "ترويسة المصادقة غير صالحة",
		constants.LangEN: "Invalid authorization header",
	},
	"error.rate_limit_unavailable": {
		constants.LangFR: "Service de limitation indisponible",
		constants.LangAR: "خدمة الحد من الطلبات غير متاحة",
		constants.LangEN: "Rate limiting service unavailable",
	},
	"error.slug_exists": {
		constants.LangFR: "Ce slug de produit est déjà utilisé",
		constants.LangAR: "معرف المنتج هذا مستخدم بالفعل",
		constants.LangEN: "This product slug is already in use",
	},
	"error.oauth_disabled": {
		constants.LangFR: "La connexion via ce fournisseur est désactivée",
		constants.LangAR: "تسجيل الدخول عبر هذا المزود معطل",
		constants.LangEN: "Sign-in through this provider is disabled",
	},
	"error.checkout_failed": {
		constants.LangFR: "Impossible de préparer la commande",
		constants.LangAR: "تعذر تجهيز الطلب",
		constants.LangEN: "Could not prepare the order",
	},
	"error.otp_send_failed": {
		constants.LangFR: "Impossible d'envoyer le code de vérification",
		constants.LangAR: "تعذر إرسال رمز التحقق",
		constants.LangEN: "Could not send the verification code",
	},
	"error.user_id_invalid": {
		constants.LangFR: "Identifiant utilisateur invalide",
		constants.LangAR: "معرف المستخدم غير صالح",
		constants.LangEN: "Invalid user identifier",
	},
	"error.user_id_type_invalid": {
		constants.LangFR: "Type d'identifiant utilisateur invalide",
		constants.LangAR: "نوع معرف المستخدم غير صالح",
		constants.LangEN: "Invalid user identifier type",
	},
	"error.cart_id_invalid": {
		constants.LangFR: "Identifiant de panier invalide",
		constants.LangAR: "معرف السلة غير صالح",
		constants.LangEN: "Invalid cart identifier",
	},
	"cart.item_added": {
		constants.LangFR: "Produit ajouté au panier",
		constants.LangAR: "تمت إضافة المنتج إلى السلة",
		constants.LangEN: "Product added to cart",
	},
	"cart.quantity_added": {
		constants.LangFR: "Quantité ajoutée au panier",
		constants.LangAR: "تمت إضافة الكمية إلى السلة",
		constants.LangEN: "Quantity added to cart",
	},
	"cart.item_removed": {
		constants.LangFR: "Produit retiré du panier",
		constants.LangAR: "تمت إزالة المنتج من السلة",
		constants.LangEN: "Product removed from cart",
	},
	"order.new_order": {
		constants.LangFR: "Nouvelle commande:",
		constants.LangAR: "طلب جديد:",
		constants.LangEN: "New order:",
	},
	"order.total": {
		constants.LangFR: "Total:",
		constants.LangAR: "المجموع:",
		constants.LangEN: "Total:",
	},
	"otp.message": {
		constants.LangFR: "Votre code de vérification est: %s",
		constants.LangAR: "رمز التحقق الخاص بك هو: %s",
		constants.LangEN: "Your verification code is: %s",
	},
}

// T returns the message for key in lang, falling back to French, then to the
// key itself when the catalog has no entry.
func T(lang, key string) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	if text, ok := entry[NormalizeLang(lang)]; ok {
		return text
	}
	if text, ok := entry[constants.LangFR]; ok {
		return text
	}
	return key
}

// Sprintf localizes key and applies fmt arguments.
func Sprintf(lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// NormalizeLang maps arbitrary language tags onto a supported language code.
func NormalizeLang(lang string) string {
	normalized := strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(normalized, "-_"); idx > 0 {
		normalized = normalized[:idx]
	}
	for _, supported := range constants.SupportedLangs {
		if normalized == supported {
			return supported
		}
	}
	return constants.LangFR
}

// IsRTL reports whether the language is written right to left.
func IsRTL(lang string) bool {
	return NormalizeLang(lang) == constants.LangAR
}

// ResolveLocale picks the display language for a request: explicit `lang`
// query, then the authenticated user's saved preference, then the
// Accept-Language header.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LangFR
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return NormalizeLang(lang)
	}
	if value, ok := c.Get(localeContextKey); ok {
		if lang, ok := value.(string); ok && lang != "" {
			return NormalizeLang(lang)
		}
	}
	if header := c.GetHeader("Accept-Language"); header != "" {
		first := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
		if idx := strings.Index(first, ";"); idx > 0 {
			first = first[:idx]
		}
		return NormalizeLang(first)
	}
	return constants.LangFR
}

// SetLocale stores the resolved locale on the request context.
func SetLocale(c *gin.Context, lang string) {
	if c == nil {
		return
	}
	c.Set(localeContextKey, NormalizeLang(lang))
}
