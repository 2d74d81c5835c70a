package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalizeLang(t *testing.T) {
	cases := map[string]string{
		"fr":    "fr",
		"FR":    "fr",
		"fr-MA": "fr",
		"ar":    "ar",
		"ar_MA": "ar",
		"en-US": "en",
		"de":    "fr",
		"":      "fr",
	}
	for input, expected := range cases {
		if got := NormalizeLang(input); got != expected {
			t.Fatalf("NormalizeLang(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestTFallsBackToFrench(t *testing.T) {
	if got := T("de", "order.new_order"); got != "Nouvelle commande:" {
		t.Fatalf("unexpected fallback text: %q", got)
	}
	if got := T("en", "order.new_order"); got != "New order:" {
		t.Fatalf("unexpected english text: %q", got)
	}
	if got := T("fr", "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should return the key, got %q", got)
	}
}

func TestResolveLocalePrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?lang=ar", nil)
	c.Request.Header.Set("Accept-Language", "en-US,en;q=0.9")
	SetLocale(c, "fr")
	if got := ResolveLocale(c); got != "ar" {
		t.Fatalf("query lang should win, got %q", got)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Accept-Language", "en-US,en;q=0.9")
	SetLocale(c, "ar")
	if got := ResolveLocale(c); got != "ar" {
		t.Fatalf("saved preference should beat header, got %q", got)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Accept-Language", "ar;q=0.8, fr;q=0.5")
	if got := ResolveLocale(c); got != "ar" {
		t.Fatalf("header should be used last, got %q", got)
	}
}

func TestIsRTL(t *testing.T) {
	if !IsRTL("ar-MA") {
		t.Fatalf("arabic should be RTL")
	}
	if IsRTL("fr") || IsRTL("en") {
		t.Fatalf("french/english should not be RTL")
	}
}
