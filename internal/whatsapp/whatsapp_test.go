package whatsapp

import (
	"strings"
	"testing"
)

func TestBuildDeepLinkStripsNonDigits(t *testing.T) {
	link := BuildDeepLink("+212 600-000-001", "Nouvelle commande:")
	if !strings.HasPrefix(link, "https://wa.me/212600000001?text=") {
		t.Fatalf("unexpected link: %s", link)
	}
}

func TestBuildDeepLinkEscapesMessage(t *testing.T) {
	link := BuildDeepLink("212600000001", "1. Tapis x 2\n   890 MAD x 2 = 1780 MAD")
	if strings.ContainsAny(link[strings.Index(link, "?text=")+6:], " \n") {
		t.Fatalf("message not escaped: %s", link)
	}
	if !strings.Contains(link, "%0A") {
		t.Fatalf("newline should be percent-encoded: %s", link)
	}
}
