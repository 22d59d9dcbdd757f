package validate_test

import (
	"testing"

	"github.com/Maicol0120/dulce-bendicion/internal/validate"
)

func TestUsername(t *testing.T) {
	if u, ok := validate.Username("  maria "); !ok || u != "maria" {
		t.Fatalf("want maria/true, got %q/%v", u, ok)
	}
	// case is preserved so lookups stay exact-match
	if u, ok := validate.Username("Maria"); !ok || u != "Maria" {
		t.Fatalf("want Maria/true, got %q/%v", u, ok)
	}
	if _, ok := validate.Username(""); ok {
		t.Fatal("empty username accepted")
	}
	if _, ok := validate.Username("ma ria"); ok {
		t.Fatal("username with spaces accepted")
	}
}

func TestNumericCoercionNeverRejects(t *testing.T) {
	if got := validate.Qty("42"); got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
	// bad input coerces to zero instead of failing the request
	for _, s := range []string{"", "many", "1.5", "NaN"} {
		if got := validate.Qty(s); got != 0 {
			t.Fatalf("Qty(%q): want 0, got %d", s, got)
		}
	}
	if got := validate.Price("2.50"); got != 2.5 {
		t.Fatalf("want 2.5, got %v", got)
	}
	if got := validate.Price("gratis"); got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
}

func TestQueryClamps(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	if got := validate.Query(string(long)); len(got) != 50 {
		t.Fatalf("want clamp to 50, got %d", len(got))
	}
	if got := validate.Query("  pan  "); got != "pan" {
		t.Fatalf("want trimmed pan, got %q", got)
	}
}
