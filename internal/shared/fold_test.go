package shared_test

import (
	"testing"

	"stayfinder/internal/shared"
)

func TestFold_TurkishCityNames(t *testing.T) {
	cases := []struct{ in, want string }{
		{"İstanbul", "istanbul"},
		{"ISTANBUL", "istanbul"},
		{"istanbul", "istanbul"},
		{"Kuşadası", "kusadasi"},
		{"Çeşme", "cesme"},
		{"Ürgüp", "urgup"},
		{"Ağva", "agva"},
		{"denize sıfır", "denize sifir"},
		{"ŞÖMİNE", "somine"},
	}
	for _, c := range cases {
		if got := shared.Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldEqual(t *testing.T) {
	if !shared.FoldEqual("İstanbul", "ISTANBUL") {
		t.Fatal("expected İstanbul == ISTANBUL under folding")
	}
	if shared.FoldEqual("Antalya", "Alanya") {
		t.Fatal("distinct cities must not fold together")
	}
}
