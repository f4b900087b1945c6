package sport

import "testing"

func TestKindFromSlug(t *testing.T) {
	t.Parallel()

	cases := map[string]Kind{
		"football":         KindFootball,
		"futsal-putra":     KindFootball,
		"basketball-putri": KindBasketball,
		"3x3-BASKETBALL":   KindBasketball,
		"":                 KindFootball,
	}
	for slug, want := range cases {
		if got := KindFromSlug(slug); got != want {
			t.Fatalf("KindFromSlug(%q)=%s want %s", slug, got, want)
		}
	}
}

func TestSportValidate(t *testing.T) {
	t.Parallel()

	if err := (Sport{ID: "s1", Slug: "football"}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if err := (Sport{ID: "s1", Slug: "football", Name: "Football"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
