package catalog

import "testing"

func TestAllIsOrderedAndComplete(t *testing.T) {
	all := All()
	if len(all) != 16 {
		t.Fatalf("catalog has %d features, want 16", len(all))
	}
	if all[0].ID != "live-status" || all[len(all)-1].ID != "ar" {
		t.Fatalf("catalog order changed: first=%s last=%s", all[0].ID, all[len(all)-1].ID)
	}

	// Mutating the returned slice must not leak into the catalog.
	all[0].Price = 1
	if p, _ := PriceOf("live-status"); p != 3000 {
		t.Fatalf("catalog mutated through All(): live-status price %d", p)
	}
}

func TestPriceOf(t *testing.T) {
	cases := []struct {
		id    string
		price int
		ok    bool
	}{
		{"live-status", 3000, true},
		{"feedback", 1500, true},
		{"ar", 20000, true},
		{"drone-delivery", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		price, ok := PriceOf(tc.id)
		if price != tc.price || ok != tc.ok {
			t.Errorf("PriceOf(%q) = (%d, %v), want (%d, %v)", tc.id, price, ok, tc.price, tc.ok)
		}
	}
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf("chatbot")
	if !ok || name != "Chatbot Helper" {
		t.Fatalf("NameOf(chatbot) = (%q, %v)", name, ok)
	}
	if _, ok := NameOf("unknown"); ok {
		t.Fatal("NameOf accepted an unknown id")
	}
}

func TestResolveNamesDropsUnknownKeepsDuplicates(t *testing.T) {
	names := ResolveNames([]string{"reviews", "nope", "reviews", "seo"})
	want := []string{"Customer Reviews & Ratings", "Customer Reviews & Ratings", "SEO Optimized Website"}
	if len(names) != len(want) {
		t.Fatalf("ResolveNames returned %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ResolveNames[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestBaseFeatures(t *testing.T) {
	if len(BaseFeatures) != 6 {
		t.Fatalf("base package has %d items, want 6", len(BaseFeatures))
	}
	if BaseFeatures[0] != "Custom Website (Responsive Design)" {
		t.Fatalf("unexpected first base feature: %s", BaseFeatures[0])
	}
}
