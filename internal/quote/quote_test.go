package quote

import (
	"strings"
	"testing"
	"time"

	"github.com/Arman11r/Catalog-web/pkg/db/models"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{40000, "₹40,000"},
		{45500, "₹45,500"},
		{145500, "₹1,45,500"},
		{10000000, "₹1,00,00,000"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestBuild(t *testing.T) {
	proposal := &models.Proposal{
		SelectedFeatures: []string{"live-status", "reviews"},
		TotalPrice:       45500,
		BasePrice:        40000,
	}
	generatedAt := time.Date(2025, time.September, 2, 10, 30, 0, 0, time.UTC)

	doc := Build(proposal, []string{"Live Order Status Update", "Customer Reviews & Ratings"}, generatedAt)

	if doc.Title != "CafeCanvas" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if doc.Date != "02 Sep 2025" {
		t.Fatalf("unexpected date %q", doc.Date)
	}
	if doc.BasePrice != "₹40,000" || doc.Total != "₹45,500" {
		t.Fatalf("unexpected money fields: base=%q total=%q", doc.BasePrice, doc.Total)
	}
	if len(doc.BaseFeatures) != 6 {
		t.Fatalf("expected 6 base features, got %d", len(doc.BaseFeatures))
	}
	if len(doc.AddOns) != 2 {
		t.Fatalf("unexpected add-ons: %v", doc.AddOns)
	}
	if len(doc.Contacts) != 2 || doc.Contacts[0].Name != "Rachit Agrawal" {
		t.Fatalf("unexpected contacts: %+v", doc.Contacts)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	proposal := &models.Proposal{TotalPrice: 40000, BasePrice: 40000}
	at := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	a := Build(proposal, nil, at)
	b := Build(proposal, nil, at)
	if a.Date != b.Date || a.Total != b.Total {
		t.Fatalf("Build not deterministic: %+v vs %+v", a, b)
	}
}

func TestHTML(t *testing.T) {
	proposal := &models.Proposal{
		SelectedFeatures: []string{"chatbot"},
		TotalPrice:       45000,
		BasePrice:        40000,
	}
	doc := Build(proposal, []string{"Chatbot Helper"}, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	html, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"CafeCanvas",
		"Proposal Date: 01 Mar 2025",
		"Base Package (₹40,000)",
		"Chatbot Helper",
		"₹45,000",
		"Rachit Agrawal",
		"+91 95487 84462",
		"Selected Add-On Features",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestHTMLOmitsAddOnSectionWhenEmpty(t *testing.T) {
	proposal := &models.Proposal{TotalPrice: 40000, BasePrice: 40000}
	doc := Build(proposal, nil, time.Now())

	html, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(html, "Selected Add-On Features") {
		t.Fatal("empty selection must not render the add-on section")
	}
}

func TestHTMLEscapesUntrustedNames(t *testing.T) {
	proposal := &models.Proposal{TotalPrice: 40000, BasePrice: 40000}
	doc := Build(proposal, []string{"<script>alert(1)</script>"}, time.Now())

	html, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("feature name rendered unescaped")
	}
}
