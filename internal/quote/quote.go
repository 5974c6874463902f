// Package quote builds the customer-facing quote document for a proposal
// and renders it to self-contained HTML. Building is pure: all inputs
// arrive as arguments and no I/O happens here.
package quote

import (
	"time"

	"github.com/Arman11r/Catalog-web/internal/catalog"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Contact is one entry in the document's contact block.
type Contact struct {
	Initial string
	Name    string
	Phone   string
}

// Document is the fully resolved content of a quote, ready for templating.
// All money fields are pre-formatted strings with Indian digit grouping.
type Document struct {
	Title        string
	Tagline      string
	Date         string
	BasePrice    string
	BaseFeatures []string
	AddOns       []string
	Total        string
	Contacts     []Contact
	FooterNote   string
}

var contacts = []Contact{
	{Initial: "R", Name: "Rachit Agrawal", Phone: "+91 87918 04428"},
	{Initial: "A", Name: "Arman Ahmed", Phone: "+91 95487 84462"},
}

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount in rupees with en-IN digit grouping,
// e.g. 145500 becomes "₹1,45,500".
func FormatINR(amount int) string {
	return inr.Sprintf("₹%d", amount)
}

// Build assembles the quote document for a proposal. addOnNames is the
// already-resolved list of display names; pass the result of
// catalog.ResolveNames so unknown ids never reach the document.
func Build(proposal *models.Proposal, addOnNames []string, generatedAt time.Time) Document {
	return Document{
		Title:        "CafeCanvas",
		Tagline:      "Customized Digital Restaurant Experience",
		Date:         generatedAt.Format("02 Jan 2006"),
		BasePrice:    FormatINR(proposal.BasePrice),
		BaseFeatures: catalog.BaseFeatures,
		AddOns:       addOnNames,
		Total:        FormatINR(proposal.TotalPrice),
		Contacts:     contacts,
		FooterNote:   "Generated PDF – CafeCanvas Feature Selection • This is an auto-generated summary of selected features.",
	}
}
