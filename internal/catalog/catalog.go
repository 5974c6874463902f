// Package catalog holds the fixed CafeCanvas product catalog: the base
// package price, the line items every customer receives, and the priced
// add-on features a proposal can select.
package catalog

// BasePrice is the price of the base package in rupees.
const BasePrice = 40000

// Feature is a single purchasable add-on.
type Feature struct {
	ID          string
	Name        string
	Price       int
	Description string
}

// BaseFeatures are the line items included in every package regardless of
// selected add-ons.
var BaseFeatures = []string{
	"Custom Website (Responsive Design)",
	"Digital Menu with Images & Categories",
	"Table-wise QR Code Scanning",
	"Cart & Order Placement",
	"Admin Dashboard for Orders",
	"Secure Payment Gateway Integration",
}

// features is the canonical ordered catalog. Order matters for All().
var features = []Feature{
	{ID: "live-status", Name: "Live Order Status Update", Price: 3000, Description: "Real-time order tracking"},
	{ID: "reviews", Name: "Customer Reviews & Ratings", Price: 2500, Description: "Customer feedback system"},
	{ID: "feedback", Name: "Suggestion/Feedback Form", Price: 1500, Description: "Collect customer insights"},
	{ID: "loyalty", Name: "Loyalty Points / Discount Coupons", Price: 4000, Description: "Reward system"},
	{ID: "notifications", Name: "WhatsApp/SMS Notifications", Price: 3500, Description: "Customer notifications"},
	{ID: "chatbot", Name: "Chatbot Helper", Price: 5000, Description: "24/7 automated support"},
	{ID: "appointments", Name: "Schedule Your Table Appointment", Price: 3000, Description: "Reservation system"},
	{ID: "analytics", Name: "Advanced Sales Report & Analytics", Price: 4500, Description: "Business insights"},
	{ID: "multilang", Name: "Multi-Language Menu Support", Price: 2000, Description: "Multiple languages"},
	{ID: "profiles", Name: "Customer Profile & Order History", Price: 3500, Description: "Customer management"},
	{ID: "social", Name: "Social Media Integration", Price: 2000, Description: "Social connectivity"},
	{ID: "seo", Name: "SEO Optimized Website", Price: 3500, Description: "Online visibility"},
	{ID: "invoicing", Name: "GST/Tax Invoice Generator", Price: 3000, Description: "Automated billing"},
	{ID: "profit", Name: "Expense & Profit Calculator", Price: 4000, Description: "Financial tracking"},
	{ID: "upselling", Name: "Add-on Items & Upselling", Price: 2500, Description: "Increase order value"},
	{ID: "ar", Name: "AR Dish Preview", Price: 20000, Description: "Augmented reality visualization"},
}

var byID = func() map[string]Feature {
	m := make(map[string]Feature, len(features))
	for _, f := range features {
		m[f.ID] = f
	}
	return m
}()

// All returns the catalog in its canonical order.
func All() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

// Lookup returns the feature for id, if it exists.
func Lookup(id string) (Feature, bool) {
	f, ok := byID[id]
	return f, ok
}

// PriceOf returns the add-on price for id. Unknown ids report ok=false.
func PriceOf(id string) (int, bool) {
	f, ok := byID[id]
	return f.Price, ok
}

// NameOf returns the display name for id. Unknown ids report ok=false.
func NameOf(id string) (string, bool) {
	f, ok := byID[id]
	return f.Name, ok
}

// ResolveNames maps feature ids to display names, silently dropping ids
// that are not in the catalog. Duplicates in the input are preserved.
func ResolveNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := NameOf(id); ok {
			names = append(names, name)
		}
	}
	return names
}
