package notification

import "strings"

// Template is a message body with {amount}, {juice}, {items} and {date}
// placeholders. Any other brace text is left as written.
type Template struct {
	ID   string
	Body string
}

var (
	ReceiptTemplate = Template{
		ID:   "receipt",
		Body: "Thanks for visiting! Your total: ₹{amount}.",
	}
	DailySummaryTemplate = Template{
		ID:   "daily_summary",
		Body: "Today’s Sales: ₹{amount}. Top Juice: {juice}.",
	}
)

// Variables fills a Template. Zero values render as empty strings.
type Variables struct {
	Amount string
	Juice  string
	Items  string
	Date   string
}

// Render substitutes every occurrence of each placeholder.
func (t Template) Render(vars Variables) string {
	return strings.NewReplacer(
		"{amount}", vars.Amount,
		"{juice}", vars.Juice,
		"{items}", vars.Items,
		"{date}", vars.Date,
	).Replace(t.Body)
}
