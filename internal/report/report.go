// Package report assembles the paynotify setup report: a fixed banner, each
// snippet under a numbered section header, a closing banner, and the static
// next-steps checklist. Output is for human consumption only and carries no
// stable machine-readable schema.
package report

import (
	"fmt"
	"io"
	"strings"

	"paynotify/internal/snippets"
)

const (
	openingBanner = "📦 Payment Notification System Setup"
	closingBanner = "✅ Code generation complete!"
	ruleWidth     = 50
)

var nextSteps = []string{
	"1. Copy the generated code snippets into your project",
	"2. Run 'pnpm db:push' to apply database migrations",
	"3. Register the webhook endpoint in your server",
	"4. Test with Stripe CLI: stripe listen --forward-to localhost:3000/api/stripe/webhook",
}

// Render writes the full setup report to w. The report depends only on the
// embedded snippet bank: repeated calls produce byte-identical output. No
// timestamps, randomness, or caller input appear in the report.
func Render(w io.Writer) error {
	var b strings.Builder

	b.WriteString(openingBanner + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString("\n")
	b.WriteString("Generated code snippets:\n")
	b.WriteString("\n")

	for i, sn := range snippets.All() {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, sn.Title, sn.TargetPath)
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		b.WriteString(sn.Body)
		b.WriteString("\n\n")
	}

	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString(closingBanner + "\n")
	b.WriteString("\n")
	b.WriteString("Next steps:\n")
	for _, step := range nextSteps {
		b.WriteString(step + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
