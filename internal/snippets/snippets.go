// Package snippets holds the payment-notification boilerplate emitted by paynotify.
// The snippet bodies are TypeScript reference copy for the consuming project;
// they are baked into the binary via go:embed and are never parsed, executed,
// or validated here.
package snippets

import (
	"embed"
	"fmt"
)

// templateFiles contains the snippet bodies baked into the binary at compile
// time, eliminating filesystem dependencies at run time.
//
//go:embed templates
var templateFiles embed.FS

// Snippet is one copy-paste block plus the metadata shown in section headers.
type Snippet struct {
	// Slug is the short name used by `paynotify show <slug>`.
	Slug string

	// Title is the human-readable section title.
	Title string

	// TargetPath is where the block belongs in the consuming project.
	// It is display text only; paynotify never touches that path.
	TargetPath string

	// Body is the fixed snippet text. Always non-empty, always
	// newline-terminated.
	Body string
}

// bank is the full snippet corpus in emission order. The order is part of the
// output contract: types, schema, webhook, helpers.
var bank = []Snippet{
	{
		Slug:       "types",
		Title:      "Notification Types",
		TargetPath: "shared/notifications.ts",
		Body:       mustRead("templates/notification_types.ts"),
	},
	{
		Slug:       "schema",
		Title:      "Database Schema",
		TargetPath: "drizzle/schema.ts",
		Body:       mustRead("templates/schema.ts"),
	},
	{
		Slug:       "webhook",
		Title:      "Webhook Handler",
		TargetPath: "server/_core/stripeWebhook.ts",
		Body:       mustRead("templates/stripe_webhook.ts"),
	},
	{
		Slug:       "helpers",
		Title:      "Notification Helpers",
		TargetPath: "server/paymentNotifications.ts",
		Body:       mustRead("templates/payment_notifications.ts"),
	},
}

// mustRead loads an embedded template. A missing file is a build defect, not a
// runtime condition, so it panics at init.
func mustRead(path string) string {
	data, err := templateFiles.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("snippets: missing embedded template %s: %v", path, err))
	}
	return string(data)
}

// All returns the snippet bank in emission order. The returned slice is
// freshly allocated, so callers may reorder it without affecting the bank.
func All() []Snippet {
	out := make([]Snippet, len(bank))
	copy(out, bank)
	return out
}

// Lookup returns the snippet with the given slug.
func Lookup(slug string) (Snippet, bool) {
	for _, sn := range bank {
		if sn.Slug == slug {
			return sn, true
		}
	}
	return Snippet{}, false
}

// Slugs returns the valid slugs in emission order.
func Slugs() []string {
	slugs := make([]string, len(bank))
	for i, sn := range bank {
		slugs[i] = sn.Slug
	}
	return slugs
}

// NotificationTypes returns the notification type/icon/color constant tables.
func NotificationTypes() string { return bank[0].Body }

// DatabaseSchema returns the notifications schema fragment: the notifications
// and adminNotificationPreferences tables plus their relation.
func DatabaseSchema() string { return bank[1].Body }

// WebhookHandler returns the Stripe webhook dispatch skeleton with
// per-event-type branches.
func WebhookHandler() string { return bank[2].Body }

// NotificationHelpers returns the two notification-sending helper functions.
func NotificationHelpers() string { return bank[3].Body }
