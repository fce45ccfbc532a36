package snippets

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 4)

	slugs := make([]string, len(all))
	for i, sn := range all {
		slugs[i] = sn.Slug
	}
	assert.Equal(t, []string{"types", "schema", "webhook", "helpers"}, slugs)
	assert.Equal(t, slugs, Slugs())
}

func TestBodiesNonEmptyAndNewlineTerminated(t *testing.T) {
	for _, sn := range All() {
		t.Run(sn.Slug, func(t *testing.T) {
			require.NotEmpty(t, sn.Body)
			assert.True(t, strings.HasSuffix(sn.Body, "\n"), "body must end with a newline")
			assert.NotEmpty(t, sn.Title)
			assert.NotEmpty(t, sn.TargetPath)
		})
	}
}

func TestMarkerSubstrings(t *testing.T) {
	tests := []struct {
		slug    string
		markers []string
	}{
		{
			slug:    "types",
			markers: []string{"PAYMENT_NOTIFICATION_TYPES", "payment_success", "refund_issued"},
		},
		{
			slug:    "schema",
			markers: []string{"notifications", "adminNotificationPreferences", "notificationsRelations"},
		},
		{
			slug:    "webhook",
			markers: []string{"checkout.session.completed", "payment_intent.succeeded", "charge.refunded"},
		},
		{
			slug:    "helpers",
			markers: []string{"sendPaymentConfirmationNotification", "sendPaymentFailureNotification"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			sn, ok := Lookup(tt.slug)
			require.True(t, ok)
			for _, marker := range tt.markers {
				assert.Contains(t, sn.Body, marker)
			}
		})
	}
}

func TestAccessorsMatchBank(t *testing.T) {
	accessors := map[string]func() string{
		"types":   NotificationTypes,
		"schema":  DatabaseSchema,
		"webhook": WebhookHandler,
		"helpers": NotificationHelpers,
	}

	for slug, accessor := range accessors {
		sn, ok := Lookup(slug)
		require.True(t, ok, "slug %q missing from bank", slug)
		assert.Equal(t, sn.Body, accessor())
	}
}

func TestAllIsDeterministic(t *testing.T) {
	if diff := cmp.Diff(All(), All()); diff != "" {
		t.Errorf("All() not stable across calls (-first +second):\n%s", diff)
	}
}

func TestAllReturnsFreshSlice(t *testing.T) {
	mutated := All()
	mutated[0].Slug = "mutated"

	assert.Equal(t, "types", All()[0].Slug)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("nope")
	assert.False(t, ok)
}
