package matcher

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadmatch/internal/models"
	"leadmatch/internal/phone"
)

func newTestMatcher() *Matcher {
	return New(phone.NewNormalizer("+49"))
}

func leadWithPhone(number, status string) models.Lead {
	return models.Lead{
		Status:   status,
		Customer: &models.Customer{PhoneNumber: number},
	}
}

func leadWithEmail(email string) models.Lead {
	return models.Lead{
		Customer: &models.Customer{EmailAddress: email},
	}
}

func TestMatch_ByPhone(t *testing.T) {
	contacts := []models.Contact{{Phone: "+491234567890"}}
	leads := []models.Lead{
		leadWithPhone("+491234567890", "confirmed"),
		leadWithPhone("+499999999999", "confirmed"),
	}

	matches := newTestMatcher().Match(contacts, leads, true, false)

	require.Equal(t, 1, matches.Len())
	assert.Equal(t, []string{"+491234567890"}, matches.Keys())
}

func TestMatch_LeadPhoneIsNormalizedBeforeComparison(t *testing.T) {
	contacts := []models.Contact{{Phone: "+491712345678"}}
	leads := []models.Lead{leadWithPhone("+49 171-234 5678", "open")}

	matches := newTestMatcher().Match(contacts, leads, true, false)

	assert.Equal(t, 1, matches.Len())
}

func TestMatch_ByEmail(t *testing.T) {
	contacts := []models.Contact{{Email: "jane@example.com"}}
	leads := []models.Lead{
		leadWithEmail("jane@example.com"),
		leadWithEmail("other@example.com"),
	}

	matches := newTestMatcher().Match(contacts, leads, false, true)

	require.Equal(t, 1, matches.Len())
	assert.Equal(t, []string{"jane@example.com"}, matches.Keys())
}

func TestMatch_EmailIsCaseSensitive(t *testing.T) {
	contacts := []models.Contact{{Email: "jane@example.com"}}
	leads := []models.Lead{leadWithEmail("Jane@Example.com")}

	matches := newTestMatcher().Match(contacts, leads, false, true)

	assert.Equal(t, 0, matches.Len())
}

func TestMatch_PhoneKeyWinsWhenBothFire(t *testing.T) {
	contacts := []models.Contact{{Phone: "+491234567890", Email: "jane@example.com"}}
	leads := []models.Lead{{
		Customer: &models.Customer{
			PhoneNumber:  "+491234567890",
			EmailAddress: "jane@example.com",
		},
	}}

	matches := newTestMatcher().Match(contacts, leads, true, true)

	require.Equal(t, 1, matches.Len())
	assert.Equal(t, []string{"+491234567890"}, matches.Keys())
}

func TestMatch_DisabledModesNeverFire(t *testing.T) {
	contacts := []models.Contact{{Phone: "+491234567890", Email: "jane@example.com"}}
	leads := []models.Lead{
		leadWithPhone("+491234567890", "open"),
		leadWithEmail("jane@example.com"),
	}

	m := newTestMatcher()
	assert.Equal(t, 1, m.Match(contacts, leads, true, false).Len())
	assert.Equal(t, 1, m.Match(contacts, leads, false, true).Len())
	assert.Equal(t, 0, m.Match(contacts, leads, false, false).Len())
}

func TestMatch_DeduplicatesLastWriteWins(t *testing.T) {
	contacts := []models.Contact{{Phone: "+491234567890"}}
	leads := []models.Lead{
		leadWithPhone("+491234567890", "open"),
		leadWithPhone("+491234567890", "confirmed"),
	}

	matches := newTestMatcher().Match(contacts, leads, true, false)

	require.Equal(t, 1, matches.Len())
	lead, ok := matches.Get("+491234567890")
	require.True(t, ok)
	assert.Equal(t, "confirmed", lead.Status)
}

func TestMatch_NilCustomerIsSkipped(t *testing.T) {
	contacts := []models.Contact{{Phone: "+491234567890", Email: "jane@example.com"}}
	leads := []models.Lead{{Status: "confirmed"}}

	matches := newTestMatcher().Match(contacts, leads, true, true)

	assert.Equal(t, 0, matches.Len())
}

// Permuting the lead list never changes the set of matched keys; only the
// surviving lead per key may differ under last-write-wins.
func TestMatch_KeySetIsOrderIndependent(t *testing.T) {
	contacts := []models.Contact{
		{Phone: "+491111111111"},
		{Phone: "+492222222222"},
		{Email: "jane@example.com"},
	}
	leads := []models.Lead{
		leadWithPhone("+491111111111", "open"),
		leadWithPhone("+492222222222", "confirmed"),
		leadWithEmail("jane@example.com"),
		leadWithPhone("+491111111111", "cancelled"),
		leadWithPhone("+493333333333", "open"),
	}

	m := newTestMatcher()
	baseline := m.Match(contacts, leads, true, true)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Lead, len(leads))
		copy(shuffled, leads)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		matches := m.Match(contacts, shuffled, true, true)
		assert.ElementsMatch(t, baseline.Keys(), matches.Keys())
	}
}

func TestMatch_InsertionOrderFollowsLeadList(t *testing.T) {
	contacts := []models.Contact{
		{Phone: "+491111111111"},
		{Phone: "+492222222222"},
	}
	leads := []models.Lead{
		leadWithPhone("+492222222222", "open"),
		leadWithPhone("+491111111111", "open"),
		leadWithPhone("+492222222222", "confirmed"),
	}

	matches := newTestMatcher().Match(contacts, leads, true, false)

	// the recurring key keeps its first position but carries the later lead
	require.Equal(t, []string{"+492222222222", "+491111111111"}, matches.Keys())
	lead, _ := matches.Get("+492222222222")
	assert.Equal(t, "confirmed", lead.Status)
}
