package matcher

import (
	"leadmatch/internal/models"
	"leadmatch/internal/phone"
)

// MatchSet is an insertion-ordered mapping from match key to lead. A key
// keeps its original position when its lead is overwritten.
type MatchSet struct {
	keys  []string
	byKey map[string]models.Lead
}

func newMatchSet() *MatchSet {
	return &MatchSet{byKey: make(map[string]models.Lead)}
}

func (s *MatchSet) put(key string, lead models.Lead) {
	if _, exists := s.byKey[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.byKey[key] = lead
}

func (s *MatchSet) Len() int {
	return len(s.keys)
}

// Keys returns the match keys in insertion order.
func (s *MatchSet) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

func (s *MatchSet) Get(key string) (models.Lead, bool) {
	lead, ok := s.byKey[key]
	return lead, ok
}

// Leads returns the matched leads in key insertion order.
func (s *MatchSet) Leads() []models.Lead {
	leads := make([]models.Lead, 0, len(s.keys))
	for _, key := range s.keys {
		leads = append(leads, s.byKey[key])
	}
	return leads
}

// Matcher joins uploaded contacts against upstream leads. Lead identity
// values pass through the same normalization as contacts, so the equality
// check is always on canonical form.
type Matcher struct {
	phones *phone.Normalizer
}

func New(phones *phone.Normalizer) *Matcher {
	return &Matcher{phones: phones}
}

// Match keeps every lead whose normalized phone or trimmed email equals
// that of some contact, keyed by the matched value. Phone wins the key when
// both conditions fire. When the same key recurs, the later lead overwrites
// the earlier one.
func (m *Matcher) Match(contacts []models.Contact, leads []models.Lead, usePhone, useEmail bool) *MatchSet {
	phoneSet := make(map[string]struct{})
	emailSet := make(map[string]struct{})
	for _, contact := range contacts {
		if contact.Phone != "" {
			phoneSet[contact.Phone] = struct{}{}
		}
		if contact.Email != "" {
			emailSet[contact.Email] = struct{}{}
		}
	}

	result := newMatchSet()
	for _, lead := range leads {
		var key string
		if usePhone {
			if normalized, ok := m.phones.Normalize(lead.CustomerPhone()); ok {
				if _, hit := phoneSet[normalized]; hit {
					key = normalized
				}
			}
		}
		if key == "" && useEmail {
			if email := lead.CustomerEmail(); email != "" {
				if _, hit := emailSet[email]; hit {
					key = email
				}
			}
		}
		if key != "" {
			result.put(key, lead)
		}
	}
	return result
}
