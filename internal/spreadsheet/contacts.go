package spreadsheet

import (
	"strings"

	"leadmatch/internal/models"
	"leadmatch/internal/phone"
)

// ExtractContacts builds one contact per data row using the resolved
// columns. Phone values that fail normalization leave the contact's Phone
// empty; they are skipped during matching rather than failing the upload.
func ExtractContacts(rows [][]string, cols Columns, normalizer *phone.Normalizer) []models.Contact {
	if len(rows) < 2 {
		return nil
	}

	contacts := make([]models.Contact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var contact models.Contact
		if cols.Phone >= 0 && cols.Phone < len(row) {
			contact.PhoneRaw = row[cols.Phone]
			if normalized, ok := normalizer.Normalize(contact.PhoneRaw); ok {
				contact.Phone = normalized
			}
		}
		if cols.Email >= 0 && cols.Email < len(row) {
			contact.Email = strings.TrimSpace(row[cols.Email])
		}
		contacts = append(contacts, contact)
	}
	return contacts
}
