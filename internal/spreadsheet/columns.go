package spreadsheet

// Uploaded files come from different CRM exports with no agreed header
// naming, so each capability maps to the set of spellings seen in the
// wild. Matching is exact membership, not fuzzy.
var headerSpellings = map[string][]string{
	"phone": {
		"phone_number", "Phone_Number", "phoneNumber", "phone number",
		"Phone Number", "PHONE NUMBER", "phonenumber", "PHONENUMBER",
	},
	"email": {
		"email", "Email", "EMAIL",
		"email_address", "Email Address", "EMAIL ADDRESS",
	},
}

var (
	phoneHeaders = headerSet(headerSpellings["phone"])
	emailHeaders = headerSet(headerSpellings["email"])
)

func headerSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Columns holds the located column indexes, -1 when not present.
type Columns struct {
	Phone int
	Email int
}

// ResolveColumns scans the header row for the phone and email columns. An
// unrecognized header simply yields no column; the caller decides whether
// that fails the request.
func ResolveColumns(header []string) Columns {
	cols := Columns{Phone: -1, Email: -1}
	for i, cell := range header {
		if _, ok := phoneHeaders[cell]; ok && cols.Phone == -1 {
			cols.Phone = i
		}
		if _, ok := emailHeaders[cell]; ok && cols.Email == -1 {
			cols.Email = i
		}
	}
	return cols
}
