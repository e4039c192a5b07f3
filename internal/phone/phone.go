package phone

import (
	"regexp"
	"strconv"
	"strings"
)

// Normalizer canonicalizes free-form phone values into E.164. Numbers
// without an international prefix are assumed domestic and get the default
// calling code prepended; callers serving other locales supply their own.
type Normalizer struct {
	defaultPrefix string
	e164          *regexp.Regexp
	separators    *strings.Replacer
}

func NewNormalizer(defaultPrefix string) *Normalizer {
	return &Normalizer{
		defaultPrefix: defaultPrefix,
		// + followed by 1-15 digits, no leading zero after the plus
		e164:       regexp.MustCompile(`^\+[1-9][0-9]{0,14}$`),
		separators: strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "", ".", ""),
	}
}

// Normalize returns the canonical E.164 form of raw. The second return
// value is false when the input is empty or fails validation; invalid
// numbers are excluded from matching, never treated as fatal.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}

	// Spreadsheet cells often hold phone numbers as numeric values, which
	// surface in scientific notation. Convert those back to digit strings.
	if strings.ContainsAny(value, "eE") {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			value = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}

	value = n.separators.Replace(value)

	if !strings.HasPrefix(value, "+") {
		value = n.defaultPrefix + value
	}

	if !n.e164.MatchString(value) {
		return "", false
	}
	return value, true
}
