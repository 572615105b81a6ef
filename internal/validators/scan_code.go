package validators

import (
	"strings"
	"unicode"
)

// MaxCodeLength bounds accepted scan codes. The longest practical symbology
// payloads (PDF417, QR) stay well under this.
const MaxCodeLength = 2048

// ScanCodeValidator implements CodeValidator for decoded barcode values.
type ScanCodeValidator struct {
}

// NewScanCodeValidator constructs a ScanCodeValidator and returns it as the
// CodeValidator interface.
func NewScanCodeValidator() CodeValidator {
	return &ScanCodeValidator{}
}

// Normalize implements CodeValidator.
func (v *ScanCodeValidator) Normalize(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", ErrEmptyCode
	}
	if len(code) > MaxCodeLength {
		return "", ErrCodeTooLong
	}

	for _, r := range code {
		if unicode.IsControl(r) {
			return "", ErrCodeNotPrintable
		}
	}

	return code, nil
}
