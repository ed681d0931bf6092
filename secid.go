package ofx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// cusipRegex checks for 8 alphanumeric or special characters and 1 digit.
var cusipRegex = regexp.MustCompile(`^[A-Z0-9*@#]{8}[0-9]$`)

// Validate checks the format and the check digit of CUSIP and ISIN ids.
// Other types of ids only need to be set.
func (id SecurityID) Validate() error {
	if id.UniqueID == "" || id.UniqueIDType == "" {
		return fmt.Errorf("%w: security id and type are required", ErrInvalidValue)
	}
	var err error
	switch strings.ToUpper(id.UniqueIDType) {
	case "CUSIP":
		err = ValidateCUSIP(id.UniqueID)
	case "ISIN":
		err = ValidateISIN(id.UniqueID)
	}
	if err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, id.UniqueIDType, id.UniqueID, err)
	}
	return nil
}

// ValidateCUSIP checks if a string is a validly formatted CUSIP.
func ValidateCUSIP(cusip string) error {
	if len(cusip) != 9 {
		return fmt.Errorf("invalid length: must be 9 characters, got %d", len(cusip))
	}
	if !cusipRegex.MatchString(cusip) {
		return fmt.Errorf("invalid format: must be 8 uppercase alphanumeric chars and 1 digit")
	}

	sum := 0
	for i, char := range cusip[:8] {
		var v int
		switch {
		case char >= '0' && char <= '9':
			v = int(char - '0')
		case char >= 'A' && char <= 'Z':
			v = int(char-'A') + 10
		case char == '*':
			v = 36
		case char == '@':
			v = 37
		case char == '#':
			v = 38
		}
		if i%2 == 1 {
			v *= 2
		}
		sum += v/10 + v%10
	}

	expected := (10 - sum%10) % 10
	if actual := int(cusip[8] - '0'); expected != actual {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expected, actual)
	}
	return nil
}

// ValidateISIN checks if a string is a validly formatted ISIN.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// letters count as two digits, A being 10
	var digits strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			digits.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			digits.WriteRune(char)
		}
	}

	// Luhn, doubling from the rightmost digit
	sum := 0
	double := true
	s := digits.String()
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		if double {
			digit *= 2
		}
		sum += digit/10 + digit%10
		double = !double
	}

	expected := (10 - sum%10) % 10
	if actual := int(isin[11] - '0'); expected != actual {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expected, actual)
	}
	return nil
}
