package contacts

// PhoneLength is the exact number of digits in a phone number.
const PhoneLength = 10

// Phone is a validated 10-digit phone number.
// The zero value is not a valid phone; build one with ParsePhone.
type Phone string

// ParsePhone validates raw and returns it as a Phone.
func ParsePhone(raw string) (Phone, error) {
	if !allDigits(raw) {
		return "", Invalid("phone", "Phone number must contain only digits.")
	}
	if len(raw) != PhoneLength {
		return "", Invalid("phone", "Phone number must be exactly %d digits.", PhoneLength)
	}
	return Phone(raw), nil
}

func (p Phone) String() string { return string(p) }

// allDigits is false for the empty string.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
