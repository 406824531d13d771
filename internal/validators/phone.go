package validators

import "regexp"

// Mainland mobile numbers: 11 digits, leading 1, second digit 3-9.
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

func IsPhoneValid(phone string) bool {
	return phonePattern.MatchString(phone)
}
