package account

// MinPasswordLen is the minimum accepted raw password length.
const MinPasswordLen = 6

// DisplayName builds the default display name for a fresh account:
// "用户" plus the last four digits of the phone number.
func DisplayName(phone string) string {
	if len(phone) < 4 {
		return "用户" + phone
	}
	return "用户" + phone[len(phone)-4:]
}
