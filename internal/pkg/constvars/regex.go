package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexContainAtLeastOneLowercase   = `.*[a-z].*`
	RegexContainAtLeastOneDigit       = `.*\d.*`
	RegexSlotDate                     = `^\d{1,2}_\d{1,2}_\d{4}$`
	RegexSlotTime                     = `^\d{1,2}:\d{2} (?:am|pm|AM|PM)$`
)
