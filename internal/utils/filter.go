package utils

// IsValidInput checks if input should be processed for suggestions.
// Returns false for strings that are only numbers, contain special
// characters, or are repetitive keyboard mashing.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}

// IsRepetitive checks if a string consists of a single repeated character
// (e.g. "aaa", "bbb"). Two-character strings are never repetitive since
// plenty of short product queries start that way.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}
