package validation

import (
	"regexp"
	"unicode/utf8"
)

const UsernameRulesMessage = "Kasutajanimi peab olema 3-12 märki, sisaldama vähemalt ühte tähte ning võib koosneda vaid tähtedest, numbritest, tühikutest ja alakriipsudest."

var (
	usernameAllowedPattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿĀ-ž0-9 _]+$`)
	usernameLetterPattern  = regexp.MustCompile(`[A-Za-zÀ-ÖØ-öø-ÿĀ-ž]`)
	emailPattern           = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func ValidateUsername(username string) bool {
	if username == "" {
		return false
	}
	length := utf8.RuneCountInString(username)
	if length < 3 || length > 12 {
		return false
	}
	if !usernameAllowedPattern.MatchString(username) {
		return false
	}
	return usernameLetterPattern.MatchString(username)
}

func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(email)
}
