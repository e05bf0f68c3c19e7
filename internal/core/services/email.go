package services

import "regexp"

const emailPattern = `^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`

// EmailMatcher checks addresses against the accepted email grammar.
// Build one at startup and share it; it holds no mutable state.
type EmailMatcher struct {
	re *regexp.Regexp
}

func NewEmailMatcher() *EmailMatcher {
	return &EmailMatcher{re: regexp.MustCompile(emailPattern)}
}

func (m *EmailMatcher) Valid(email string) bool {
	return m.re.MatchString(email)
}
