// Package validate holds request checks that run before any store round trip.
package validate

import (
	"regexp"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
)

// MailPattern is the accepted mail shape. It anchors only the start of the
// input, so "a@b.com trailing" is accepted unless strict mode is enabled.
const MailPattern = `^([a-z0-9_+]([a-z0-9_+.]*[a-z0-9_+])?)@([a-z0-9]+([\-\.]{1}[a-z0-9]+)*\.[a-z]{2,6})`

// Mail checks addresses against a compiled pattern.
type Mail struct {
	re *regexp.Regexp
}

// NewMail compiles pattern, appending an end anchor when strict is set. An
// empty pattern selects MailPattern.
func NewMail(pattern string, strict bool) (*Mail, error) {
	if pattern == "" {
		pattern = MailPattern
	}
	if strict {
		pattern = `(?:` + pattern + `)$`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalValidationError, err, "error in validations")
	}
	return &Mail{re: re}, nil
}

// Check returns an InvalidEmail error when mail does not match.
func (m *Mail) Check(mail string) error {
	if m == nil || m.re == nil {
		return apperr.New(apperr.InternalValidationError, "error in validations")
	}
	if !m.re.MatchString(mail) {
		return apperr.New(apperr.InvalidEmail, "invalid email")
	}
	return nil
}

// ID rejects an empty identifier. A missing id envelope is rejected by the
// caller before it gets here.
func ID(id string) error {
	if id == "" {
		return apperr.New(apperr.InvalidId, "invalid id")
	}
	return nil
}
