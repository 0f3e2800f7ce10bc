package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
)

func TestMailCheck(t *testing.T) {
	m, err := NewMail("", false)
	require.NoError(t, err)

	valid := []string{"fede@test.com", "abel@test.com", "a.b+c@sub-domain.example.org", "x_y@d.io"}
	for _, mail := range valid {
		assert.NoError(t, m.Check(mail), mail)
	}

	invalid := []string{"not-an-email", "", "@test.com", "fede@", "Fede@test.com", ".fede@test.com", "fede@test.c"}
	for _, mail := range invalid {
		err := m.Check(mail)
		assert.True(t, apperr.Is(err, apperr.InvalidEmail), "%q: %v", mail, err)
	}
}

func TestMailTrailingGarbage(t *testing.T) {
	loose, err := NewMail("", false)
	require.NoError(t, err)
	assert.NoError(t, loose.Check("fede@test.com<script>"))

	strict, err := NewMail("", true)
	require.NoError(t, err)
	assert.NoError(t, strict.Check("fede@test.com"))
	assert.True(t, apperr.Is(strict.Check("fede@test.com<script>"), apperr.InvalidEmail))
}

func TestNewMailBadPattern(t *testing.T) {
	_, err := NewMail("([a-z", false)
	assert.True(t, apperr.Is(err, apperr.InternalValidationError))

	var m *Mail
	assert.True(t, apperr.Is(m.Check("fede@test.com"), apperr.InternalValidationError))
}

func TestID(t *testing.T) {
	assert.NoError(t, ID("12"))
	assert.True(t, apperr.Is(ID(""), apperr.InvalidId))
}
