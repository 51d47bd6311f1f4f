package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"student@inf.elte.hu",
		"first.last@example.com",
		"a+b@domain.co",
	}
	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"missing@tld",
		"@elte.hu",
		"spaces in@elte.hu",
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), "expected %q to be invalid", email)
	}
}

func TestNeptunCodePattern(t *testing.T) {
	assert.True(t, CompiledPatterns.NeptunCode.MatchString("ABC123"))
	assert.True(t, CompiledPatterns.NeptunCode.MatchString("DEMO01"))

	assert.False(t, CompiledPatterns.NeptunCode.MatchString("abc123"))
	assert.False(t, CompiledPatterns.NeptunCode.MatchString("ABC12"))
	assert.False(t, CompiledPatterns.NeptunCode.MatchString("ABC1234"))
	assert.False(t, CompiledPatterns.NeptunCode.MatchString("ABC-12"))
}
