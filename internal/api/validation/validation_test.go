package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"admin@acme.test",
		"user.name+tag@example.co.uk",
		"a@b.io",
	}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missinglocal.com",
		"missing-at.example.com",
		"spaces in@example.com",
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsValidUUID("123e4567"))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid-at-all-nope-nononononope"))
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"acme", "acme-corp", "a1-b2-c3"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}

	invalid := []string{"", "Acme", "acme_corp", "-acme", "acme-", "acme--corp"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}
