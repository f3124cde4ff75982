package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   \t\n"))
	assert.False(t, IsBlank(" a "))
}

func TestIsEmailFormat(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.example.org",
		"a_b%c-d@host-name.io",
	}
	for _, email := range valid {
		assert.True(t, IsEmailFormat(email), email)
	}

	invalid := []string{
		"",
		"bad-email",
		"user@",
		"@example.com",
		"user@example",
		"user@example.c",
		"user name@example.com",
		"user@exa mple.com",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailFormat(email), email)
	}
}

func TestHasPasswordCharClasses(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"abcd123!", true},
		{"!1a", true},
		{"1!aaaaaaa", true},
		{"Password1", false},
		{"password!", false},
		{"12345678!", false},
		{"abcd1234^", false},
		{"abcd1234é!", true},
		{"ábcd1234!", true},
		{"éééé!!!!1", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPasswordCharClasses(tt.password))
		})
	}
}
