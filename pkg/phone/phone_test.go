package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"international nigerian", "+2348167757987", true},
		{"international short", "+1234567890", true},
		{"international max length", "+123456789012345", true},
		{"international too long", "+1234567890123456", false},
		{"international too short", "+123456789", false},
		{"local with leading zero", "08031234567", true},
		{"local with country code no plus", "2348031234567", true},
		{"spaces and dashes stripped", "+234 816 775-7987", true},
		{"letters rejected", "+23481677abc87", false},
		{"empty", "", false},
		{"plus only", "+", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already international", "+2348167757987", "+2348167757987"},
		{"local leading zero", "08031234567", "+2348031234567"},
		{"bare ten digits", "8031234567", "+2348031234567"},
		{"country code no plus", "2348031234567", "+2348031234567"},
		{"spaces stripped", "0803 123 4567", "+2348031234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestIsValidLoginCode(t *testing.T) {
	assert.True(t, IsValidLoginCode("12345"))
	assert.True(t, IsValidLoginCode(" 12345 "))
	assert.False(t, IsValidLoginCode("1234"))
	assert.False(t, IsValidLoginCode("123456"))
	assert.False(t, IsValidLoginCode("12a45"))
	assert.False(t, IsValidLoginCode(""))
}
