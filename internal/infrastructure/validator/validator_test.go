package validator_test

import (
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/mikiasgoitom/VidTube/internal/infrastructure/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	v := validator.NewValidator()
	assert.NoError(t, v.ValidateID(faker.UUIDHyphenated()))
	assert.Error(t, v.ValidateID(""))
	assert.Error(t, v.ValidateID("not-a-uuid"))
}

func TestValidateContent(t *testing.T) {
	v := validator.NewValidator()
	assert.NoError(t, v.ValidateContent(faker.Sentence()))
	assert.Error(t, v.ValidateContent("   "))
	assert.Error(t, v.ValidateContent(strings.Repeat("a", 5001)))
}

func TestValidatePasswordStrength(t *testing.T) {
	v := validator.NewValidator()
	assert.NoError(t, v.ValidatePasswordStrength("Str0ng!Pass"))
	assert.Error(t, v.ValidatePasswordStrength("short"))
	assert.Error(t, v.ValidatePasswordStrength("alllowercase1!"))
	assert.Error(t, v.ValidatePasswordStrength("NoDigitsHere"))
	assert.Error(t, v.ValidatePasswordStrength("Aa1"+strings.Repeat("x", 70)))
}

func TestValidateUsername(t *testing.T) {
	v := validator.NewValidator()
	assert.NoError(t, v.ValidateUsername("chai_aur_code"))
	assert.Error(t, v.ValidateUsername("ab"))
	assert.Error(t, v.ValidateUsername("Has Space"))
	assert.Error(t, v.ValidateUsername(strings.Repeat("a", 31)))
}
