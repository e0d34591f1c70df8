package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name     string `validate:"required,min=20,max=60"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func TestValidateStruct_ValidSignup(t *testing.T) {
	form := signupForm{
		Name:     "Jonathan Maxwell Harrington",
		Email:    "jon@example.com",
		Password: "Secret1!",
	}

	errs := ValidateStruct(form)
	assert.Nil(t, errs)
}

func TestValidateStruct_NameBounds(t *testing.T) {
	form := signupForm{
		Name:     "Too Short",
		Email:    "jon@example.com",
		Password: "Secret1!",
	}

	errs := ValidateStruct(form)
	assert.Contains(t, errs, "Name")

	form.Name = strings.Repeat("a", 61)
	errs = ValidateStruct(form)
	assert.Contains(t, errs, "Name")

	// 25 characters is fine
	form.Name = strings.Repeat("a", 25)
	errs = ValidateStruct(form)
	assert.Nil(t, errs)
}

func TestValidateStruct_PasswordRule(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Secret1!", true},
		{"Abcdefg!", true},
		{"A!bcdefghijklmno", true},   // 16 chars, upper bound
		{"Short1!", false},           // 7 chars
		{"A!bcdefghijklmnop", false}, // 17 chars
		{"secret1!", false},          // no uppercase
		{"Secret123", false},         // no special character
		{"", false},
	}

	for _, tc := range cases {
		form := signupForm{
			Name:     "Jonathan Maxwell Harrington",
			Email:    "jon@example.com",
			Password: tc.password,
		}
		errs := ValidateStruct(form)
		if tc.valid {
			assert.Nil(t, errs, "expected valid password: %q", tc.password)
		} else {
			assert.Contains(t, errs, "Password", "expected invalid password: %q", tc.password)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	form := signupForm{}
	errs := ValidateStruct(form)
	assert.Len(t, errs, 3)

	msg := FormatValidationErrors(errs)
	assert.Contains(t, msg, "Name")
	assert.Contains(t, msg, "Email")
	assert.Contains(t, msg, "Password")
}
