package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// PasswordPolicy configures the ordered password strength rules.
type PasswordPolicy struct {
	MinLength      int
	MaxLength      int
	RequireSpecial bool
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:      8,
		MaxLength:      128,
		RequireSpecial: true,
	}
}

// PasswordRules returns the strength rules in evaluation order:
// min length, max length, lowercase, uppercase, digit, then special
// character when the policy requires it.
func PasswordRules(field, value string, policy PasswordPolicy) []Rule {
	rules := []Rule{
		PasswordMinLength(field, value, policy.MinLength),
		PasswordMaxLength(field, value, policy.MaxLength),
		PasswordLowercase(field, value),
		PasswordUppercase(field, value),
		PasswordDigit(field, value),
	}
	if policy.RequireSpecial {
		rules = append(rules, PasswordSpecialChar(field, value))
	}
	return rules
}

func PasswordMinLength(field, value string, minLen int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= minLen
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be at least %d characters long", minLen),
			TranslationKey: "validation.password_min_length",
		},
	}
}

func PasswordMaxLength(field, value string, maxLen int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= maxLen
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be at most %d characters long", maxLen),
			TranslationKey: "validation.password_max_length",
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one lowercase letter",
			TranslationKey: "validation.password_lowercase",
		},
	}
}

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one uppercase letter",
			TranslationKey: "validation.password_uppercase",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one digit",
			TranslationKey: "validation.password_digit",
		},
	}
}

func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return specialCharRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one special character",
			TranslationKey: "validation.password_special",
		},
	}
}
