// Package validator provides small declarative rules for request input.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply evaluates every rule and aggregates the failures; First stops
// at the first failing rule, which is what ordered policies such as password
// strength need:
//
//	err := validator.First(
//	    validator.ValidEmail("email", email),
//	)
//
// Failures are returned as ValidationErrors, which implements error and
// matches ErrValidationFailed via errors.Is.
package validator
