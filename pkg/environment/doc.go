// Package environment identifies the deployment environment (development,
// staging or production) and carries it through request contexts.
//
// The production flag drives security-relevant defaults elsewhere, most
// notably the Secure attribute of authentication cookies.
package environment
