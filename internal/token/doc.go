// Package token issues and verifies the signed session tokens carried by
// clients as an auth cookie.
//
// Validation is pure with respect to the stores: it never consults the ban
// list. The orchestrator composes Validate with a revocation check.
package token
