// Package domain holds the identity value types, the store contracts, and the
// error taxonomy shared by every layer of the service.
//
// Value types are validated at construction and immutable afterwards. Store
// contracts are capability interfaces with interchangeable backends; call sites
// never inspect the concrete implementation.
package domain
