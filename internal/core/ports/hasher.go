package ports

// Hasher defines the interface for computing fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashString returns the fingerprint of s as a fixed-width hex string.
	HashString(s string) string
}
