package session

// Persisted session state lives under three independent string keys, written
// one call each so no key is ever partially updated.
const (
	// KeyToken holds the opaque bearer token
	KeyToken = "refineryiq_token"
	// KeyRole holds the normalized role string
	KeyRole = "refineryiq_role"
	// KeyUser holds the JSON-encoded user record {email, name, role}
	KeyUser = "refineryiq_user"
)

// Repository is a string-keyed store for persisted session fields. It stands
// in for the browser's local storage in the original product; injecting it
// keeps the manager free of ambient global state and lets tests substitute an
// in-memory fake.
type Repository interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool)

	// Set writes the value for key in a single call
	Set(key, value string) error

	// Delete removes the key; removing an absent key is not an error
	Delete(key string)
}
