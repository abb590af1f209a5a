// Package kvstore provides the durable key/value repository backing the
// registration state. All values are strings; a missing key reads as "".
package kvstore

// Keys persisted by the storefront.
const (
	KeyRegistered   = "registered"
	KeyName         = "user_name"
	KeyPhone        = "user_phone"
	KeyInviteCode   = "invite_code"
	KeyRegisteredAt = "registered_at"
	KeySkippedAt    = "skipped_at"
)

// Repository is a durable string key/value store. Backends are swappable;
// business logic goes through the typed helpers in this package.
type Repository interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
