package settings

import "context"

// Store persists the visibility mapping. Load never fails: absence or a
// corrupt payload is a normal initial state and yields the defaults.
type Store interface {
	Load(ctx context.Context) Settings
	Save(ctx context.Context, s Settings) error
}
