package reload

import "github.com/at-ishikawa/mnint/internal/parameters"

//go:generate mockgen -source=listener.go -destination=../mocks/reload/mock_listener.go -package=mock_reload

// Listener is notified after a reload replaced the current parameters.
type Listener interface {
	ParametersReloaded(previous, current *parameters.Config)
}
