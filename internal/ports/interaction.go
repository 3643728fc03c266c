package ports

import "context"

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm returns true when the user accepts. An error means no answer
	// could be obtained and is treated as a decline.
	Confirm(ctx context.Context, question string) (bool, error)
}

// Notifier surfaces user-visible messages for failures handled at the board
// boundary.
type Notifier interface {
	Error(ctx context.Context, message string)
}
