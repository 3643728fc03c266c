// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Client and repository ports are implemented by outbound adapters and called
// by the application layer. Interaction ports connect the board engine to
// whatever surface presents it to a user.
package ports
