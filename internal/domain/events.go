package domain

// Subjects of the domain events published after successful writes.
const (
	EventUserRegistered     = "users.registered"
	EventUserConfirmed      = "users.confirmed"
	EventOrderCreated       = "orders.created"
	EventOrderStatusChanged = "orders.status_changed"
)
