package email

// Provider delivers mail. Callers treat delivery as fire-and-forget:
// a failed send surfaces as an error but never rolls back state committed
// before the send attempt.
type Provider interface {
	Send(to, subject, body string) error
}
