package domain

// ValidationError marks a client input problem. The API layer maps it to a
// 400 response carrying the message as field detail.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrValidation wraps a message as a ValidationError.
func ErrValidation(msg string) error { return ValidationError(msg) }
