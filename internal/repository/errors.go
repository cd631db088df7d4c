package repository

// ValidationError - malformed or out-of-range input, the message is shown
// to the user as-is
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError - bad credentials. Always carries the same generic message so
// that an unknown username is indistinguishable from a wrong password.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "Invalid username or password."
}

// NotFoundError - row absent or owned by another user
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return e.What + " not found"
}
