package api

// Kind classifies a request failure.
type Kind int

const (
	KindRequestFailed Kind = iota
	KindTimeout
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServer
)

// Error is a typed request failure. Message is always human-readable;
// Status carries the HTTP status when one was received.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches two api errors by Kind, so errors.Is(err, api.ErrNotFound)
// works on freshly constructed errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrTimeout means the request was aborted by the configured timeout.
	ErrTimeout = &Error{Kind: KindTimeout, Message: "Request timeout. Please check your connection."}

	// ErrUnauthorized means the token was rejected. The session has
	// already been cleared by the time callers see this.
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Status: 401, Message: "Session expired. Please login again."}

	ErrForbidden = &Error{Kind: KindForbidden, Status: 403, Message: "You do not have permission to perform this action."}
	ErrNotFound  = &Error{Kind: KindNotFound, Status: 404, Message: "Resource not found."}
	ErrServer    = &Error{Kind: KindServer, Status: 500, Message: "Server error. Please try again later."}
)

func requestFailed(status int, message string) *Error {
	return &Error{Kind: KindRequestFailed, Status: status, Message: message}
}
