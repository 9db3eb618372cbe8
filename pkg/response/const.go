package response

// Standard messages and codes for the response envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
)

// DateFormat is the wire format for due-date fields in request and
// response payloads.
const DateFormat = "2006-01-02"
