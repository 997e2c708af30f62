package signer

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

const (
	// ErrInvalidKey is returned when a private key is not a valid non-zero
	// secp256k1 scalar less than the group order, or when no key is given.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrInvalidMessage is returned when a digest cannot be used as an ECDSA
	// message, which for secp256k1 means it is not exactly 32 bytes.
	ErrInvalidMessage = ErrorKind("ErrInvalidMessage")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to signing. It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
