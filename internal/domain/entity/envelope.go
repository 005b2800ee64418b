package entity

// Envelope is the uniform result wrapper returned by every service call.
// Callers must check Success before trusting Data. Status carries the HTTP
// status code of the underlying response (zero when the request never
// reached the wire); it exists so the session layer can tell an expired
// token (401) apart from other failures, which the error string alone
// cannot express.
//
// On the wire, "data" is elided only when T is a pointer or slice holding
// its zero value; struct-valued envelopes always carry it, so consumers
// must key decisions on "success", never on the presence of "data".
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"-"`
}

// Ok builds a successful envelope around data.
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// OkStatus builds a successful envelope with the originating HTTP status.
func OkStatus[T any](data T, status int) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Status: status}
}

// Fail builds a failed envelope carrying a user-facing error message.
func Fail[T any](msg string) Envelope[T] {
	return Envelope[T]{Success: false, Error: msg}
}

// FailStatus builds a failed envelope with the originating HTTP status.
func FailStatus[T any](msg string, status int) Envelope[T] {
	return Envelope[T]{Success: false, Error: msg, Status: status}
}
