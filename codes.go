package errtaxonomy

// Kinds shipped with the taxonomy. Applications register their own alongside
// these; names and message codes are stable and never reused.
var (
	UnknownError         = NewKind("UnknownError", "Err-00000", 500, "Unexpected error")
	IoError              = NewKind("IoError", "Err-00001", 500, "Input / output error")
	ValidationError      = NewKind("ValidationError", "Err-00002", 400, "Validation error")
	InvalidConfiguration = NewKind("InvalidConfiguration", "Err-00003", 400, "Invalid configuration")
	TimeoutError         = NewKind("TimeoutError", "Err-00004", 504, "Request timed out")

	// 499 is the common convention for client-canceled requests.
	CancellationError = NewKind("CancellationError", "Err-00005", 499, "Request canceled")
)

// Predefined error definitions bound to the shipped kinds. Several share a
// kind; each keeps its own class string.
var (
	Unexpected           = Define("Unexpected", UnknownError)
	FileRead             = Define("FileRead", IoError)
	FileNotExists        = Define("FileNotExists", IoError)
	DeserializationError = Define("DeserializationError", ValidationError)
	SerializationError   = Define("SerializationError", ValidationError)
	Timeout              = Define("Timeout", TimeoutError)
	Canceled             = Define("Canceled", CancellationError)
)
