package sentiment

import "errors"

var (
	// ErrInvalidInput is returned for text that is empty after trimming.
	ErrInvalidInput = errors.New("text must not be empty")
	// ErrConfiguration is returned when the oracle credential is missing.
	ErrConfiguration = errors.New("sentiment oracle is not configured: set GEMINI_API_KEY")

	// Oracle failures. These never leave the fusion policy; they select the fallback.
	ErrOracleTransport = errors.New("oracle call failed")
	ErrOracleFormat    = errors.New("oracle response unusable")
)

// failureKind names an oracle failure for logs.
func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrOracleFormat):
		return "format"
	case errors.Is(err, ErrOracleTransport):
		return "transport"
	default:
		return "unknown"
	}
}
