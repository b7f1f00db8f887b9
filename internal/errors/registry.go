package errors

// Known error codes. The code namespace is flat; ranges group by category.
//
//	W0xx registration
//	W1xx routing
//	W2xx history
//	W3xx render
//	W4xx protocol
//	W5xx config
const (
	CodeEmptyPattern     = "W001"
	CodeBadParamName     = "W002"
	CodeDuplicateParam   = "W003"
	CodeInvalidPath      = "W101"
	CodeAdapterClosed    = "W201"
	CodeAdapterNoHistory = "W202"
	CodeRenderPanic      = "W301"
	CodeApplyPatches     = "W302"
	CodeFrameTooLarge    = "W401"
	CodeBadFrameType     = "W402"
	CodeBadHandshake     = "W403"
	CodeConfigInvalid    = "W501"
)

// descriptions maps codes to one-line summaries used in logs and the demo
// error overlay.
var descriptions = map[string]string{
	CodeEmptyPattern:     "route pattern is empty or contains an empty segment",
	CodeBadParamName:     "route parameter name is missing or malformed",
	CodeDuplicateParam:   "route pattern declares the same parameter twice",
	CodeInvalidPath:      "navigation path failed canonicalization",
	CodeAdapterClosed:    "history adapter used after close",
	CodeAdapterNoHistory: "client does not support the History API",
	CodeRenderPanic:      "view handler panicked during render",
	CodeApplyPatches:     "sending patches to the client failed",
	CodeFrameTooLarge:    "protocol frame payload exceeds the size limit",
	CodeBadFrameType:     "unknown protocol frame type",
	CodeBadHandshake:     "malformed handshake payload",
	CodeConfigInvalid:    "configuration failed validation",
}

// Describe returns the registered one-line description for a code, or the
// empty string for unknown codes.
func Describe(code string) string {
	return descriptions[code]
}
