package common

// UnknownStr is the placeholder rendering for enum values outside their
// defined range.
const UnknownStr = "unknown"
