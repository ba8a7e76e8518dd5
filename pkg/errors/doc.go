// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to decode request body",
//	    decodeErr,
//	    map[string]interface{}{
//	        "path": r.URL.Path,
//	    },
//	)
package errors
