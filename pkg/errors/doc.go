// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeConflict,
//	    "version claimed by two generations",
//	    cause,
//	    map[string]any{
//	        "catalog": "nms",
//	        "version": "1.20.4",
//	    },
//	)
//
// Callers branch on the code with HasCode or CodeOf rather than on message text.
package errors
