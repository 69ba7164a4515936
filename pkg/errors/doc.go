// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeCollectorFailed,
//	    "failed to collect volume groups",
//	    err,
//	    map[string]any{
//	        "fact": "vgs",
//	        "command": "/usr/sbin/lsvg -o",
//	    },
//	)
package errors
