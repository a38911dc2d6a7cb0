package errors

import "net/http"

// Коды ошибок ядра планировщика
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeResolutionFailed = "RESOLUTION_FAILED"
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeInfeasibleRoute  = "INFEASIBLE_ROUTE"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeCacheError       = "CACHE_ERROR"
	CodeInternalServer   = "INTERNAL_SERVER_ERROR"
)

var (
	ErrInvalidRequest = New(
		CodeInvalidInput,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCoordsOutOfBounds = New(
		CodeInvalidInput,
		"Coordinates out of bounds",
		http.StatusBadRequest,
	)

	ErrStartNotResolved = New(
		CodeResolutionFailed,
		"Could not resolve start location.",
		http.StatusBadRequest,
	)

	ErrEndNotResolved = New(
		CodeResolutionFailed,
		"Could not resolve end location.",
		http.StatusBadRequest,
	)

	ErrRouteUpstream = New(
		CodeUpstreamError,
		"Could not fetch route from routing provider.",
		http.StatusBadRequest,
	)

	ErrInfeasibleRoute = New(
		CodeInfeasibleRoute,
		"No feasible refuel path (e.g. segment > 500 miles without a station).",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		CodeDatabaseError,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		CodeCacheError,
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
