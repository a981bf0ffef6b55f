package errors

import "net/http"

var (
	ErrLoadFailure = New(
		"LOAD_FAILURE",
		"Data failed to load",
		http.StatusBadGateway,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Map session not found",
		http.StatusNotFound,
	)

	ErrSessionClosed = New(
		"SESSION_CLOSED",
		"Map session already closed",
		http.StatusGone,
	)

	ErrPOINotFound = New(
		"POI_NOT_FOUND",
		"Point of interest not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Geolocation outcomes are surfaced as dismissable notices, not HTTP
// failures; the status codes here apply only if one escapes to the
// error envelope.
var (
	ErrGeolocationDenied = New(
		"GEOLOCATION_DENIED",
		"Device location permission was denied",
		http.StatusOK,
	)

	ErrGeolocationUnsupported = New(
		"GEOLOCATION_UNSUPPORTED",
		"Device location is not supported on this platform",
		http.StatusOK,
	)
)
