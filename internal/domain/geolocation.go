package domain

// GeolocationStatus is the outcome of a one-shot device geolocation attempt.
type GeolocationStatus string

const (
	GeolocationOK          GeolocationStatus = "ok"
	GeolocationDenied      GeolocationStatus = "denied"
	GeolocationUnsupported GeolocationStatus = "unsupported"
)

// GeolocationResult models the platform geolocation API as a result value
// rather than a pair of success/error callbacks. Position is set only when
// Status is GeolocationOK.
type GeolocationResult struct {
	Status   GeolocationStatus
	Position *Point
}
