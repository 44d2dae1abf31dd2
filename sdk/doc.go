// Package sdk is a Go client for the SinoToriables HTTP API. A Client keeps
// the anonymous user_id cookie in a jar so one Client equals one voter; Voter
// layers the optimistic ballot state machine from package votes on top, so
// callers get instant local feedback with server reconciliation.
package sdk
