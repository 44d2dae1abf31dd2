// Package votes holds the client-side voting protocol: the advisory vote cap
// and the optimistic ballot state machine that predicts a toggle's outcome,
// applies it locally, then reconciles with or rolls back to the server's
// authoritative answer. It has no network or rendering dependencies.
package votes
