// Package report streams run diagnostics to a socket.io server. A reporter is
// a quadrature.Observer: every finished iteration is emitted as an
// "iteration" event and the final outcome as a "result" event.
//
// Emits are paced by a token bucket so that a fast run cannot flood the
// remote dashboard; each emit waits for a token rather than being dropped.
package report
