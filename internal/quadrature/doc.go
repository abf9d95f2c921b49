// Package quadrature is the parallel adaptive integration engine. It estimates
// the double integral of a two-dimensional scalar function over a rectangle
// with the composite midpoint rule, splitting every pass across concurrent
// workers and refining the grid until successive estimates agree.
//
// # How It Works
//
// A run is a sequence of passes at increasing resolution:
//
//  1. Partition splits the domain into one horizontal strip per worker. Every
//     strip keeps the full x-range; the last strip absorbs any remainder of the
//     y-step division and always ends exactly at the domain's upper y bound.
//  2. Pass spawns one goroutine per strip. Each goroutine runs IntegrateStrip
//     on the region it owns and sends a single partial sum on a channel.
//  3. The partial sums are added once every worker has returned.
//  4. Converge compares the new estimate with the previous one and either
//     stops or doubles both step counts and runs another pass.
//
// # Concurrency
//
// Workers are created per pass and joined before Pass returns; none outlive
// the call. The integrand is shared read-only between workers and each Region
// belongs to exactly one goroutine. The only state that survives between
// passes is the resolution, which Converge mutates while no worker is running.
//
// The order in which partial sums arrive is not fixed, so estimates are not
// bit-for-bit reproducible across runs. They agree within the configured
// tolerances.
//
// There is no timeout inside a pass. An integrand that never returns blocks
// the pass forever. Cancellation is only observed between iterations so the
// per-cell loop stays free of synchronization.
//
// # Failures
//
// A panic inside a worker, or a non-finite partial sum, fails the whole pass
// with a *WorkerError. A run that exhausts its iteration budget is not a
// failure: Converge returns the last estimate with State set to Exhausted.
package quadrature
