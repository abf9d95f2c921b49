// Package runstore caches finished integration results keyed by a
// fingerprint of the run configuration, so that re-running an identical
// configuration can skip the computation.
//
// Two backends are provided: MemoryStore for a single process and tests,
// and RedisStore for sharing results between runs and machines. Callers are
// expected to treat the cache as best-effort.
package runstore
