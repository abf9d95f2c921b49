// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle: load a run file, apply
// overrides, resolve the integrand, consult the result cache, drive the
// convergence loop and report the outcome. It is decoupled from any specific
// entrypoint like a CLI or server.
package app
