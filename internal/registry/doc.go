// Package registry provides the central "glue" for the integrand module system.
//
// The Registry maps the string identifiers used in configuration files
// (e.g., integrand = "shubert") to the compiled Go constructors that build the
// actual quadrature.Integrand, together with the parameters each one accepts.
//
// During application startup every module registers itself and the registry
// is validated, so that a malformed module is caught before any run starts.
package registry
