// Package yamlconfig implements config.Loader for YAML run files. Keys match
// the HCL and JSON formats one to one.
package yamlconfig
