// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic run configuration (Model) and
// the Loader interface implemented by the format-specific loaders.
//
// Model is the single source of truth for the quadrature engine. Concrete
// loaders for HCL/JSON and YAML live in separate packages and only translate
// their file format into a Model; validation happens here, after any CLI
// overrides have been applied.
package config
