// Package tables registers all export profiles and transforms with the core
// registry. Import this package to ensure they are registered.
package tables

// This file exists to provide a single import point.
// Each profile file uses init() to register itself.
