// Package core provides the business logic for reshaping delimited text files.
//
// This package contains all domain logic independent of the command line.
// It can be used by the CLI, other tools, or tests without modification.
//
// # Architecture
//
// A run is a strictly sequential, fully buffered pipeline:
//
//  1. [ReadFile] decodes the input into a [Dataset] of [Record] values, one
//     per data row, keyed by the header's column names.
//  2. [ApplyTransforms] runs an ordered list of [Transform] values over the
//     whole Dataset, one transform at a time.
//  3. [WriteFile] serializes the Dataset through an output [Schema], quoting
//     every field, and syncs the file before returning.
//
// [Pipeline] drives the three stages and tracks its [Phase]:
//
//	idle -> reading -> transforming -> writing -> done
//
// Any stage failure moves the pipeline to failed. A pipeline runs once.
//
// # Profiles
//
// Output schemas and transforms are registered by name at init time, the
// same way for every export format:
//
//	core.RegisterProfile(core.Profile{
//	    Key:        "hevy",
//	    Columns:    core.Schema{{Key: "Date", Title: "Date"}},
//	    Transforms: []string{"date_noon"},
//	})
//
// # Error Handling
//
// Every pipeline failure is a [*StageError] naming the phase that failed.
// [MapError] maps it to a coded message for display:
//
//   - FILE001-FILE005: File errors (missing input, bad CSV, output directory)
//   - VAL004: Missing required column
//   - CFG001-CFG002: Unknown profile or transform
package core
