// Package diagnostic collects structured findings produced while checking a
// mutability declaration against the type it describes.
//
// Key capabilities:
//   - Errors for declared properties the type does not expose
//   - Errors for declared properties that are callables and cannot be written
//   - Warnings for redundant declarations
//   - A single combined error for callers that only need pass/fail
package diagnostic
