// Package utils provides internal utility functions for the fit2gpx converter.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting utilities
//   - Great-circle distance calculation and formatting
package utils
