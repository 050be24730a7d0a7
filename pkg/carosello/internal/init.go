// Package internal contains the core infrastructure for the carosello UI toolkit.
// This includes SDL initialization, input processing, theming, animation timing,
// and rendering utilities. Types and functions in this package are not part of
// the public API.
package internal
