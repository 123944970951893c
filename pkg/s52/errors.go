package s52

import (
	"fmt"
)

// ErrInvalidConfig indicates a layer configuration or style option that the
// compiler refuses to build with. Compilation aborts before any layer is
// generated; there is no partial output to recover.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// ErrUnknownMode indicates a mode name that is not DAY, DUSK, or NIGHT.
type ErrUnknownMode struct {
	Name string
}

func (e *ErrUnknownMode) Error() string {
	return fmt.Sprintf("unknown display mode %q (want DAY, DUSK, or NIGHT)", e.Name)
}

// ErrAssetLoad indicates a compiler asset (lookup table, palette file, or
// symbol registry) that failed to parse.
type ErrAssetLoad struct {
	Asset string
	Err   error
}

func (e *ErrAssetLoad) Error() string {
	return fmt.Sprintf("load %s: %v", e.Asset, e.Err)
}

func (e *ErrAssetLoad) Unwrap() error {
	return e.Err
}
