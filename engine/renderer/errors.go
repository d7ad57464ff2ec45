package renderer

import "errors"

var (
	// ErrShaderCompile wraps a shader module creation failure.
	ErrShaderCompile = errors.New("renderer: shader compile failed")

	// ErrNotSetup is returned by Execute before Setup succeeds.
	ErrNotSetup = errors.New("renderer: not set up")

	// ErrUnknownUniform is returned when a SetUniform command names no known uniform.
	ErrUnknownUniform = errors.New("renderer: unknown uniform")

	// ErrNoCameraBinding is returned when the vertex shader declares no camera uniform.
	ErrNoCameraBinding = errors.New("renderer: vertex shader declares no camera binding")
)
