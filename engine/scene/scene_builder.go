package scene

import "github.com/Carmen-Shannon/oxy-spheres/engine/logging"

// SceneBuilderOption is a functional option for configuring a Scene during New.
type SceneBuilderOption func(*scene)

// WithName sets the scene's identifier, used in log output and GPU labels.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithLogger sets the logger used while assembling the scene.
//
// Parameters:
//   - logger: the logger, nil selects a no-op logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger logging.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.logger = logging.OrNop(logger)
	}
}
