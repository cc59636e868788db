package scene

import (
	"github.com/Carmen-Shannon/lumen/engine/model"
	"go.uber.org/zap"
)

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(s *scene)

// WithLogger sets the logger the scene reports setup, resizes and tunable changes to.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(log *zap.Logger) SceneBuilderOption {
	return func(s *scene) {
		if log != nil {
			s.log = log
		}
	}
}

// WithModel replaces the default cube with another instanced model.
// Its meshes and materials are uploaded by NewScene.
//
// Parameters:
//   - m: the model drawn for every instance
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithModel(m model.Model) SceneBuilderOption {
	return func(s *scene) {
		s.model = m
	}
}
