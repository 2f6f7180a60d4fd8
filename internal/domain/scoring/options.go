package scoring

import "github.com/courtside/fastbreak/internal/domain/model"

// Option applies a configuration option to the Model.
type Option func(*Model)

// WithScale sets the rating population used for standardization.
func WithScale(scale model.Scale) Option {
	return func(m *Model) {
		if scale.StdDev > 0 {
			m.scale = scale
		}
	}
}

// WithParams replaces the weight tables wholesale.
func WithParams(params Params) Option {
	return func(m *Model) {
		m.params = params
	}
}

// WithShotParams overrides only the shot table.
func WithShotParams(p ShotParams) Option {
	return func(m *Model) {
		m.params.Shot = p
	}
}

// WithDriveParams overrides only the drive table.
func WithDriveParams(p DriveParams) Option {
	return func(m *Model) {
		m.params.Drive = p
	}
}
