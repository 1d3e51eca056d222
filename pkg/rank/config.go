package rank

import (
	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

const (
	// DefaultDampingFactor is the probability that the random surfer
	// follows an outgoing link instead of jumping to a random page.
	DefaultDampingFactor = 0.85

	// DefaultSampleCount is the number of random-walk steps taken by the
	// sampling estimator.
	DefaultSampleCount = 10000

	// DefaultEpsilon is the per-page convergence threshold of the
	// iterative estimator.
	DefaultEpsilon = 0.001
)

// Config carries the parameters shared by both estimators.
// The zero value is usable: Validate fills in the defaults.
type Config struct {
	DampingFactor float64
	SampleCount   int
	Epsilon       float64
}

// Validate checks the parameter ranges and sets defaults where a parameter
// was left at its zero value.
func (c *Config) Validate() error {
	var err error
	if c.DampingFactor < 0 || c.DampingFactor >= 1.0 {
		err = multierror.Append(err, xerrors.Errorf("DampingFactor must be in the range [0, 1): %w", ErrInvalidArgument))
	} else if c.DampingFactor == 0 {
		c.DampingFactor = DefaultDampingFactor
	}

	if c.SampleCount < 0 {
		err = multierror.Append(err, xerrors.Errorf("SampleCount must be positive: %w", ErrInvalidArgument))
	} else if c.SampleCount == 0 {
		c.SampleCount = DefaultSampleCount
	}

	if c.Epsilon < 0 || c.Epsilon >= 1.0 {
		err = multierror.Append(err, xerrors.Errorf("Epsilon must be in the range (0, 1): %w", ErrInvalidArgument))
	} else if c.Epsilon == 0 {
		c.Epsilon = DefaultEpsilon
	}

	return err
}
