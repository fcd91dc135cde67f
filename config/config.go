package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360/ephyscore/errors"
)

// Defaults carries the descriptor default values: the sample rate of
// DataChannel, EventChannel, and SpikeChannel; the bitVolts scale for
// DataChannel; and the spike waveform's pre/post sample window. The
// channel constructors do not read a Defaults value; they use the same
// numbers as DefaultDefaults directly.
type Defaults struct {
	SampleRate       float64 `yaml:"sample_rate"`
	BitVolts         float32 `yaml:"bit_volts"`
	SpikePreSamples  uint32  `yaml:"spike_pre_samples"`
	SpikePostSamples uint32  `yaml:"spike_post_samples"`
}

// DefaultDefaults returns the values NewProvenance/NewDataChannel/
// NewSpikeChannel construct descriptors with.
func DefaultDefaults() Defaults {
	return Defaults{
		SampleRate:       44100.0,
		BitVolts:         1.0,
		SpikePreSamples:  8,
		SpikePostSamples: 32,
	}
}

// Validate rejects defaults that would produce a degenerate descriptor:
// a non-positive sample rate or bitVolts, or a spike window with zero
// total samples.
func (d Defaults) Validate() error {
	if d.SampleRate <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Defaults", "Validate", "sample_rate must be positive")
	}
	if d.BitVolts <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Defaults", "Validate", "bit_volts must be positive")
	}
	if d.SpikePreSamples+d.SpikePostSamples == 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Defaults", "Validate", "spike pre/post sample counts must not both be zero")
	}
	return nil
}

// Load reads a YAML defaults document from path using the package's
// safe file read, merges it over DefaultDefaults() field-by-field
// (keys absent from the document keep their default; a key set to
// zero overwrites it), and validates the result.
func Load(path string) (Defaults, error) {
	data, err := safeReadFile(path)
	if err != nil {
		return Defaults{}, errors.WrapInvalid(err, "config", "Load", "failed to read defaults file")
	}

	d := DefaultDefaults()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, errors.WrapInvalid(fmt.Errorf("parse defaults: %w", err), "config", "Load", "failed to parse YAML")
	}

	if err := d.Validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}
