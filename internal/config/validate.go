package config

import (
	"errors"
	"fmt"
	"strings"
)

// ffmpeg rejects unknown presets at runtime; validating here keeps bad
// invocations from surfacing halfway through a batch.
var knownPresets = map[string]struct{}{
	"ultrafast": {},
	"superfast": {},
	"veryfast":  {},
	"faster":    {},
	"fast":      {},
	"medium":    {},
	"slow":      {},
	"slower":    {},
	"veryslow":  {},
}

// Validate ensures the configuration is usable. It must pass before any
// conversion work begins.
func (c *Config) Validate() error {
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	return c.validateLibrary()
}

func (c *Config) validateConvert() error {
	if c.Convert.Quality < 1 || c.Convert.Quality > 100 {
		return fmt.Errorf("convert.quality must be between 1 and 100 (got %d)", c.Convert.Quality)
	}
	if c.Convert.Workers < 0 {
		return errors.New("convert.workers must be zero or positive")
	}
	if len(c.Convert.ImageExtensions) == 0 && len(c.Convert.VideoExtensions) == 0 {
		return errors.New("convert: at least one image or video extension must be configured")
	}
	for _, ext := range append(append([]string{}, c.Convert.ImageExtensions...), c.Convert.VideoExtensions...) {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("convert: invalid extension %q (want e.g. %q)", ext, ".heic")
		}
	}
	return nil
}

func (c *Config) validateFFmpeg() error {
	if _, ok := knownPresets[c.FFmpeg.Preset]; !ok {
		return fmt.Errorf("ffmpeg.preset: unknown preset %q", c.FFmpeg.Preset)
	}
	return nil
}

func (c *Config) validateLibrary() error {
	name := c.Library.OutputDirName
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("library.output_dir_name must be a bare directory name, got %q", name)
	}
	return nil
}
