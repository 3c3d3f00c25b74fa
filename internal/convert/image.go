package convert

import (
	"image"
	"image/jpeg"
	"io"
	"os"

	"github.com/jdeng/goheif"

	"darkroom/internal/plan"
	"darkroom/internal/services"
)

// decodeImage is swappable so tests can exercise the worker without real
// HEIC fixtures.
var decodeImage = func(r io.Reader) (image.Image, error) {
	return goheif.Decode(r)
}

// convertImage decodes one HEIC/HEIF still and re-encodes it as JPEG at the
// configured quality. Partial outputs are removed on failure so a failed
// task leaves no file behind.
func (c *Converter) convertImage(task plan.Task) error {
	in, err := os.Open(task.Input)
	if err != nil {
		return services.Wrap(services.ErrDecode, "image", "open source", err)
	}
	defer in.Close()

	img, err := decodeImage(in)
	if err != nil {
		return services.Wrap(services.ErrDecode, "image", "decode "+task.Input, err)
	}

	out, err := os.Create(task.Output)
	if err != nil {
		return services.Wrap(services.ErrOutputWrite, "image", "create "+task.Output, err)
	}

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: c.quality}); err != nil {
		out.Close()
		os.Remove(task.Output)
		return services.Wrap(services.ErrEncode, "image", "encode "+task.Output, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(task.Output)
		return services.Wrap(services.ErrOutputWrite, "image", "flush "+task.Output, err)
	}
	return nil
}
