package convert

import (
	"context"
	"os"

	"darkroom/internal/plan"
	"darkroom/internal/services"
)

// convertVideo hands one container file to the external transcoder and
// blocks until it exits. Partial outputs are removed on failure.
func (c *Converter) convertVideo(ctx context.Context, task plan.Task) error {
	if err := c.transcoder.Transcode(ctx, task.Input, task.Output); err != nil {
		os.Remove(task.Output)
		return services.Wrap(services.ErrSubprocess, "video", "transcode "+task.Input, err)
	}
	return nil
}
