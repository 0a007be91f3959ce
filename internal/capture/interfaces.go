package capture

import (
	"context"
	"image"

	"github.com/ytget/lotto645/internal/model"
)

// Saver defines the interface for the screenshot save service.
type Saver interface {
	SetUpdateCallback(func(*model.Capture))
	Save(ctx context.Context, ticketID string, img image.Image) (*model.Capture, error)
	SetDirectory(dir string)
	SetQuality(quality int)
}
