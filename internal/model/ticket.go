package model

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/lotto645/internal/lotto"
)

// DashPlaceholder stands in for the numbers before the first draw
const DashPlaceholder = "—"

// Ticket is one drawn game: the numbers and the cells they mark
type Ticket struct {
	ID        string             `json:"id"`
	Draw      lotto.Draw         `json:"numbers"`
	Mask      lotto.PresenceMask `json:"-"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewTicket wraps a draw and its presence mask
func NewTicket(draw lotto.Draw, mask lotto.PresenceMask) Ticket {
	return Ticket{
		ID:        uuid.NewString(),
		Draw:      draw,
		Mask:      mask,
		CreatedAt: time.Now(),
	}
}

// NumbersString returns the numbers for display, or DashPlaceholder before the first draw
func (t Ticket) NumbersString() string {
	if t.Draw.IsEmpty() {
		return DashPlaceholder
	}
	return t.Draw.String()
}

// Capture represents a single screenshot save
type Capture struct {
	ID         string
	TicketID   string        // ticket shown when the screenshot was taken
	Path       string        // path of the written image
	Status     CaptureStatus
	LastError  string        // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// FileName returns the base name of the saved image, or "" if none
func (c *Capture) FileName() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Base(c.Path)
}

// Duration returns how long the save took, zero while still running
func (c *Capture) Duration() time.Duration {
	if c.FinishedAt.IsZero() || c.StartedAt.IsZero() {
		return 0
	}
	return c.FinishedAt.Sub(c.StartedAt)
}

// Summary returns a one-line description for notifications
func (c *Capture) Summary() string {
	switch c.Status {
	case CaptureStatusSaved:
		return fmt.Sprintf("Saved to %s", c.Path)
	case CaptureStatusError, CaptureStatusDenied:
		if c.LastError != "" {
			return fmt.Sprintf("%s: %s", c.Status, c.LastError)
		}
	}
	return c.Status.String()
}
