package capture

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ytget/lotto645/internal/model"
	"github.com/ytget/lotto645/internal/platform"
)

// File naming constants
const (
	FilePrefix      = "Screenshot_"
	FileExtension   = ".jpg"
	CaptureIDPrefix = "capture-"

	// suffixes tried when screenshots share a millisecond
	maxNameAttempts = 100
)

var _ Saver = (*Service)(nil)

// Service saves ticket screenshots
type Service struct {
	dir      string
	quality  int
	log      *zap.Logger
	mu       sync.RWMutex
	onUpdate func(*model.Capture) // callback for UI updates

	// hooks replaced in tests
	now          func() time.Time
	ensureAccess func(dir string) error
	notifyScan   func(path string) error
}

// NewService creates a new capture service writing JPEGs of the given quality to dir
func NewService(dir string, quality int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		dir:          dir,
		quality:      quality,
		log:          logger.Named("capture"),
		now:          time.Now,
		ensureAccess: platform.EnsureWritable,
		notifyScan:   platform.NotifyMediaScanner,
	}
}

// SetUpdateCallback sets the callback function for capture updates
func (s *Service) SetUpdateCallback(callback func(*model.Capture)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetDirectory changes where future captures are written
func (s *Service) SetDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
}

// SetQuality changes the JPEG quality of future captures
func (s *Service) SetQuality(quality int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quality = quality
}

// Save writes img as a JPEG screenshot. A missing write permission finishes the
// capture as Denied and returns an error matching platform.ErrStoragePermission.
// The returned capture belongs to the caller; the service keeps no record of it.
func (s *Service) Save(ctx context.Context, ticketID string, img image.Image) (*model.Capture, error) {
	if img == nil {
		return nil, errors.New("no image to save")
	}

	s.mu.Lock()
	dir, quality := s.dir, s.quality
	c := &model.Capture{
		ID:        CaptureIDPrefix + uuid.NewString(),
		TicketID:  ticketID,
		Status:    model.CaptureStatusPending,
		StartedAt: s.now(),
	}
	s.mu.Unlock()

	s.setStatus(c, model.CaptureStatusSaving, "")

	if err := s.ensureAccess(dir); err != nil {
		if errors.Is(err, platform.ErrStoragePermission) {
			s.log.Warn("storage permission denied", zap.String("dir", dir))
			s.finish(c, model.CaptureStatusDenied, err)
			return c, err
		}
		err = errors.Wrap(err, "prepare screenshot directory")
		s.finish(c, model.CaptureStatusError, err)
		return c, err
	}

	if err := ctx.Err(); err != nil {
		s.finish(c, model.CaptureStatusError, err)
		return c, err
	}

	path, err := reservePath(dir, c.StartedAt.UnixMilli())
	if err != nil {
		s.finish(c, model.CaptureStatusError, err)
		return c, err
	}
	if err := writeJPEG(path, img, quality); err != nil {
		os.Remove(path)
		s.finish(c, model.CaptureStatusError, err)
		return c, err
	}

	s.mu.Lock()
	c.Path = path
	s.mu.Unlock()

	if err := s.notifyScan(path); err != nil {
		// The file is saved; the gallery only picks it up later.
		s.log.Warn("media scan failed", zap.String("path", path), zap.Error(err))
	}

	s.finish(c, model.CaptureStatusSaved, nil)
	s.log.Info("ticket saved",
		zap.String("id", c.ID),
		zap.String("path", path),
		zap.Duration("took", c.Duration()))
	return c, nil
}

// reservePath creates an empty Screenshot_<millis>.jpg that no other capture holds,
// adding a _N suffix when the name is taken. writeJPEG later replaces it.
func reservePath(dir string, millis int64) (string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		name := fmt.Sprintf("%s%d%s", FilePrefix, millis, FileExtension)
		if i > 0 {
			name = fmt.Sprintf("%s%d_%d%s", FilePrefix, millis, i, FileExtension)
		}
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, platform.DefaultFilePermissions)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", errors.Wrap(err, "create screenshot file")
		}
		if err := f.Close(); err != nil {
			return "", errors.Wrap(err, "close screenshot file")
		}
		return path, nil
	}
	return "", errors.Errorf("no free screenshot name for %d in %s", millis, dir)
}

// writeJPEG encodes img into a temporary file next to path and renames it in place
func writeJPEG(path string, img image.Image, quality int) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "create screenshot file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		tmp.Close()
		return errors.Wrap(err, "encode screenshot")
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "flush screenshot")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close screenshot file")
	}
	if err := os.Chmod(tmpName, platform.DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "chmod screenshot file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "move screenshot to %s", path)
	}
	return nil
}

func (s *Service) setStatus(c *model.Capture, status model.CaptureStatus, lastErr string) {
	s.mu.Lock()
	c.Status = status
	c.LastError = lastErr
	s.mu.Unlock()
	s.notifyUpdate(c)
}

func (s *Service) finish(c *model.Capture, status model.CaptureStatus, err error) {
	s.mu.Lock()
	c.Status = status
	c.FinishedAt = s.now()
	if err != nil {
		c.LastError = err.Error()
	}
	s.mu.Unlock()
	if err != nil && status == model.CaptureStatusError {
		s.log.Error("ticket save failed", zap.String("id", c.ID), zap.Error(err))
	}
	s.notifyUpdate(c)
}

// notifyUpdate hands a snapshot of c to the update callback
func (s *Service) notifyUpdate(c *model.Capture) {
	s.mu.RLock()
	callback := s.onUpdate
	snapshot := *c
	s.mu.RUnlock()
	if callback != nil {
		callback(&snapshot)
	}
}
