package model

// CaptureStatus represents the status of a ticket screenshot save
type CaptureStatus string

const (
	// CaptureStatusPending means the capture is queued but not started
	CaptureStatusPending CaptureStatus = "Pending"

	// CaptureStatusSaving means the image is being encoded and written
	CaptureStatusSaving CaptureStatus = "Saving"

	// CaptureStatusSaved means the image is in the photo library
	CaptureStatusSaved CaptureStatus = "Saved"

	// CaptureStatusDenied means storage permission was not granted
	CaptureStatusDenied CaptureStatus = "Denied"

	// CaptureStatusError means the save failed with an error
	CaptureStatusError CaptureStatus = "Error"
)

// String returns the string representation of CaptureStatus
func (cs CaptureStatus) String() string {
	return string(cs)
}

// IsActive returns true if the capture is in progress
func (cs CaptureStatus) IsActive() bool {
	return cs == CaptureStatusSaving
}

// IsFinished returns true if the capture is in a finished state (saved, denied, or error)
func (cs CaptureStatus) IsFinished() bool {
	return cs == CaptureStatusSaved || cs == CaptureStatusDenied || cs == CaptureStatusError
}
