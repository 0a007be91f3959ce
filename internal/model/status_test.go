package model

import "testing"

func TestCaptureStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   CaptureStatus
		expected bool
	}{
		{CaptureStatusPending, false},
		{CaptureStatusSaving, true},
		{CaptureStatusSaved, false},
		{CaptureStatusDenied, false},
		{CaptureStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("CaptureStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestCaptureStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   CaptureStatus
		expected bool
	}{
		{CaptureStatusPending, false},
		{CaptureStatusSaving, false},
		{CaptureStatusSaved, true},
		{CaptureStatusDenied, true},
		{CaptureStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("CaptureStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestCaptureStatus_String(t *testing.T) {
	status := CaptureStatusSaved
	expected := "Saved"
	result := status.String()

	if result != expected {
		t.Errorf("CaptureStatus.String() = %s, expected %s", result, expected)
	}
}
