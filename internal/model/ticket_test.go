package model

import (
	"testing"
	"time"

	"github.com/ytget/lotto645/internal/lotto"
)

func TestNewTicket(t *testing.T) {
	draw := lotto.NewDraw(1, 2, 3, 4, 5, 6)
	mask := lotto.ToPresenceMask(draw, lotto.StandardRange)

	ticket := NewTicket(draw, mask)

	if ticket.ID == "" {
		t.Error("Expected ticket ID to be set")
	}
	if ticket.Mask.Count() != 6 {
		t.Errorf("Expected 6 marked cells, got %d", ticket.Mask.Count())
	}
	if ticket.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	other := NewTicket(draw, mask)
	if other.ID == ticket.ID {
		t.Error("Expected unique ticket IDs")
	}
}

func TestTicket_NumbersString(t *testing.T) {
	tests := []struct {
		ticket   Ticket
		expected string
	}{
		{Ticket{}, DashPlaceholder},
		{Ticket{Draw: lotto.NewDraw(45, 3, 21, 8, 14, 39)}, "03 08 14 21 39 45"},
	}

	for _, test := range tests {
		result := test.ticket.NumbersString()
		if result != test.expected {
			t.Errorf("NumbersString() = %s, expected %s", result, test.expected)
		}
	}
}

func TestCapture_FileName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"", ""},
		{"/sdcard/DCIM/Screenshots/Screenshot_1700000000000.jpg", "Screenshot_1700000000000.jpg"},
	}

	for _, test := range tests {
		c := &Capture{Path: test.path}
		if got := c.FileName(); got != test.expected {
			t.Errorf("FileName() with path=%q = %q, expected %q", test.path, got, test.expected)
		}
	}
}

func TestCapture_Duration(t *testing.T) {
	start := time.Now()
	c := &Capture{StartedAt: start}
	if c.Duration() != 0 {
		t.Errorf("Expected zero duration while running, got %v", c.Duration())
	}

	c.FinishedAt = start.Add(250 * time.Millisecond)
	if c.Duration() != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", c.Duration())
	}
}

func TestCapture_Summary(t *testing.T) {
	tests := []struct {
		capture  Capture
		expected string
	}{
		{Capture{Status: CaptureStatusSaved, Path: "/tmp/a.jpg"}, "Saved to /tmp/a.jpg"},
		{Capture{Status: CaptureStatusDenied, LastError: "storage permission denied"}, "Denied: storage permission denied"},
		{Capture{Status: CaptureStatusError}, "Error"},
		{Capture{Status: CaptureStatusSaving}, "Saving"},
	}

	for _, test := range tests {
		if got := test.capture.Summary(); got != test.expected {
			t.Errorf("Summary() = %q, expected %q", got, test.expected)
		}
	}
}
