package capture

// Package capture writes screenshots of the ticket to the device photo
// library: permission probe, JPEG encoding, file write and media scan.
