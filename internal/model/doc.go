package model

// Package model defines domain data structures used across the app: drawn
// tickets, screenshot captures, and capture status enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
