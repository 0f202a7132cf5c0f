// Package ui renders the busfinder state as a tabbed Bubble Tea interface.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - AppModel: Root model owning the booking state and the four tab views
//   - KeybindRegistry / KeyHandler: Leader-key (SPC) command dispatch
//   - FocusManager: Tracks and rotates focus across the home form fields
//
// All state lives in booking.State; views translate key events into its
// transition methods and project it back as text.
package ui
