// internal/event/event.go
package event

import "github.com/bethropolis/kite/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // Text changed through an edit
	TypeBufferLoaded   // A file was read into the document
	TypeBufferSaved    // The document was written to disk
	TypeCursorMoved    // The cursor position changed

	// Search events
	TypeSearchStarted
	TypeSearchEnded

	// UI events
	TypeModeChanged
	TypeThemeChanged

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeBufferModified: "BufferModified",
	TypeBufferLoaded:   "BufferLoaded",
	TypeBufferSaved:    "BufferSaved",
	TypeCursorMoved:    "CursorMoved",
	TypeSearchStarted:  "SearchStarted",
	TypeSearchEnded:    "SearchEnded",
	TypeModeChanged:    "ModeChanged",
	TypeThemeChanged:   "ThemeChanged",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data any
}

// --- Payloads ---

// BufferModifiedData reports where an edit left the cursor.
type BufferModifiedData struct {
	Position types.Position
}

type BufferLoadedData struct {
	FilePath string
	Language string
}

type BufferSavedData struct {
	FilePath string
	Language string
}

type CursorMovedData struct {
	NewPosition types.Position
}

// SearchEndedData tells whether the match was accepted or the cursor went
// back to where the search began.
type SearchEndedData struct {
	Confirmed bool
	Position  types.Position
}

type ModeChangedData struct {
	Mode string
}

type ThemeChangedData struct {
	Name string
}
