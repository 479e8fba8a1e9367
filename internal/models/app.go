package models

// TapeLine is one key of the session tape as the UI shows it.
type TapeLine struct {
	Key     string
	Display string
	Failed  bool
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Display string     // Text on the calculator display
	Pending string     // Symbol of the pending operation, empty when none
	Status  string     // Status bar text
	Failed  bool       // Whether the display holds an error message
	Tape    []TapeLine // Most recent keys, oldest first
	Width   int        // Terminal width
	Height  int        // Terminal height
}
