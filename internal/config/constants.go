package config

import "time"

// Base application details
const AppName = "kite"
const Version = "0.3.0"
const ConfigDirName = "kite"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "kite.log"

// Status Bar
const MessageTimeout = 4 * time.Second
const QuitConfirmations = 1 // Extra Ctrl-Q presses needed when there are unsaved changes

// Defaults for [editor]
const DefaultTabWidth = 8
const DefaultThemeName = "Kite Dark"
const SystemClipboard = false
