package importer

import "github.com/rotisserie/eris"

// Import failure taxonomy. All of these surface to the caller as a single
// human-readable message; none commit a partial import.
var (
	// ErrPermissionNotGranted means no import folder has been granted yet.
	ErrPermissionNotGranted = eris.New("import folder not granted")

	// ErrFolderUnavailable means the granted folder no longer exists.
	ErrFolderUnavailable = eris.New("granted folder unavailable")

	// ErrFileNotFound means the named spreadsheet is absent from the folder.
	ErrFileNotFound = eris.New("spreadsheet not found in granted folder")

	// ErrUnreadableWorkbook means neither supported workbook format parses.
	ErrUnreadableWorkbook = eris.New("unreadable workbook")

	// ErrMissingColumn means a mandatory header column is absent.
	ErrMissingColumn = eris.New("missing mandatory column")
)
