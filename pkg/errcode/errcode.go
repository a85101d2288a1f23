package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBQueryTablesError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Harvest errors
	HarvestWorkbookOpenError
	HarvestSheetMissingError
	HarvestTranslateError
	HarvestColumnMissingError
	HarvestWriteError
	HarvestAllWorkbooksFailedError
	HarvestCancelledError

	// Load errors
	LoadTableReadError
	LoadCopyError
)
