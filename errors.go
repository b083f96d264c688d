package bashconf

import "errors"

var (
	// ErrNoFilePath indicates a save was requested on a config that is not
	// bound to any file. Use SaveAs to supply an explicit destination.
	ErrNoFilePath = errors.New("no file path set")
	// ErrCreateConfigDir indicates a config directory could not be created.
	ErrCreateConfigDir = errors.New("failed to create config directory")
	// ErrWriteConfig indicates a config file could not be written.
	ErrWriteConfig = errors.New("failed to write config")
)
