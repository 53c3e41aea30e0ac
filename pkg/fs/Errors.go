// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"errors"
)

// Sentinel errors wrapped by the operations in this package.
// Callers match them with errors.Is.
var (
	// ErrNotFound indicates a file that was expected to exist does not.
	ErrNotFound = errors.New("does not exist")
	// ErrNotDirectory indicates a path that was required to name a directory does not.
	ErrNotDirectory = errors.New("is not a directory")
	// ErrInvalidPath indicates a path that names neither a file nor a directory.
	ErrInvalidPath = errors.New("is neither a file nor a directory")
	// ErrInvalidDestination indicates a destination whose final component looks like a file.
	ErrInvalidDestination = errors.New("destination should be a directory path")
	// ErrDestinationNotExist indicates a destination directory that is absent and was not requested to be created.
	ErrDestinationNotExist = errors.New("destination directory does not exist")
	// ErrSourceNotFound indicates a source specification that could not be resolved.
	ErrSourceNotFound = errors.New("unknown source")
)
