// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

type CopyTreeInput struct {
	CreateDestination     bool
	Destination           string
	DestinationFileSystem FileSystem
	Logger                Logger
	Source                Source
	SourceFileSystem      FileSystem
}
