// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package archive

import (
	"github.com/navwar/gofile/pkg/fs"
)

type UnzipInput struct {
	CreateDestination     bool
	Destination           string
	DestinationFileSystem fs.FileSystem
	Logger                fs.Logger
	Source                string
	SourceFileSystem      fs.FileSystem
}
