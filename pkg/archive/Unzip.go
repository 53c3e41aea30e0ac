// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/navwar/gofile/pkg/fs"
)

// Unzip extracts every entry of the archive into the destination directory,
// preserving the relative paths recorded in the archive.  The destination is
// created first when CreateDestination is set; intermediate directories for
// individual entries are always created as needed.  Entries whose path would
// escape the destination directory are rejected.
func Unzip(ctx context.Context, input *UnzipInput) error {
	if input.Logger != nil {
		input.Logger.Log("Extracting archive", map[string]interface{}{
			"src": input.Source,
			"dst": input.Destination,
		})
	}

	if input.CreateDestination {
		if err := input.DestinationFileSystem.MkdirAll(ctx, input.Destination, 0755); err != nil {
			return fmt.Errorf("error creating destination directory %q: %w", input.Destination, err)
		}
	}

	size, err := input.SourceFileSystem.Size(ctx, input.Source)
	if err != nil {
		if input.SourceFileSystem.IsNotExist(err) {
			return fmt.Errorf("archive %q: %w", input.Source, fs.ErrNotFound)
		}
		return fmt.Errorf("error stating archive %q: %w", input.Source, err)
	}

	sourceFile, err := input.SourceFileSystem.Open(ctx, input.Source)
	if err != nil {
		return fmt.Errorf("error opening archive at %q: %w", input.Source, err)
	}

	reader, err := zip.NewReader(sourceFile, size)
	if err != nil {
		_ = sourceFile.Close() // silently close archive
		return fmt.Errorf("error reading archive at %q: %w", input.Source, err)
	}

	extracted := 0
	for _, entry := range reader.File {
		cleaned := path.Clean(entry.Name)
		if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			_ = sourceFile.Close() // silently close archive
			return fmt.Errorf("archive entry %q escapes destination directory %q", entry.Name, input.Destination)
		}
		destinationName := input.DestinationFileSystem.Join(input.Destination, cleaned)

		if entry.FileInfo().IsDir() {
			if err := input.DestinationFileSystem.MkdirAll(ctx, destinationName, 0755); err != nil {
				_ = sourceFile.Close() // silently close archive
				return fmt.Errorf("error creating directory %q: %w", destinationName, err)
			}
			continue
		}

		parent := input.DestinationFileSystem.Dir(destinationName)
		if err := input.DestinationFileSystem.MkdirAll(ctx, parent, 0755); err != nil {
			_ = sourceFile.Close() // silently close archive
			return fmt.Errorf("error creating parent directories for %q: %w", destinationName, err)
		}

		entryReader, err := entry.Open()
		if err != nil {
			_ = sourceFile.Close() // silently close archive
			return fmt.Errorf("error opening archive entry %q: %w", entry.Name, err)
		}

		destinationFile, err := input.DestinationFileSystem.OpenFile(ctx, destinationName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			_ = entryReader.Close() // silently close entry
			_ = sourceFile.Close()  // silently close archive
			return fmt.Errorf("error creating destination file at %q: %w", destinationName, err)
		}

		_, err = io.Copy(destinationFile, entryReader)
		if err != nil {
			_ = entryReader.Close()     // silently close entry
			_ = destinationFile.Close() // silently close destination file
			_ = sourceFile.Close()      // silently close archive
			return fmt.Errorf("error extracting %q to %q: %w", entry.Name, destinationName, err)
		}

		err = entryReader.Close()
		if err != nil {
			_ = destinationFile.Close() // silently close destination file
			_ = sourceFile.Close()      // silently close archive
			return fmt.Errorf("error closing archive entry after extracting: %w", err)
		}

		err = destinationFile.Close()
		if err != nil {
			_ = sourceFile.Close() // silently close archive
			return fmt.Errorf("error closing destination file after extracting: %w", err)
		}

		extracted++
	}

	err = sourceFile.Close()
	if err != nil {
		return fmt.Errorf("error closing archive after extracting: %w", err)
	}

	if input.Logger != nil {
		input.Logger.Log("Done extracting archive", map[string]interface{}{
			"src":   input.Source,
			"dst":   input.Destination,
			"files": extracted,
		})
	}

	return nil
}
