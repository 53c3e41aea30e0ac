// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"
)

// CopyTree copies the resolved source paths into the destination directory,
// preserving the structure of each path relative to the common source prefix.
// The destination must name a directory: a final path component with an
// extension is rejected before anything is copied.  The destination directory
// itself is only created when CreateDestination is set, while intermediate
// directories for individual entries are always created on demand.  Existing
// destination files are silently overwritten.  If a copy fails partway
// through the list, entries already copied are left in place.
func CopyTree(ctx context.Context, input *CopyTreeInput) error {
	prefix, names, err := input.Source.Resolve(ctx, input.SourceFileSystem)
	if err != nil {
		return err
	}

	if input.Logger != nil {
		input.Logger.Log("Copying tree", map[string]interface{}{
			"prefix": prefix,
			"dst":    input.Destination,
			"count":  len(names),
		})
	}

	if input.DestinationFileSystem.Ext(input.Destination) != "" {
		return fmt.Errorf("destination %q: %w", input.Destination, ErrInvalidDestination)
	}

	if input.CreateDestination {
		if err := input.DestinationFileSystem.MkdirAll(ctx, input.Destination, 0755); err != nil {
			return fmt.Errorf("error creating destination directory %q: %w", input.Destination, err)
		}
	}

	if _, err := input.DestinationFileSystem.Stat(ctx, input.Destination); err != nil {
		if input.DestinationFileSystem.IsNotExist(err) {
			return fmt.Errorf("destination %q: %w", input.Destination, ErrDestinationNotExist)
		}
		return fmt.Errorf("error stating destination %q: %w", input.Destination, err)
	}

	prefixParts := input.SourceFileSystem.Split(prefix)
	for _, name := range names {
		// re-root the path segment by segment rather than by string substitution,
		// so a prefix that recurs later in the path cannot corrupt the result
		parts := input.SourceFileSystem.Split(name)
		relative := parts[len(prefixParts):]
		if len(relative) == 0 {
			relative = []string{input.SourceFileSystem.Base(name)}
		}
		destinationName := input.DestinationFileSystem.Join(append([]string{input.Destination}, relative...)...)

		if err := input.DestinationFileSystem.MkdirAll(ctx, input.DestinationFileSystem.Dir(destinationName), 0755); err != nil {
			return fmt.Errorf("error creating parent directories for %q: %w", destinationName, err)
		}

		sourceFileInfo, err := input.SourceFileSystem.Stat(ctx, name)
		if err != nil {
			return fmt.Errorf("error stating source %q: %w", name, err)
		}

		if sourceFileInfo.IsDir() {
			if err := input.DestinationFileSystem.MkdirAll(ctx, destinationName, 0755); err != nil {
				return fmt.Errorf("error creating destination directory %q: %w", destinationName, err)
			}
			continue
		}

		err = Copy(ctx, &CopyInput{
			SourceName:            name,
			SourceFileSystem:      input.SourceFileSystem,
			DestinationName:       destinationName,
			DestinationFileSystem: input.DestinationFileSystem,
			Logger:                input.Logger,
			MakeParents:           true,
		})
		if err != nil {
			return fmt.Errorf("error copying %q to %q: %w", name, destinationName, err)
		}
	}

	return nil
}
