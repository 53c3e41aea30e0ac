// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// CommonPrefix returns the deepest path shared by every name, comparing whole
// path segments rather than characters.  A single name is its own prefix.
// Absolute paths that share nothing beyond the root return the root, and
// relative paths that share nothing return the empty string.
func CommonPrefix(fsys FileSystem, names []string) string {
	if len(names) == 0 {
		return ""
	}
	common := fsys.Split(names[0])
	for _, name := range names[1:] {
		parts := fsys.Split(name)
		i := 0
		for ; i < len(common) && i < len(parts); i++ {
			if common[i] != parts[i] {
				break
			}
		}
		common = common[:i]
	}
	if len(common) == 0 {
		return ""
	}
	return fsys.Join(common...)
}
