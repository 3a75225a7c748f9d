package pathconv

import "strings"

// DefaultMountRoot is where WSL mounts Windows drives unless wsl.conf says
// otherwise.
const DefaultMountRoot = "/mnt/"

// NormalizeMountRoot returns root with exactly one trailing slash, or the
// default when root is empty.
func NormalizeMountRoot(root string) string {
	if root == "" {
		return DefaultMountRoot
	}
	if strings.HasSuffix(root, "/") {
		return root
	}
	return root + "/"
}
