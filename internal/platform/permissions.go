package platform

import "os"

// Permission constants for generated content.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)
