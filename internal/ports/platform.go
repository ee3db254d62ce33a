package ports

// PlatformConfig describes one build target.
type PlatformConfig struct {
	Name string
	// BuildPath is the output directory. When set it must end in a separator.
	BuildPath string
	// Files are processed in order.
	Files []*FileSpec
}
