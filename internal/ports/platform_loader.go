package ports

// PlatformLoader reads platform definitions from a configuration file.
type PlatformLoader interface {
	Load(path string) ([]*PlatformConfig, error)
}
