package ports

// FormatRegistry is the port for looking up content strategies by name.
type FormatRegistry interface {
	// Format returns the named format function, or an error if unknown.
	Format(name string) (ContentFunc, error)
	// Template returns the named template function, or an error if unknown.
	Template(name string) (ContentFunc, error)
}
