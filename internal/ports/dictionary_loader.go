package ports

// DictionaryLoader reads an already resolved token file into a Dictionary.
type DictionaryLoader interface {
	Load(path string) (*Dictionary, error)
}
