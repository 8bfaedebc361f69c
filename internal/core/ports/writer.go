package ports

// OutputWriter persists rendered environment documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type OutputWriter interface {
	// WriteFile stores data at path. It reports false when the file already held
	// identical content and was left untouched.
	WriteFile(path string, data []byte) (bool, error)
}
