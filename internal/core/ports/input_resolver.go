package ports

// InputResolver expands command-line input patterns into concrete stylesheet paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=input_resolver.go -destination=mocks/mock_input_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves files, directories and glob patterns relative to root.
	// Directories contribute every stylesheet beneath them.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
