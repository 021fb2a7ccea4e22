package ports

// FrameworkDetector reports whether a host framework is installed next to the project.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type FrameworkDetector interface {
	// HasPackage reports whether the named package is resolvable from the working directory.
	HasPackage(name string) bool
}
