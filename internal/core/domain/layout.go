package domain

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "csspipe.yaml"

	// WorkerCommand is the hidden subcommand that runs the subprocess side of a dispatch.
	WorkerCommand = "worker"

	// LockDirName is the directory inside the disk cache holding per-hash lock files.
	LockDirName = ".locks"

	// MaxMemoryEntries is the number of entries a consumer's memory table may hold
	// before the next insertion clears it.
	MaxMemoryEntries = 5

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
