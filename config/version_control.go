package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark    = "v1.0.1"
	Tag_Seq      = "v1.1.0"
	Verify       = "v1.0.0"
	Sanity_check = "v1.0.1"
)
