package config

// File is the structure of csspipe.yaml.
type File struct {
	Cache     CacheDTO `yaml:"cache"`
	InProcess bool     `yaml:"inProcess"`
	Timeout   string   `yaml:"timeout"`

	// Settings collects every other top-level key for the CSS toolchain.
	Settings map[string]any `yaml:",inline"`
}

// CacheDTO configures the cache tiers.
type CacheDTO struct {
	Dir    string `yaml:"dir"`
	Memory bool   `yaml:"memory"`
}
