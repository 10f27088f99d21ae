package config

// File represents the structure of the mexpd.yaml configuration file.
type File struct {
	Version     string   `yaml:"version"`
	Socket      string   `yaml:"socket"`
	IdleTimeout string   `yaml:"idleTimeout"`
	LogFormat   string   `yaml:"logFormat"`
	PluginDirs  []string `yaml:"pluginDirs"`
}
