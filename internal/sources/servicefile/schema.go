package servicefile

// File is the top-level structure of services.yaml.
//
//	host: 127.0.0.1        # optional default for every entry
//	services:
//	  - name: jellyfin
//	    port: 8096
//	    emoji: "🎬"
//	    domain: jellyfin.lan
type File struct {
	Host     string         `yaml:"host,omitempty"`
	Services []ServiceEntry `yaml:"services"`
}

// ServiceEntry is one monitored service as written in the file.
type ServiceEntry struct {
	Name   string `yaml:"name"`
	Host   string `yaml:"host,omitempty"`
	Port   int    `yaml:"port"`
	Emoji  string `yaml:"emoji,omitempty"`
	Domain string `yaml:"domain,omitempty"`
}
