package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Dir               string `usage:"data directory"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:   "127.0.0.1:8080",
		Dir:        "data",
		ShowBanner: true,
	}
}
