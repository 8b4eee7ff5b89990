package main

// config is the internal representation of the CLI configuration. It is populated from command-line flags and
// `RUNJSON_*` environment variables through viper.
type config struct {
	Debug     bool   `mapstructure:"debug"`
	Input     string `mapstructure:"input"`
	InputFile string `mapstructure:"input-file"`
}
