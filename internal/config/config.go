package config

// DefaultDictionaryPath is the file read when nothing else is configured.
const DefaultDictionaryPath = "ko_dict_in_ko_ja_es.json"

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	UI         UIConfig         `yaml:"ui"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig points at the entry collection.
type DictionaryConfig struct {
	Path string `yaml:"path" env:"KAMUS_FILE" env-default:"ko_dict_in_ko_ja_es.json"`
}

// UIConfig holds presentation settings shared by the TUI and CLI output.
type UIConfig struct {
	Renderer string `yaml:"renderer" env:"KAMUS_RENDERER" env-default:"terminal"`
	Width    int    `yaml:"width"    env:"KAMUS_WIDTH"    env-default:"80"`
}

// LogConfig holds logging settings. An empty File keeps the TUI silent.
type LogConfig struct {
	Level  string `yaml:"level"  env:"KAMUS_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"KAMUS_LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"KAMUS_LOG_FILE"`
}
