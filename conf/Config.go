package conf

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Listen    string `toml:"listen"`
	DBUri     string `toml:"dburi"`
	PuzzleDir string `toml:"puzzle_dir"`
	Origin    string `toml:"origin"`
}

// LoadConfig reads the toml config file, then applies overrides from a .env
// file (if present) and the environment.
func LoadConfig(filename string) (config Config, err error) {
	_, err = toml.DecodeFile(filename, &config)
	if err != nil {
		return config, err
	}

	// overrides beat the config file; .env is optional
	godotenv.Load()
	if v := os.Getenv("NURIKABE_DBURI"); v != "" {
		config.DBUri = v
	}
	if v := os.Getenv("NURIKABE_LISTEN"); v != "" {
		config.Listen = v
	}

	if config.Listen == "" {
		config.Listen = "localhost:4000"
	}
	return config, nil
}
