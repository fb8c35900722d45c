package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the settings shared by every frontend.
type Config struct {
	AssetDir   string
	SavePath   string
	Scale      float64 // desktop window scale relative to the logical screen
	Fullscreen bool
	Muted      bool
	Debug      bool
}

func Default() *Config {
	return &Config{
		AssetDir: "assets",
		SavePath: defaultSavePath(),
		Scale:    0.5,
	}
}

// RegisterFlags binds cfg's fields to fs. Values already in cfg are the
// flag defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "directory holding Map3k.jpg, Stag1-5.png and sound.mp3")
	fs.StringVar(&cfg.SavePath, "save", cfg.SavePath, "file the last game result is stored in")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start in fullscreen")
	fs.BoolVar(&cfg.Muted, "mute", cfg.Muted, "disable sound")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write a debug log to logs/")
}

// Load builds a Config from defaults, STAGSEEK_* environment variables and
// then command-line args, later sources winning.
func Load(name string, args []string) (*Config, error) {
	cfg := Default()
	cfg.ApplyEnv(os.Getenv)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Scale <= 0 {
		cfg.Scale = Default().Scale
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. Unparsable values
// are ignored.
func (cfg *Config) ApplyEnv(getenv func(string) string) {
	if dir := getenv("STAGSEEK_ASSETS"); dir != "" {
		cfg.AssetDir = dir
	}
	if path := getenv("STAGSEEK_SAVE"); path != "" {
		cfg.SavePath = path
	}
	if scale := getenv("STAGSEEK_SCALE"); scale != "" {
		if val, err := strconv.ParseFloat(scale, 64); err == nil && val > 0 {
			cfg.Scale = val
		}
	}
	if mute := getenv("STAGSEEK_MUTE"); mute != "" {
		if val, err := strconv.ParseBool(mute); err == nil {
			cfg.Muted = val
		}
	}
	if debug := getenv("STAGSEEK_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}
}

func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "stagseek_last_result.json"
	}
	return filepath.Join(dir, "stagseek", "last_result.json")
}
