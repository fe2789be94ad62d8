package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the run parameters. Every value has a fixed default so the
// pipeline runs with no .env file and no environment set. Relative file
// names resolve against DataDir, which defaults to the program's directory.
type Config struct {
	DataDir      string
	InputFile    string
	ResultsFile  string
	TopSongsFile string

	Category          string
	FollowerThreshold int64
	TopN              int
}

// Load reads the .env file (if any) and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, using defaults and system env vars")
	}

	return &Config{
		DataDir:      getEnv("DATA_DIR", programDir()),
		InputFile:    getEnv("INPUT_FILE", "songs.csv"),
		ResultsFile:  getEnv("RESULTS_FILE", "results.txt"),
		TopSongsFile: getEnv("TOP_SONGS_FILE", "top_songs.csv"),

		Category:          getEnv("CATEGORY", "Pop"),
		FollowerThreshold: getEnvInt64("FOLLOWER_THRESHOLD", 1_000_000),
		TopN:              int(getEnvInt64("TOP_N", 10)),
	}
}

// InputPath returns the songs CSV location.
func (c *Config) InputPath() string { return c.resolve(c.InputFile) }

// ResultsPath returns the text report location.
func (c *Config) ResultsPath() string { return c.resolve(c.ResultsFile) }

// TopSongsPath returns the top-N CSV location.
func (c *Config) TopSongsPath() string { return c.resolve(c.TopSongsFile) }

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// programDir returns the directory holding the running binary. Binaries
// built under the temp dir (go run, go test) fall back to the working
// directory.
func programDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)
	if strings.HasPrefix(dir, filepath.Clean(os.TempDir())) {
		return "."
	}
	return dir
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err == nil {
			return n
		}
	}
	return fallback
}
