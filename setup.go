package launcher

import (
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
)

type Conf struct {
	Title    string        `env:"SPEECH_LAUNCHER_TITLE" envDefault:"Speech Synthesis (Browser) Launcher"`
	Width    int           `env:"SPEECH_LAUNCHER_WIDTH" envDefault:"720"`
	Height   int           `env:"SPEECH_LAUNCHER_HEIGHT" envDefault:"300"`
	TempDir  string        `env:"SPEECH_LAUNCHER_TEMP_DIR"`
	Pattern  string        `env:"SPEECH_LAUNCHER_PATTERN" envDefault:"speech-*.html"`
	CacheTTL time.Duration `env:"SPEECH_LAUNCHER_CACHE_TTL" envDefault:"10m"`
}

var Config = Conf{}

func init() {
	if err := env.Parse(&Config); err != nil {
		log.Fatal(err)
	}
}

// Setup makes sure a configured temp dir exists. An empty TempDir
// means the OS temp dir, which needs no preparation.
func Setup() error {
	if Config.TempDir == "" {
		return nil
	}
	return os.MkdirAll(Config.TempDir, 0o755)
}
