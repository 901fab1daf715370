package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadDotEnvOnce sync.Once

// LoadDotEnv は .env が存在すれば 1 度だけ読み込む。
// ローカル起動時の LLM_PROVIDER や各種 API キーはここから入る。
func LoadDotEnv() {
	loadDotEnvOnce.Do(func() {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		if err := godotenv.Load(); err != nil {
			log.Printf("dotenv: .env の読み込みに失敗しました: %v", err)
		}
	})
}
