package lifecycle

import (
	"os"
	"path/filepath"
	"runtime"
)

var (
	AppName    = "EarTrumpet"
	AppDataDir = "/tmp/eartrumpet"
	AppLogFile = "/tmp/eartrumpet/app.log"
)

func init() {
	if runtime.GOOS == "windows" {
		AppName += ".exe"
		localAppData := os.Getenv("LOCALAPPDATA")
		AppDataDir = filepath.Join(localAppData, "EarTrumpet")
		AppLogFile = filepath.Join(AppDataDir, "app.log")
	}
}
