package tray

import (
	"fmt"
	"runtime"

	"github.com/shuaxinkong/EarTrumpet/app/assets"
	"github.com/shuaxinkong/EarTrumpet/app/tray/commontray"
)

var getIcon = assets.GetIcon
var initTray = InitPlatformTray

func NewTray() (commontray.Tray, error) {
	extension := ".png"
	if runtime.GOOS == "windows" {
		extension = ".ico"
	}
	iconName := commontray.IconName + extension
	icon, err := getIcon(iconName)
	if err != nil {
		return nil, fmt.Errorf("failed to load icon %s: %w", iconName, err)
	}

	return initTray(icon)
}
