package tray

import (
	"github.com/shuaxinkong/EarTrumpet/app/tray/commontray"
	"github.com/shuaxinkong/EarTrumpet/app/tray/wintray"
)

func InitPlatformTray(icon []byte) (commontray.Tray, error) {
	return wintray.InitTray(icon)
}
