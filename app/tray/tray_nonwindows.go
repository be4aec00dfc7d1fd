//go:build !windows

package tray

import (
	"errors"

	"github.com/shuaxinkong/EarTrumpet/app/tray/commontray"
)

// The notification area protocol this app speaks is Windows specific.
func InitPlatformTray(icon []byte) (commontray.Tray, error) {
	return nil, errors.New("not implemented")
}
