package main

// Compile with the following to get rid of the cmd pop up on windows
// go build -ldflags="-H windowsgui" .

import (
	"github.com/shuaxinkong/EarTrumpet/app/lifecycle"
)

var RunFunc = lifecycle.Run

func main() {
	RunFunc()
}
