// cmd/seqrush/main.go
package main

import (
	"seqrush/internal/app"
	"seqrush/internal/appshell"
)

func main() {
	appshell.Main(app.Run)
}
