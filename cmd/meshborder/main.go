// cmd/meshborder/main.go
package main

import (
	"meshborder/internal/app"
	"meshborder/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
