package main

import (
	"os"

	"github.com/NotRyken/AdvancedChatLog/internal/app"
)

func main() {
	os.Exit(app.Run())
}
