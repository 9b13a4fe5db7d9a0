package main

import (
	"log"
	"os"

	"github.com/avc-dev/random-string/internal/app"
	"github.com/avc-dev/random-string/internal/model"
)

// Заполняются при сборке через -ldflags "-X main.buildVersion=..."
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	build := model.BuildInfo{
		Version:    buildVersion,
		BuildTime:  buildDate,
		CommitHash: buildCommit,
	}

	if err := app.Run(os.Args[1:], build); err != nil {
		log.Fatal(err)
	}
}
