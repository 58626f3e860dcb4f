package main

import (
	"fxconvert/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Currency Conversion API
// @version 1.0
// @description Converts amounts between supported currencies using cached exchange rates, with CSV/PDF download.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application terminated")
	}
}
