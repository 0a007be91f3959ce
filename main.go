package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/lotto645/internal/capture"
	"github.com/ytget/lotto645/internal/config"
	"github.com/ytget/lotto645/internal/lotto"
	"github.com/ytget/lotto645/internal/platform"
	"github.com/ytget/lotto645/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.lotto645"
	AppName = "Lotto 6/45"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTicketTheme())
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	} else {
		logger.Debug("app icon not found", zap.Error(err))
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	saveDir := settings.GetSaveDirectory()
	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		// Permission is checked again on every save
		logger.Warn("failed to ensure save dir", zap.String("dir", saveDir), zap.Error(err))
	}

	saver := capture.NewService(saveDir, settings.GetJPEGQuality(), logger)
	picker := lotto.NewPicker(lotto.DefaultSource())

	if _, err := ui.NewRootUI(myWindow, myApp, AppID, settings, picker, saver, logger); err != nil {
		logger.Fatal("failed to build UI", zap.Error(err))
	}

	myWindow.ShowAndRun()
}
