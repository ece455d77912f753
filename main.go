package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fruitmall/fruitmall-client/internal/api"
	"github.com/fruitmall/fruitmall-client/internal/config"
	"github.com/fruitmall/fruitmall-client/internal/localstore"
	"github.com/fruitmall/fruitmall-client/internal/logger"
	"github.com/fruitmall/fruitmall-client/internal/router"
	"github.com/fruitmall/fruitmall-client/internal/store"
	"github.com/fruitmall/fruitmall-client/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fruitmall.client"
	AppName = "水果商城"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	log := logger.New("main")
	log.Info().Str("version", version).Msg("fruitmall client starting")

	cfg, err := config.Load("app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Persisted mirror and HTTP client
	local := localstore.NewStore(myApp)
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, local, logger.New("api"))

	// State containers, owned here and passed by reference
	containers := ui.Containers{
		Users:     store.NewUserStore(client, local, logger.New("user")),
		Cart:      store.NewCartStore(client, local, logger.New("cart")),
		Orders:    store.NewOrderStore(client, logger.New("order")),
		Products:  store.NewProductStore(client, logger.New("product")),
		StoreMgmt: store.NewStoreManagementStore(),
	}

	nav := router.New(local, logger.New("router"))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, nav, containers, logger.New("ui"))

	if err := nav.Navigate("/"); err != nil {
		log.Warn().Err(err).Msg("initial navigation failed")
	}

	// Show and run
	myWindow.ShowAndRun()
}
