package cmd

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/hcho112/the-wedding/internal/bridal"
	"github.com/hcho112/the-wedding/internal/manifest"
)

var (
	serveAddr     string
	serveManifest string
	serveBridal   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the published manifest over HTTP",
	Long: `Serves the gallery data as JSON. A missing or corrupt manifest is a
valid empty state, never an error page: pages render nothing instead of
crashing.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveManifest, "manifest", manifest.DefaultFileName, "manifest path")
	serveCmd.Flags().StringVar(&serveBridal, "bridal", bridal.DefaultFileName, "bridal-party contour data path")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	store := manifest.Load(serveManifest)
	if store.Len() == 0 {
		log.Warn("manifest empty or unreadable, serving no data", "path", serveManifest)
	} else {
		log.Info("manifest loaded", "path", serveManifest, "photos", store.Len())
	}

	party := bridal.Load(serveBridal)
	if party == nil {
		log.Warn("bridal-party data missing, overlay disabled", "path", serveBridal)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"photos": store.Len()})
	})

	e.GET("/api/photos", func(c echo.Context) error {
		if category := c.QueryParam("category"); category != "" {
			return c.JSON(http.StatusOK, orEmpty(store.ByCategory(category)))
		}
		return c.JSON(http.StatusOK, orEmpty(store.All()))
	})

	e.GET("/api/photos/:id", func(c echo.Context) error {
		photo := store.ByID(c.Param("id"))
		if photo == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "photo not found"})
		}
		return c.JSON(http.StatusOK, photo)
	})

	e.GET("/api/bridal-party", func(c echo.Context) error {
		if party == nil {
			return c.JSON(http.StatusOK, bridal.Party{Members: []bridal.Member{}})
		}
		return c.JSON(http.StatusOK, party)
	})

	log.Info("listening", "addr", serveAddr)
	return e.Start(serveAddr)
}

// orEmpty keeps the JSON shape an array even when there is no data.
func orEmpty(photos []manifest.Photo) []manifest.Photo {
	if photos == nil {
		return []manifest.Photo{}
	}
	return photos
}
