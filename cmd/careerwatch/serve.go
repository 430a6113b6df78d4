package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"go-career-watcher/internal/sorter"
	"go-career-watcher/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the persisted collection over a read-only HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	st := store.New(cfg.JobsPath)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/jobs", func(c *gin.Context) {
		collection, err := st.Load()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, collection)
	})

	r.GET("/jobs/sorted", func(c *gin.Context) {
		collection, err := st.Load()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sorter.ByRecommend(collection))
	})

	log.Printf("🌐 Server listening on port %s", port)
	return r.Run(":" + port)
}
