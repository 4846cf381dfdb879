package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sepsentry/batch"
	"sepsentry/dataset"
	"sepsentry/ensemble"
	"sepsentry/history"
)

// Reported by the metrics endpoint for the dashboard's comparison table.
// These describe the offline-evaluated model families, not the heuristic
// scorer serving requests.
var modelMetrics = gin.H{
	"LightGBM": gin.H{
		"accuracy":  0.8234,
		"precision": 0.8125,
		"recall":    0.8556,
		"f1":        0.8337,
	},
	"Random Forest": gin.H{
		"accuracy":  0.8987,
		"precision": 0.9103,
		"recall":    0.8875,
		"f1":        0.8987,
	},
	"XGBoost": gin.H{
		"accuracy":  0.9383,
		"precision": 0.9268,
		"recall":    0.95,
		"f1":        0.9383,
	},
}

func setupRouter(store history.Store, cfg *Config) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	})

	api := router.Group("/api")
	api.GET("/metrics", handleMetrics)
	api.GET("/history", handleHistory(store))
	api.POST("/predict", limitBodySize(1<<20), handlePredict)
	api.POST("/batch-predict", handleBatchPredict(cfg, store))
	api.POST("/validate", handleValidate(cfg))

	return router
}

func handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, modelMetrics)
}

func handlePredict(c *gin.Context) {
	var input ensemble.BedsideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, ensemble.BedsideScore(input))
}

func handleBatchPredict(cfg *Config, store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, filename, status, err := readCSVUpload(c, cfg.MaxUploadBytes)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		result, err := batch.Run(content, cfg.ChunkSize)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, batch.ErrNoData) || errors.Is(err, batch.ErrNoValidRows) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if store != nil {
			rec := history.BatchRecord{
				ID:             uuid.New(),
				Filename:       filename,
				TotalRows:      result.TotalRows,
				Scored:         result.Count,
				SepsisDetected: result.Summary.SepsisDetected,
				Borderline:     result.Summary.Borderline,
				NoSepsis:       result.Summary.NoSepsis,
				CreatedAt:      time.Now().UTC(),
			}
			if err := store.SaveBatch(c.Request.Context(), rec); err != nil {
				// History is best-effort; the scoring result still stands.
				log.Printf("save batch history: %v", err)
			}
		}

		c.JSON(http.StatusOK, result)
	}
}

func handleValidate(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, _, status, err := readCSVUpload(c, cfg.MaxUploadBytes)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, dataset.Validate(content))
	}
}

func handleHistory(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"history": []history.BatchRecord{}})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		records, err := store.Recent(ctx, 50)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
			return
		}
		if records == nil {
			records = []history.BatchRecord{}
		}

		c.JSON(http.StatusOK, gin.H{"history": records})
	}
}

// readCSVUpload pulls the "file" part out of a multipart upload and applies
// the input-shape checks: present, .csv-named, within the size ceiling.
func readCSVUpload(c *gin.Context, maxBytes int64) (content, filename string, status int, err error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", "", http.StatusBadRequest, errors.New("no file provided")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return "", "", http.StatusBadRequest, errors.New("file must be a CSV")
	}

	if fileHeader.Size > maxBytes {
		return "", "", http.StatusRequestEntityTooLarge,
			fmt.Errorf("file is too large. Maximum size is %dGB", maxBytes>>30)
	}

	content, err = readAll(fileHeader)
	if err != nil {
		return "", "", http.StatusInternalServerError, errors.New("failed to read upload")
	}

	return content, fileHeader.Filename, http.StatusOK, nil
}

func readAll(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
