package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wealthview/internal/logger"
	"wealthview/internal/metrics"
	"wealthview/internal/models"
	"wealthview/internal/server"
	"wealthview/internal/services"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Metrics *metrics.Metrics
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "error")
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.Asset{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack over db.
func setupApp(t *testing.T, db *gorm.DB, seedLocation string) *testApp {
	t.Helper()

	m := metrics.New()
	assetService := services.NewAssetService(db)
	seedService := services.NewSeedService(db, services.SeedConfig{
		DefaultLocation: seedLocation,
		BatchSize:       3,
	}, m)

	router := server.NewRouter(server.Options{
		APIPrefix:   "/api/v1",
		CORSOrigins: []string{"*"},
		Metrics:     m,
	}, assetService, seedService)

	return &testApp{DB: db, Router: router, Metrics: m}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// seedBody builds a POST /seed body with n records in the external format.
// Even indexes are Cash and the rest Investment; the first eight are active.
func seedBody(n int) string {
	records := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		assetType := "Investment"
		if i%2 == 0 {
			assetType = "Cash"
		}
		records = append(records, map[string]any{
			"assetId":              fmt.Sprintf("asset_%d", i),
			"nickname":             fmt.Sprintf("Test Asset %d", i),
			"wealthAssetType":      assetType,
			"primaryAssetCategory": assetType,
			"balanceCurrent":       1000.0 * float64(i+1),
			"isActive":             i < 8,
			"balanceAsOf":          "2025-03-28T15:55:22Z",
		})
	}
	b, _ := json.Marshal(map[string]any{"records": records})
	return string(b)
}
