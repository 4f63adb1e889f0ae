//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mary-storefront/internal/testutil"
)

// TestMain starts a shared MongoDB container for the HTTP integration tests.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(testutil.RunWithMongoDB(context.Background(), m))
}
