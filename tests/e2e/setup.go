//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"salon-dashboard/cmd/bootstrap"
	"salon-dashboard/cmd/bootstrap/components"
	"salon-dashboard/internal/pkg/config"
	"salon-dashboard/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const fixtureFile = "fixtures/salon.json"

// ------------------------------------------------------------
// 各テスト用にアプリケーションを構築
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixturePath, err := resolveFixture(fixtureFile)
	require.NoError(t, err, "フィクスチャの解決に失敗")

	router, cfg, app := buildE2EApp(t, createTestConfig(fixturePath))
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return router, cfg
}

// resolveFixture finds the repo fixture from the package directory go test runs in.
func resolveFixture(file string) (string, error) {
	candidates := []string{
		file,
		filepath.Join("..", file),
		filepath.Join("..", "..", file),
		filepath.Join("..", "..", "..", file),
	}
	for _, cand := range candidates {
		if _, err := os.Stat(cand); err == nil {
			return cand, nil
		}
	}
	return "", fmt.Errorf("fixture %s not found", file)
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, testCfg config.Config) (*gin.Engine, config.Config, *fx.App) {
	t.Helper()

	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return testCfg },
			bootstrap.NewCalendarLocation,
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.FixtureModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗しました")

	return router, cfg, app
}

func createTestConfig(fixturePath string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Fixture.Path = fixturePath
	return testConfig
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	JWT    *authtest.JWTHelper
}

// SetupTest rebuilds the app so every test starts from the seeded schedule.
func (s *SharedSuite) SetupTest() {
	router, cfg := setupE2EEnvironment(s.T())
	s.Router = router
	s.Config = cfg
	s.JWT = authtest.NewJWTHelper(cfg.JWT)
	require.NotEmpty(s.T(), s.Config, "Configの取得に失敗")
}
