package testutil

import (
	"testing"
	"time"
	"worker-management/infra"
	"worker-management/services"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const TestSecretKey = "test-secret-key"

// NewTestDB インメモリSQLiteを開き、マイグレーションとロールのシードを済ませる
// 呼び出しごとに独立したDBになる
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := infra.OpenSQLite(":memory:", &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.CloseDB(db) })

	require.NoError(t, infra.Migrate(db))
	return db
}

// BearerToken TestSecretKeyで署名したAuthorizationヘッダ値を返す
func BearerToken(t *testing.T, role string) string {
	t.Helper()

	token, err := services.CreateToken(TestSecretKey, 1, "tester@example.com", role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}
