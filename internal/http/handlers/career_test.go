package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/careerhub-backend/internal/data/db"
	"github.com/yungbote/careerhub-backend/internal/data/repos"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

func mockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), db.GormConfig(gormLogger.Default.LogMode(gormLogger.Silent)))
	require.NoError(t, err)
	return gdb, mock
}

func TestCareerListStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, mock := mockGorm(t)
	mock.ExpectQuery(`SELECT .* FROM "careers"`).WillReturnError(errors.New("connection reset"))

	log := logger.NewNop()
	h := NewCareerHandler(log, services.NewCareerService(gdb, log, repos.NewCareerRepo(gdb, log)))
	r := gin.New()
	r.GET("/api/careers", h.List)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/careers", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch careers"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareerListOrdersByCreation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, mock := mockGorm(t)
	rows := sqlmock.NewRows([]string{"id", "title", "required_skills"}).
		AddRow("6a4f7e0e-6f0e-4a43-8d4c-1f9f3e2c1a01", "Data Analyst", `["SQL"]`)
	mock.ExpectQuery(`SELECT .* FROM "careers" ORDER BY created_at ASC`).WillReturnRows(rows)

	log := logger.NewNop()
	h := NewCareerHandler(log, services.NewCareerService(gdb, log, repos.NewCareerRepo(gdb, log)))
	r := gin.New()
	r.GET("/api/careers", h.List)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/careers", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"title":"Data Analyst"`)
	assert.Contains(t, rec.Body.String(), `"requiredSkills":["SQL"]`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIDParamRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", idParam(c, "id").String())
}
