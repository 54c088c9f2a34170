package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	"github.com/yungbote/careerhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	httpH "github.com/yungbote/careerhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerhub-backend/internal/http/middleware"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/platform/session"
	"github.com/yungbote/careerhub-backend/internal/services"
)

func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	return NewRouter(testRouterConfig(t, db))
}

func testRouterConfig(t *testing.T, db *gorm.DB) RouterConfig {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	userRepo := repos.NewUserRepo(db, log)
	profileRepo := repos.NewProfileRepo(db, log)
	careerRepo := repos.NewCareerRepo(db, log)
	oppRepo := repos.NewOpportunityRepo(db, log)
	savedRepo := repos.NewSavedOpportunityRepo(db, log)
	appRepo := repos.NewApplicationRepo(db, log)
	goalRepo := repos.NewGoalRepo(db, log)
	progressRepo := repos.NewProgressRecordRepo(db, log)
	moduleRepo := repos.NewAcademicModuleRepo(db, log)
	programRepo := repos.NewTrainingProgramRepo(db, log)
	resourceRepo := repos.NewResourceRepo(db, log)

	authSvc := services.NewAuthService(db, log, userRepo, bcrypt.MinCost)
	store := session.NewStore(session.Config{Name: "sid", Secret: "router-test-secret-0123456789", MaxAge: 3600}, nil)
	sessions := session.NewManager(log, store, "sid")

	return RouterConfig{
		Log:            log,
		AuthMiddleware: httpMW.NewAuthMiddleware(log, sessions, authSvc),
		AuthLimiter:    httpMW.NewRateLimiter(log, nil, 100, 100),

		AuthHandler:        httpH.NewAuthHandler(log, authSvc, sessions, nil),
		CareerHandler:      httpH.NewCareerHandler(log, services.NewCareerService(db, log, careerRepo)),
		OpportunityHandler: httpH.NewOpportunityHandler(log, services.NewOpportunityService(db, log, oppRepo, savedRepo, appRepo), services.NewBookmarkService(db, log, oppRepo, savedRepo)),
		ApplicationHandler: httpH.NewApplicationHandler(log, services.NewApplicationService(db, log, oppRepo, appRepo)),
		ResourceHandler:    httpH.NewResourceHandler(log, services.NewResourceService(db, log, resourceRepo)),
		TrainingProgramHandler: httpH.NewTrainingProgramHandler(log, services.NewTrainingProgramService(db, log, programRepo)),
		AcademicModuleHandler:  httpH.NewAcademicModuleHandler(log, services.NewAcademicModuleService(db, log, moduleRepo)),
		GoalHandler:            httpH.NewGoalHandler(log, services.NewGoalService(db, log, goalRepo)),
		DashboardHandler: httpH.NewDashboardHandler(log, services.NewDashboardService(db, log, services.DashboardDeps{
			UserRepo: userRepo, CareerRepo: careerRepo, OppRepo: oppRepo, ResourceRepo: resourceRepo,
			GoalRepo: goalRepo, SavedRepo: savedRepo, AppRepo: appRepo, ProgressRepo: progressRepo, ModuleRepo: moduleRepo,
		})),
		ProfileHandler: httpH.NewProfileHandler(log,
			services.NewProfileService(db, log, userRepo, profileRepo, progressRepo),
			services.NewProgressService(db, log, progressRepo)),
		AdminHandler: httpH.NewAdminHandler(log, services.NewAdminService(db, log, services.AdminDeps{
			UserRepo: userRepo, ProfileRepo: profileRepo, GoalRepo: goalRepo, ProgressRepo: progressRepo,
			ModuleRepo: moduleRepo, SavedRepo: savedRepo, AppRepo: appRepo,
		})),
		HealthHandler: httpH.NewHealthHandler(log, nil),
	}
}

// client keeps the session cookie between requests.
type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, r *gin.Engine) *client {
	return &client{t: t, r: r, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(method, path string, body any) *httptest.ResponseRecorder {
	cl.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(cl.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	cl.r.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(cl.cookies, c.Name)
			continue
		}
		cl.cookies[c.Name] = c
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) {
	t.Helper()
	hash, err := services.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, db.Create(&types.User{
		Email:    email,
		Password: hash,
		Name:     "Admin",
		Role:     types.RoleAdmin,
		Course:   types.DefaultCourse,
	}).Error)
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t, testutil.SQLite(t))
	cl := newClient(t, r)

	rec := cl.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", errorOf(t, rec))

	rec = cl.do(http.MethodPost, "/api/auth/register", map[string]any{
		"email": "Student@Example.com", "password": "pw123456", "name": "Stu", "yearLevel": "3",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reg := decode[map[string]map[string]any](t, rec)
	assert.Equal(t, "student@example.com", reg["user"]["email"])
	assert.Equal(t, "student", reg["user"]["role"])
	assert.NotContains(t, reg["user"], "password")

	rec = cl.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = cl.do(http.MethodPost, "/api/auth/register", map[string]any{
		"email": "student@example.com", "password": "x", "name": "Dup",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", errorOf(t, rec))

	rec = cl.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())

	rec = cl.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = cl.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "student@example.com", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", errorOf(t, rec))

	rec = cl.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "student@example.com", "password": "pw123456"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutWithUnreadableCookie(t *testing.T) {
	r := newTestRouter(t, testutil.SQLite(t))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "signed-with-old-secret"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())
	var expired *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" {
			expired = c
		}
	}
	require.NotNil(t, expired)
	assert.True(t, expired.MaxAge < 0)

	// the same stale cookie is simply anonymous elsewhere
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "signed-with-old-secret"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", errorOf(t, rec))
}

func TestAccessControl(t *testing.T) {
	db := testutil.SQLite(t)
	r := newTestRouter(t, db)
	anon := newClient(t, r)

	rec := anon.do(http.MethodGet, "/api/goals", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", errorOf(t, rec))

	rec = anon.do(http.MethodPost, "/api/careers", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	student := newClient(t, r)
	rec = student.do(http.MethodPost, "/api/auth/register", map[string]any{"email": "s@example.com", "password": "pw", "name": "S"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = student.do(http.MethodPost, "/api/careers", map[string]any{"title": "x"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin access required", errorOf(t, rec))

	rec = student.do(http.MethodGet, "/api/admin/students", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	seedAdmin(t, db, "admin@example.com", "adminpw")
	admin := newClient(t, r)
	rec = admin.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "admin@example.com", "password": "adminpw"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = admin.do(http.MethodPost, "/api/careers", map[string]any{"title": "Cloud Engineer", "requiredSkills": []string{"Go"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = admin.do(http.MethodGet, "/api/admin/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = admin.do(http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalStudents":1,"totalCareers":1,"totalOpportunities":0,"totalResources":0}`, rec.Body.String())
}

func TestOpportunityBookmarkAndApplyFlow(t *testing.T) {
	db := testutil.SQLite(t)
	r := newTestRouter(t, db)
	seedAdmin(t, db, "admin@example.com", "adminpw")

	admin := newClient(t, r)
	require.Equal(t, http.StatusOK, admin.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "admin@example.com", "password": "adminpw"}).Code)
	rec := admin.do(http.MethodPost, "/api/opportunities", map[string]any{
		"title": "Backend Intern", "company": "Acme", "type": "internship", "deadline": "2026-12-31",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	opp := decode[map[string]any](t, rec)
	oppID := opp["id"].(string)
	assert.Equal(t, true, opp["isActive"])

	rec = admin.do(http.MethodPost, "/api/opportunities", map[string]any{"title": "Bad", "company": "Acme", "type": "gig"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	st := newClient(t, r)
	require.Equal(t, http.StatusOK, st.do(http.MethodPost, "/api/auth/register", map[string]any{"email": "s@example.com", "password": "pw", "name": "S"}).Code)

	rec = st.do(http.MethodGet, "/api/opportunities/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	require.Equal(t, http.StatusOK, st.do(http.MethodPost, "/api/opportunities/"+oppID+"/save", nil).Code)
	rec = st.do(http.MethodPost, "/api/opportunities/"+oppID+"/save", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Already saved", errorOf(t, rec))

	rec = st.do(http.MethodGet, "/api/opportunities/saved", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decode[[]map[string]any](t, rec)
	require.Len(t, saved, 1)
	assert.Equal(t, "Backend Intern", saved[0]["title"])

	rec = st.do(http.MethodDelete, "/api/opportunities/"+oppID+"/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Removed from saved"}`, rec.Body.String())

	rec = st.do(http.MethodPost, "/api/opportunities/"+oppID+"/apply", map[string]any{"resumeUrl": "https://cdn/cv.pdf"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	app := decode[map[string]any](t, rec)
	assert.Equal(t, "pending", app["status"])

	rec = st.do(http.MethodPost, "/api/opportunities/"+oppID+"/apply", map[string]any{"resumeUrl": "https://cdn/cv.pdf"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You have already applied to this opportunity", errorOf(t, rec))

	rec = st.do(http.MethodGet, "/api/opportunity-applications/mine", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[[]map[string]any](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, "Backend Intern", mine[0]["opportunity"].(map[string]any)["title"])

	rec = st.do(http.MethodDelete, "/api/opportunity-applications/"+app["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Application withdrawn"}`, rec.Body.String())
}

func TestResourceDownloadTracking(t *testing.T) {
	db := testutil.SQLite(t)
	r := newTestRouter(t, db)
	res := testutil.SeedResource(t, t.Context(), db, "Resume Guide", time.Now())
	path := "/api/resources/" + res.ID.String() + "/download"

	anon := newClient(t, r)
	assert.Equal(t, http.StatusUnauthorized, anon.do(http.MethodPost, path, nil).Code)

	st := newClient(t, r)
	require.Equal(t, http.StatusOK, st.do(http.MethodPost, "/api/auth/register", map[string]any{"email": "dl@example.com", "password": "pw", "name": "D"}).Code)

	rec := st.do(http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	require.Equal(t, http.StatusOK, st.do(http.MethodPost, path, nil).Code)

	rec = st.do(http.MethodGet, "/api/resources/"+res.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode[map[string]any](t, rec)["downloadCount"])

	rec = st.do(http.MethodPost, "/api/resources/"+uuid.NewString()+"/download", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", errorOf(t, rec))
}

func TestNotFoundAndDefaults(t *testing.T) {
	r := newTestRouter(t, testutil.SQLite(t))
	cl := newClient(t, r)

	rec := cl.do(http.MethodGet, "/api/careers/not-a-uuid", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Career not found", errorOf(t, rec))

	rec = cl.do(http.MethodGet, "/api/training-programs/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Training program not found", errorOf(t, rec))

	require.Equal(t, http.StatusOK, cl.do(http.MethodPost, "/api/auth/register", map[string]any{"email": "p@example.com", "password": "pw", "name": "P"}).Code)

	rec = cl.do(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = cl.do(http.MethodPost, "/api/profile", map[string]any{"skills": []string{"Go", "SQL"}, "gpa": "1.5"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = cl.do(http.MethodGet, "/api/progress/skills", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = cl.do(http.MethodPost, "/api/progress/skills/Go", map[string]any{"level": 150})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = cl.do(http.MethodPost, "/api/progress/skills/Go", map[string]any{"level": 70})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = cl.do(http.MethodGet, "/api/students/ranking", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rank":1,"totalStudents":1,"percentile":100,"gpa":1.5}`, rec.Body.String())

	rec = cl.do(http.MethodPut, "/api/goals/"+uuid.NewString(), map[string]any{"title": "x"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Goal not found", errorOf(t, rec))

	rec = cl.do(http.MethodPost, "/api/goals", []byte("not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func loginFrom(r *gin.Engine, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"x@example.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	cfg := testRouterConfig(t, testutil.SQLite(t))
	cfg.AuthLimiter = httpMW.NewRateLimiter(logger.NewNop(), nil, 0.001, 1)
	r := NewRouter(cfg)

	limited := 0
	for i := 0; i < 20; i++ {
		if loginFrom(r, "203.0.113.9:4000", fmt.Sprintf("198.51.100.%d", i)) == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 19, limited)
}

func TestAuthLimitHonoursTrustedProxy(t *testing.T) {
	cfg := testRouterConfig(t, testutil.SQLite(t))
	cfg.AuthLimiter = httpMW.NewRateLimiter(logger.NewNop(), nil, 0.001, 1)
	cfg.TrustedProxies = []string{"10.0.0.0/8"}
	r := NewRouter(cfg)

	assert.Equal(t, http.StatusUnauthorized, loginFrom(r, "10.1.2.3:4000", "198.51.100.1"))
	assert.Equal(t, http.StatusUnauthorized, loginFrom(r, "10.1.2.3:4000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(r, "10.1.2.3:4000", "198.51.100.2"))
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t, testutil.SQLite(t))
	rec := newClient(t, r).do(http.MethodGet, "/healthcheck", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
