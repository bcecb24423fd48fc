package test

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/category"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/ent/user"
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/bootstrap"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/websocket"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var (
	testClient   *ent.Client
	testConfig   *config.AppConfig
	testRouter   *chi.Mux
	testHub      *websocket.Hub
	redisAdapter *adapter.RedisAdapter
	s3Client     *s3.Client
)

func TestMain(m *testing.M) {
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	if err := godotenv.Load(filepath.Join(basepath, "../.env.test")); err != nil {
		log.Printf("Warning: Error loading .env.test file: %v", err)
	}

	if os.Getenv("APP_PORT") == "" {
		os.Setenv("APP_PORT", "8080")
	}
	if os.Getenv("APP_ENV") == "" {
		os.Setenv("APP_ENV", "test")
	}
	if os.Getenv("APP_CORS_ALLOWED_ORIGINS") == "" {
		os.Setenv("APP_CORS_ALLOWED_ORIGINS", "*")
	}

	os.Setenv("DB_MIGRATE", "true")

	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "secret")
	}
	if os.Getenv("JWT_EXP") == "" {
		os.Setenv("JWT_EXP", "86400")
	}

	os.Setenv("S3_BUCKET", "test-report-bucket")
	os.Setenv("S3_REGION", "us-east-1")
	os.Setenv("S3_ACCESS_KEY", "test")
	os.Setenv("S3_SECRET_KEY", "test")
	os.Setenv("S3_ENDPOINT", "http://localhost:9090")
	os.Setenv("S3_PUBLIC_DOMAIN", "http://localhost:9090/test-report-bucket")

	os.Setenv("SMTP_ASYNC", "false")

	// keep rate limiting out of the way of scenario tests
	os.Setenv("SUBMIT_RATE_LIMIT", "1000")
	os.Setenv("SUBMIT_RATE_WINDOW_SECONDS", "60")

	testConfig = config.LoadAppConfig()

	testClient = config.InitEnt(testConfig)

	var err error
	redisAdapter, err = adapter.NewRedisAdapter(testConfig)
	if err != nil {
		log.Fatalf("failed to connect Redis for tests: %v", err)
	}

	s3Client = config.NewS3Client(testConfig)
	initS3Bucket(s3Client, testConfig.S3Bucket)

	testHub = websocket.NewHub()
	go testHub.Run()

	validator := config.NewValidator()
	testRouter = bootstrap.Init(testConfig, testClient, validator, s3Client, redisAdapter, testHub)

	code := m.Run()

	testClient.Close()
	os.Exit(code)
}

func initS3Bucket(client *s3.Client, bucket string) {
	_, err := client.CreateBucket(context.Background(), &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		log.Printf("Warning: Failed to create bucket %s: %v", bucket, err)
	}
}

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	testRouter.ServeHTTP(rr, req)
	return rr
}

func printBody(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Logf("Response Body: %s", rr.Body.String())
}

func clearDatabase(ctx context.Context) {
	testClient.Media.Delete().ExecX(ctx)
	testClient.Report.Delete().ExecX(ctx)
	testClient.Subcategory.Delete().ExecX(ctx)
	testClient.Category.Delete().ExecX(ctx)
	testClient.Officer.Delete().ExecX(ctx)
	testClient.User.Delete().ExecX(ctx)

	if redisAdapter != nil {
		redisAdapter.Client().FlushDB(ctx)
	}
}

func createTestUser(t *testing.T, prefix string) *ent.User {
	t.Helper()
	email := fmt.Sprintf("%s%d@test.com", prefix, time.Now().UnixNano())
	hashedPassword, _ := helper.HashPassword("Password123!")

	u, err := testClient.User.Create().
		SetEmail(email).
		SetName(prefix + " User").
		SetPasswordHash(hashedPassword).
		SetRole(user.RoleCitizen).
		Save(context.Background())
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", prefix, err)
	}
	return u
}

func createTestAdmin(t *testing.T, prefix string) *ent.User {
	t.Helper()
	email := fmt.Sprintf("%s%d@test.com", prefix, time.Now().UnixNano())
	hashedPassword, _ := helper.HashPassword("Password123!")

	u, err := testClient.User.Create().
		SetEmail(email).
		SetName(prefix + " Admin").
		SetPasswordHash(hashedPassword).
		SetRole(user.RoleAdmin).
		Save(context.Background())
	if err != nil {
		t.Fatalf("Failed to create admin %s: %v", prefix, err)
	}
	return u
}

func tokenFor(t *testing.T, u *ent.User) string {
	t.Helper()
	token, err := helper.GenerateJWT(testConfig.JWTSecret, testConfig.JWTExp, u.ID, string(u.Role))
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

type catalogFixture struct {
	EmergencyCategory    *ent.Category
	NonEmergencyCategory *ent.Category
	EmergencySub         *ent.Subcategory
	NonEmergencySub      *ent.Subcategory
}

func seedCatalog(t *testing.T) catalogFixture {
	t.Helper()
	ctx := context.Background()

	fire := testClient.Category.Create().
		SetName("Fire & Rescue").
		SetType(category.TypeEmergency).
		SaveX(ctx)
	roads := testClient.Category.Create().
		SetName("Roads & Infrastructure").
		SetType(category.TypeNonEmergency).
		SaveX(ctx)

	building := testClient.Subcategory.Create().
		SetName("Building Fire").
		SetCategoryID(fire.ID).
		SaveX(ctx)
	pothole := testClient.Subcategory.Create().
		SetName("Pothole").
		SetCategoryID(roads.ID).
		SaveX(ctx)

	return catalogFixture{
		EmergencyCategory:    fire,
		NonEmergencyCategory: roads,
		EmergencySub:         building,
		NonEmergencySub:      pothole,
	}
}

func createTestOfficer(t *testing.T, name, department string) *ent.Officer {
	t.Helper()
	o, err := testClient.Officer.Create().
		SetName(name).
		SetDepartment(department).
		Save(context.Background())
	if err != nil {
		t.Fatalf("Failed to create officer %s: %v", name, err)
	}
	return o
}

func createTestReport(t *testing.T, reporter *ent.User, categoryID uuid.UUID, reportType report.Type, status report.Status, title string) *ent.Report {
	t.Helper()
	r, err := testClient.Report.Create().
		SetTitle(title).
		SetDescription("Seeded report: " + title).
		SetType(reportType).
		SetStatus(status).
		SetCategoryID(categoryID).
		SetReporterID(reporter.ID).
		Save(context.Background())
	if err != nil {
		t.Fatalf("Failed to create report %s: %v", title, err)
	}
	return r
}
