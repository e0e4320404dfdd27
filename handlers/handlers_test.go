package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qrforge/qrforge-backend/auth"
	"github.com/qrforge/qrforge-backend/initializers"
	"github.com/qrforge/qrforge-backend/models"
	"github.com/qrforge/qrforge-backend/qrstyle"
	"github.com/qrforge/qrforge-backend/routes"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.QRCode{}))
	initializers.DB = db

	r := gin.New()
	routes.RegisterAuthRoutes(r)
	routes.RegisterQRCodeRoutes(r)
	return r
}

func createTestUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Email: email, PasswordHash: string(hash)}
	require.NoError(t, initializers.DB.Create(&user).Error)

	accessToken, _, err := auth.GenerateTokens(user.ID.String())
	require.NoError(t, err)
	return user, accessToken
}

func seedQRCode(t *testing.T, user models.User, title string) models.QRCode {
	t.Helper()

	opts, err := qrstyle.Derive(qrstyle.DefaultFields(), "")
	require.NoError(t, err)
	blob, err := json.Marshal(opts)
	require.NoError(t, err)

	qr := models.QRCode{
		UserID:   user.ID,
		Title:    title,
		Value:    opts.Content,
		Options:  string(blob),
		ScanSlug: shortuuid.New(),
	}
	require.NoError(t, initializers.DB.Create(&qr).Error)
	return qr
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doMultipartLogo(t *testing.T, r *gin.Engine, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="logo"; filename="logo"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/qrcodes/logo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func countQRCodes(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, initializers.DB.Model(&models.QRCode{}).Count(&count).Error)
	return count
}
