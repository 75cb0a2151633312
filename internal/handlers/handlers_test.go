package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"spicestore-backend/internal/config"
	"spicestore-backend/internal/handlers"
	"spicestore-backend/internal/routes"
	"spicestore-backend/internal/store"
)

type fakeMailer struct {
	to   []string
	otps []int
	fail bool
}

func (f *fakeMailer) SendOtp(to string, otp int) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.to = append(f.to, to)
	f.otps = append(f.otps, otp)
	return nil
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Memory, *fakeMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.NewMemory()
	fm := &fakeMailer{}
	cfg := &config.Config{
		JWTSecret:    "test-secret",
		TokenExpires: 24 * time.Hour,
	}
	r := gin.New()
	routes.Register(r, handlers.New(st, fm, cfg))
	return r, st, fm
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJSONAuth(t, r, method, path, "", body)
}

func doJSONAuth(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerUser(t *testing.T, r *gin.Engine, name, email, password string) {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/register", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, 201, w.Code, w.Body.String())
}

func loginToken(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/login", gin.H{"email": email, "password": password})
	require.Equal(t, 200, w.Code, w.Body.String())
	user := decodeBody(t, w)["user"].(map[string]interface{})
	return user["token"].(string)
}

func createProduct(t *testing.T, r *gin.Engine, name string, price float64) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/addproduct", gin.H{
		"name":     name,
		"category": "spices",
		"price":    price,
		"image":    "img/" + name + ".jpg",
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	product := decodeBody(t, w)["product"].(map[string]interface{})
	return product["_id"].(string)
}
