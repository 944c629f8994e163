package router

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/logging"
	"QR-Code-Tracker/pkg/token"
	"QR-Code-Tracker/repository/repotest"
)

type client struct {
	t    *testing.T
	deps Dependencies
	now  *time.Time
}

func newClient(t *testing.T) *client {
	t.Helper()
	now := time.Now()
	maker, err := token.NewJWTMaker([]byte("router-test-secret"), token.DefaultLifetimes(),
		token.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	qrCodes := repotest.NewQRCodeStore()
	return &client{
		t:   t,
		now: &now,
		deps: Dependencies{
			Users:   repotest.NewUserStore(),
			QRCodes: qrCodes,
			Scans:   repotest.NewScanStore(qrCodes),
			Logos:   repotest.NewLogoStore(),
			Maker:   maker,
			Logger:  logging.Nop(),
		},
	}
}

func (c *client) call(method, path string, payload any, accessToken string) (*http.Response, []byte) {
	c.t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := New(c.deps).Test(req, -1)
	require.NoError(c.t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, out
}

func (c *client) registerAndLogin(email string) models.LoginSuccessResponse {
	c.t.Helper()
	resp, body := c.call(http.MethodPost, "/auth/register",
		map[string]string{"username": "u", "email": email, "password": "p"}, "")
	require.Equal(c.t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = c.call(http.MethodPost, "/auth/login", map[string]string{"email": email, "password": "p"}, "")
	require.Equal(c.t, http.StatusOK, resp.StatusCode, string(body))

	var login models.LoginSuccessResponse
	require.NoError(c.t, json.Unmarshal(body, &login))
	return login
}

func TestHealthAndDocs(t *testing.T) {
	c := newClient(t)

	resp, body := c.call(http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"QR Code Tracker API","status":"running","docs":"/docs/index.html"}`, string(body))

	resp, body = c.call(http.MethodGet, "/docs/doc.json", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/qrcodes/generate")
}

func TestRegisterTwice(t *testing.T) {
	c := newClient(t)
	payload := map[string]string{"username": "u", "email": "e@x.com", "password": "p"}

	resp, body := c.call(http.MethodPost, "/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.RegisterSuccessResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.UserID)

	resp, body = c.call(http.MethodPost, "/auth/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"User already exists"}`, string(body))
}

func TestLoginIssuesDistinctTokens(t *testing.T) {
	c := newClient(t)
	login := c.registerAndLogin("e@x.com")

	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.NotEqual(t, login.AccessToken, login.RefreshToken)

	resp, _ := c.call(http.MethodPost, "/auth/login", map[string]string{"email": "e@x.com", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGenerateDecodesBackToURL(t *testing.T) {
	c := newClient(t)
	login := c.registerAndLogin("e@x.com")

	resp, body := c.call(http.MethodPost, "/qrcodes/generate", map[string]string{"url": "https://example.com"}, login.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-QR-Code-ID"))

	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	result, err := zxingqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", result.GetText())

	resp, body = c.call(http.MethodGet, "/qrcodes/my_qrcodes", nil, login.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var qrCodes []models.QRCode
	require.NoError(t, json.Unmarshal(body, &qrCodes))
	require.Len(t, qrCodes, 1)
	assert.Equal(t, "https://example.com", qrCodes[0].URL)
}

func TestListWithExpiredAccessToken(t *testing.T) {
	c := newClient(t)
	login := c.registerAndLogin("e@x.com")

	*c.now = c.now.Add(token.DefaultAccessTTL + time.Second)

	resp, _ := c.call(http.MethodGet, "/qrcodes/my_qrcodes", nil, login.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The refresh token outlives the access token and restores access.
	resp, body := c.call(http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": login.RefreshToken}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var refreshed models.RefreshSuccessResponse
	require.NoError(t, json.Unmarshal(body, &refreshed))

	resp, _ = c.call(http.MethodGet, "/qrcodes/my_qrcodes", nil, refreshed.AccessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteOthersCodeLooksMissing(t *testing.T) {
	c := newClient(t)
	alice := c.registerAndLogin("alice@x.com")
	bob := c.registerAndLogin("bob@x.com")

	resp, _ := c.call(http.MethodPost, "/qrcodes/generate", map[string]string{"url": "https://example.com"}, alice.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	qrCodeID := resp.Header.Get("X-QR-Code-ID")

	resp, othersBody := c.call(http.MethodDelete, "/qrcodes/qrcodes/"+qrCodeID, nil, bob.AccessToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, missingBody := c.call(http.MethodDelete, "/qrcodes/qrcodes/"+models.NewID().Hex(), nil, bob.AccessToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, string(missingBody), string(othersBody))

	resp, body := c.call(http.MethodGet, "/qrcodes/my_qrcodes", nil, alice.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var qrCodes []models.QRCode
	require.NoError(t, json.Unmarshal(body, &qrCodes))
	assert.Len(t, qrCodes, 1)

	resp, _ = c.call(http.MethodDelete, "/qrcodes/qrcodes/"+qrCodeID, nil, alice.AccessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestScanFlow(t *testing.T) {
	c := newClient(t)
	login := c.registerAndLogin("e@x.com")

	resp, _ := c.call(http.MethodPost, "/qrcodes/generate", map[string]string{"url": "https://example.com"}, login.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	qrCodeID := resp.Header.Get("X-QR-Code-ID")

	for i := 0; i < 2; i++ {
		resp, _ = c.call(http.MethodPost, "/scans/"+qrCodeID, nil, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := c.call(http.MethodGet, "/analytics/"+qrCodeID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var scans []models.Scan
	require.NoError(t, json.Unmarshal(body, &scans))
	assert.Len(t, scans, 2)

	userID, err := token.ValidateKind(c.deps.Maker, login.AccessToken, token.Access)
	require.NoError(t, err)
	resp, body = c.call(http.MethodGet, "/analytics/user/"+userID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"total_scans":2}]`, string(body))
}
