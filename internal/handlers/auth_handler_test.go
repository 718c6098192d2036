package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobtrackr/internal/models"
)

func TestRegister_Success(t *testing.T) {
	r, db := newTestServer(t)

	w := perform(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "new@example.com",
		"password": "password123",
		"name":     "New User",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "new@example.com", body["email"])
	assert.Equal(t, "New User", body["name"])
	assert.NotEmpty(t, body["id"])
	assert.NotContains(t, body, "password")

	// Stored credential is a hash, not the plaintext.
	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "new@example.com").Error)
	assert.NotEqual(t, "password123", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, db := newTestServer(t)
	registerAndLogin(t, r, "dup@example.com")

	w := perform(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "dup@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists.", decodeBody(t, w)["message"])

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegister_ValidationErrors(t *testing.T) {
	r, _ := newTestServer(t)

	w := perform(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "not-an-email",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Validation failed.", body["message"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)
	first := errs[0].(map[string]any)
	assert.Equal(t, "email", first["path"])
	assert.Equal(t, "Invalid email format.", first["message"])
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "known@example.com")

	wrongPassword := perform(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "known@example.com",
		"password": "wrongpassword",
	})
	unknownEmail := perform(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, "Invalid credentials.", decodeBody(t, wrongPassword)["message"])
}

func TestMe(t *testing.T) {
	r, _ := newTestServer(t)
	userID, token := registerAndLogin(t, r, "me@example.com")

	w := perform(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, userID, body["id"])
	assert.Equal(t, "me@example.com", body["email"])
	assert.NotEmpty(t, body["createdAt"])
}

func TestMe_Unauthenticated(t *testing.T) {
	r, _ := newTestServer(t)

	noToken := perform(t, r, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, noToken.Code)
	assert.Equal(t, "Not authorized, no token.", decodeBody(t, noToken)["message"])

	badToken := perform(t, r, http.MethodGet, "/api/auth/me", "garbage.token.here", nil)
	require.Equal(t, http.StatusUnauthorized, badToken.Code)
	assert.Equal(t, "Not authorized, token failed.", decodeBody(t, badToken)["message"])
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestServer(t)

	w := perform(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running!", decodeBody(t, w)["message"])
}

func TestRecovery_PanicBecomesGeneric500(t *testing.T) {
	r, _ := newTestServer(t)
	r.GET("/boom", func(c *gin.Context) {
		panic("handler blew up")
	})

	w := perform(t, r, http.MethodGet, "/boom", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong!", decodeBody(t, w)["message"])
}
