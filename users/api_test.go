package users_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/ayursetu-client/gateway"
	"github.com/jrsteele09/ayursetu-client/internal/testutil"
	"github.com/jrsteele09/ayursetu-client/users"
	"github.com/stretchr/testify/require"
)

const testEmail = "a@b.com"

func newTestAPI(t *testing.T) (*users.API, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(t)
	return users.NewAPI(gateway.New(backend.URL())), backend
}

func TestLogin(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.Handle(http.MethodPost, "/api/users/login", http.StatusOK, map[string]string{"token": "T"})

	resp, err := api.Login(context.Background(), users.Credentials{Email: testEmail, Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "T", resp.Token)

	var sent users.Credentials
	backend.Last().DecodeBody(t, &sent)
	require.Equal(t, users.Credentials{Email: testEmail, Password: "pw"}, sent)
}

func TestRegisterSendsNoConfirmPassword(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.Handle(http.MethodPost, "/api/users/register", http.StatusCreated, users.Profile{Name: "Asha", Email: testEmail, Role: users.RolePatient})

	p, err := api.Register(context.Background(), users.Registration{
		Name: "Asha", Email: testEmail, Password: "secret123", Role: users.RolePatient, City: "Pune",
	})
	require.NoError(t, err)
	require.Equal(t, users.RolePatient, p.Role)

	var sent map[string]any
	backend.Last().DecodeBody(t, &sent)
	require.Equal(t, "Pune", sent["city"])
	require.NotContains(t, sent, "confirmPassword")
	require.NotContains(t, sent, "phone")
}

func TestProfileEndpoints(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.Handle(http.MethodGet, "/api/users/{email}", http.StatusOK, users.Profile{Email: testEmail, City: "Pune"})
	backend.Handle(http.MethodPut, "/api/users/{email}", http.StatusOK, users.Profile{Email: testEmail, City: "Nashik"})
	backend.Handle(http.MethodDelete, "/api/users/{email}", http.StatusOK, "User deleted successfully")
	backend.Handle(http.MethodGet, "/api/users/all", http.StatusOK, []users.Profile{{Email: testEmail}})

	p, err := api.GetProfile(context.Background(), testEmail)
	require.NoError(t, err)
	require.Equal(t, "Pune", p.City)
	require.Equal(t, "/api/users/a@b.com", backend.Last().Path)

	p, err = api.UpdateProfile(context.Background(), testEmail, users.ProfileUpdate{City: "Nashik"})
	require.NoError(t, err)
	require.Equal(t, "Nashik", p.City)
	require.Equal(t, http.MethodPut, backend.Last().Method)

	msg, err := api.Delete(context.Background(), testEmail)
	require.NoError(t, err)
	require.Equal(t, "User deleted successfully", msg)

	all, err := api.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestPasswordEndpointsUseQueryParams(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.Handle(http.MethodPost, "/api/users/forgot-password", http.StatusOK, "Password reset link sent to your email")
	backend.Handle(http.MethodPost, "/api/users/reset-password", http.StatusOK, "Password reset successfully")
	backend.Handle(http.MethodPost, "/api/users/reset-password-with-token", http.StatusOK, "Password reset successfully")

	msg, err := api.ForgotPassword(context.Background(), testEmail)
	require.NoError(t, err)
	require.Equal(t, "Password reset link sent to your email", msg)
	require.Equal(t, testEmail, backend.Last().Query.Get("email"))
	require.Empty(t, backend.Last().Body)

	_, err = api.ResetPassword(context.Background(), testEmail, "n3wPass!")
	require.NoError(t, err)
	require.Equal(t, "n3wPass!", backend.Last().Query.Get("newPassword"))
	require.Equal(t, testEmail, backend.Last().Query.Get("email"))

	_, err = api.ResetPasswordWithToken(context.Background(), "reset-tok", "n3wPass!")
	require.NoError(t, err)
	require.Equal(t, "reset-tok", backend.Last().Query.Get("token"))
}

func TestLoginFailureCarriesBackendMessage(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.Handle(http.MethodPost, "/api/users/login", http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})

	_, err := api.Login(context.Background(), users.Credentials{Email: testEmail, Password: "bad"})
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", gateway.ErrorMessage(err))
}

func TestDecodesBackendProfile(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.HandleFunc(http.MethodGet, "/api/users/{email}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Asha",
			"email": "a@b.com",
			"password": null,
			"role": "PATIENT",
			"phone": "9800000000",
			"city": "Pune",
			"dateOfBirth": "1990-04-12",
			"gender": "FEMALE",
			"bloodGroup": "B+",
			"isActive": true,
			"isVerified": false
		}`))
	})

	p, err := api.GetProfile(context.Background(), testEmail)
	require.NoError(t, err)
	require.Equal(t, users.RolePatient, p.Role)
	require.Equal(t, users.GenderFemale, p.Gender)
	require.Equal(t, "1990-04-12", p.DateOfBirth)
	require.True(t, *p.IsActive)
	require.False(t, *p.IsVerified)
}
