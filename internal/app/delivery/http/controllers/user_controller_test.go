package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserUsecase is the only path from the register endpoint to the
// user repository, so counting its calls pins whether a request could
// ever reach persistence.
type fakeUserUsecase struct {
	registerRequests []*requests.RegisterUser
}

func (f *fakeUserUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error) {
	f.registerRequests = append(f.registerRequests, request)
	return &responses.Auth{Token: "token-1"}, nil
}

func (f *fakeUserUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	return &responses.Auth{Token: "token-1"}, nil
}

func (f *fakeUserUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	return nil
}

func (f *fakeUserUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	return &responses.UserProfile{}, nil
}

func (f *fakeUserUsecase) UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) error {
	return nil
}

func registerBody(t *testing.T, name, email, password string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(&requests.RegisterUser{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestUserControllerRegister(t *testing.T) {
	newController := func(usecase *fakeUserUsecase) *UserController {
		return NewUserController(zap.NewNop(), usecase, nil, &config.InternalConfig{})
	}

	t.Run("Valid Request Reaches The Usecase", func(t *testing.T) {
		usecase := &fakeUserUsecase{}
		ctrl := newController(usecase)

		req := httptest.NewRequest("POST", "/api/user/register", registerBody(t, "Pat", "pat@example.com", "Sup3rSecret!"))
		rr := httptest.NewRecorder()

		ctrl.Register(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		require.Len(t, usecase.registerRequests, 1)
		assert.Equal(t, "pat@example.com", usecase.registerRequests[0].Email)
	})

	t.Run("Weak Password Never Reaches Persistence", func(t *testing.T) {
		usecase := &fakeUserUsecase{}
		ctrl := newController(usecase)

		weakPasswords := []string{
			"short1!",      // under eight characters
			"sup3rsecret!", // no uppercase
			"SuperSecret!", // no digit
			"Sup3rSecret",  // no special character
		}
		for _, password := range weakPasswords {
			req := httptest.NewRequest("POST", "/api/user/register", registerBody(t, "Pat", "pat@example.com", password))
			rr := httptest.NewRecorder()

			ctrl.Register(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "password %q should be rejected", password)
		}
		assert.Empty(t, usecase.registerRequests, "no rejected registration may reach the usecase or the repository behind it")
	})

	t.Run("Missing Email Is Rejected", func(t *testing.T) {
		usecase := &fakeUserUsecase{}
		ctrl := newController(usecase)

		req := httptest.NewRequest("POST", "/api/user/register", registerBody(t, "Pat", "", "Sup3rSecret!"))
		rr := httptest.NewRecorder()

		ctrl.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, usecase.registerRequests)
	})
}
