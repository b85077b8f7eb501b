package admin

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepo struct {
	doctors      map[string]*models.Doctor
	nextID       string
	created      []*models.Doctor
	availability map[string]bool
}

func (f *fakeDoctorRepo) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	f.created = append(f.created, doctorModel)
	return f.nextID, nil
}

func (f *fakeDoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctors[doctorID], nil
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]models.Doctor, error) {
	var result []models.Doctor
	for _, d := range f.doctors {
		result = append(result, *d)
	}
	return result, nil
}

func (f *fakeDoctorRepo) UpdateDoctorProfile(ctx context.Context, doctorModel *models.Doctor) error {
	return nil
}

func (f *fakeDoctorRepo) ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error) {
	return false, nil
}

func (f *fakeDoctorRepo) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	return nil
}

func (f *fakeDoctorRepo) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	if f.availability == nil {
		f.availability = make(map[string]bool)
	}
	f.availability[doctorID] = available
	return nil
}

type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, error) {
	f.uploads = append(f.uploads, objectName)
	return "https://cdn.example.com/medibook/" + objectName, nil
}

type fakeUploadFile struct {
	*bytes.Reader
}

func (f fakeUploadFile) Close() error { return nil }

func newTestUsecase(doctorRepo *fakeDoctorRepo, storage *fakeStorage) *adminUsecase {
	return &adminUsecase{
		DoctorRepository: doctorRepo,
		MinioStorage:     storage,
		InternalConfig: &config.InternalConfig{
			JWT:   config.AppJWT{Secret: "test-secret", ExpTimeInHour: 24},
			Admin: config.AppAdmin{Email: "admin@example.com", Password: "AdminPass1!"},
		},
		Log: zap.NewNop(),
	}
}

func TestLoginAdmin(t *testing.T) {
	t.Run("Valid Credentials", func(t *testing.T) {
		uc := newTestUsecase(&fakeDoctorRepo{}, &fakeStorage{})

		response, err := uc.LoginAdmin(context.Background(), &requests.LoginAdmin{
			Email:    "admin@example.com",
			Password: "AdminPass1!",
		})

		require.NoError(t, err)
		email, err := utils.ParseAdminJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc := newTestUsecase(&fakeDoctorRepo{}, &fakeStorage{})

		_, err := uc.LoginAdmin(context.Background(), &requests.LoginAdmin{
			Email:    "admin@example.com",
			Password: "wrong",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Unconfigured Admin Always Fails", func(t *testing.T) {
		uc := newTestUsecase(&fakeDoctorRepo{}, &fakeStorage{})
		uc.InternalConfig = &config.InternalConfig{
			JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 24},
		}

		_, err := uc.LoginAdmin(context.Background(), &requests.LoginAdmin{
			Email:    "",
			Password: "",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode, "empty configured credentials must not allow login")
	})
}

func TestAddDoctor(t *testing.T) {
	addDoctorRequest := func() *requests.AddDoctor {
		return &requests.AddDoctor{
			Name:       "Dr. Ayu",
			Email:      "ayu@example.com",
			Password:   "D0ctorPass!",
			Speciality: "Dermatologist",
			Degree:     "MBBS",
			Experience: "4 Years",
			About:      "Skin specialist.",
			Fees:       60,
			Address: requests.Address{
				Line1: "Clinic Rd 5",
			},
			Image:       fakeUploadFile{bytes.NewReader([]byte("png-bytes"))},
			ImageHeader: &multipart.FileHeader{Filename: "portrait.png", Size: 9},
		}
	}

	t.Run("Successful Creation", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{}, nextID: "doc-1"}
		storage := &fakeStorage{}
		uc := newTestUsecase(doctorRepo, storage)

		response, err := uc.AddDoctor(context.Background(), addDoctorRequest())

		require.NoError(t, err)
		assert.Equal(t, "doc-1", response.DoctorID)

		require.Len(t, doctorRepo.created, 1)
		created := doctorRepo.created[0]
		assert.True(t, created.Available, "a new doctor starts available")
		assert.NotNil(t, created.SlotsBooked, "slot map starts empty, not nil")
		assert.Empty(t, created.SlotsBooked)
		assert.NotEqual(t, "D0ctorPass!", created.Password)
		assert.True(t, utils.CheckPasswordHash("D0ctorPass!", created.Password))
		assert.Contains(t, created.Image, "https://cdn.example.com/medibook/")
		require.Len(t, storage.uploads, 1)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": {ID: "doc-1", Email: "ayu@example.com"},
		}}
		storage := &fakeStorage{}
		uc := newTestUsecase(doctorRepo, storage)

		_, err := uc.AddDoctor(context.Background(), addDoctorRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Empty(t, storage.uploads, "no portrait should be uploaded for a rejected doctor")
	})
}

func TestChangeDoctorAvailability(t *testing.T) {
	t.Run("Toggles Current State", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": {ID: "doc-1", Available: true},
			"doc-2": {ID: "doc-2", Available: false},
		}}
		uc := newTestUsecase(doctorRepo, &fakeStorage{})

		require.NoError(t, uc.ChangeDoctorAvailability(context.Background(), &requests.ChangeAvailability{DoctorID: "doc-1"}))
		require.NoError(t, uc.ChangeDoctorAvailability(context.Background(), &requests.ChangeAvailability{DoctorID: "doc-2"}))

		assert.False(t, doctorRepo.availability["doc-1"], "available doctor should be switched off")
		assert.True(t, doctorRepo.availability["doc-2"], "unavailable doctor should be switched on")
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		uc := newTestUsecase(&fakeDoctorRepo{doctors: map[string]*models.Doctor{}}, &fakeStorage{})

		err := uc.ChangeDoctorAvailability(context.Background(), &requests.ChangeAvailability{DoctorID: "missing"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestListAllDoctors(t *testing.T) {
	doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doc-1": {
			ID:         "doc-1",
			Name:       "Dr. Ayu",
			Email:      "ayu@example.com",
			Password:   "$2a$10$hash",
			Speciality: "Dermatologist",
			Available:  true,
		},
	}}
	uc := newTestUsecase(doctorRepo, &fakeStorage{})

	roster, err := uc.ListAllDoctors(context.Background())

	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "ayu@example.com", roster[0].Email, "the admin view exposes the email")
}
