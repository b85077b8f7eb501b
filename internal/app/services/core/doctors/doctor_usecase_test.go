package doctors

import (
	"context"
	"testing"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepo struct {
	doctors   map[string]*models.Doctor
	updated   []*models.Doctor
	afterFind func()
}

func (f *fakeDoctorRepo) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	return doctorModel.ID, nil
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
	stored, ok := f.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	// Hand back a detached copy, the way a decoded mongo document is
	// detached from the collection.
	read := *stored
	read.SlotsBooked = make(map[string][]string, len(stored.SlotsBooked))
	for date, times := range stored.SlotsBooked {
		read.SlotsBooked[date] = append([]string(nil), times...)
	}
	if f.afterFind != nil {
		f.afterFind()
	}
	return &read, nil
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]models.Doctor, error) {
	var result []models.Doctor
	for _, d := range f.doctors {
		result = append(result, *d)
	}
	return result, nil
}

// UpdateDoctorProfile mirrors the repository's targeted $set: only the
// profile fields land on the stored document.
func (f *fakeDoctorRepo) UpdateDoctorProfile(ctx context.Context, doctorModel *models.Doctor) error {
	f.updated = append(f.updated, doctorModel)
	if stored, ok := f.doctors[doctorModel.ID]; ok {
		stored.Fees = doctorModel.Fees
		stored.Address = doctorModel.Address
		stored.Available = doctorModel.Available
		stored.UpdatedAt = doctorModel.UpdatedAt
	}
	return nil
}

func (f *fakeDoctorRepo) ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error) {
	return false, nil
}

func (f *fakeDoctorRepo) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	return nil
}

func (f *fakeDoctorRepo) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	return nil
}

type fakeSessionService struct {
	createdSessions []*models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	session.SessionID = "session-1"
	f.createdSessions = append(f.createdSessions, session)
	return session.SessionID, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrMissingSessionData(err)
	}
	return session, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func newTestUsecase(doctorRepo *fakeDoctorRepo, sessionService *fakeSessionService) *doctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepo,
		SessionService:   sessionService,
		InternalConfig: &config.InternalConfig{
			App: config.App{LoginSessionExpiredTimeInHours: 24},
			JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 24},
		},
		Log: zap.NewNop(),
	}
}

func doctorSessionData(t *testing.T, doctorID string) string {
	t.Helper()
	data, err := json.Marshal(&models.Session{
		SessionID: "session-1",
		Role:      "doctor",
		DoctorID:  doctorID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return string(data)
}

func TestLoginDoctor(t *testing.T) {
	hash, err := utils.HashPassword("D0ctorPass!")
	require.NoError(t, err)

	doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Dr. Ayu", Email: "ayu@example.com", Password: hash},
	}}

	t.Run("Successful Login", func(t *testing.T) {
		sessionService := &fakeSessionService{}
		uc := newTestUsecase(doctorRepo, sessionService)

		response, err := uc.LoginDoctor(context.Background(), &requests.LoginDoctor{
			Email:    "ayu@example.com",
			Password: "D0ctorPass!",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)

		require.Len(t, sessionService.createdSessions, 1)
		session := sessionService.createdSessions[0]
		assert.Equal(t, "doctor", session.Role)
		assert.Equal(t, "doc-1", session.DoctorID)
		assert.Empty(t, session.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc := newTestUsecase(doctorRepo, &fakeSessionService{})

		_, err := uc.LoginDoctor(context.Background(), &requests.LoginDoctor{
			Email:    "ayu@example.com",
			Password: "wrong",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})
}

func TestListDoctors(t *testing.T) {
	doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doc-1": {
			ID:        "doc-1",
			Name:      "Dr. Ayu",
			Email:     "ayu@example.com",
			Password:  "$2a$10$hash",
			Available: true,
		},
		"doc-2": {
			ID:        "doc-2",
			Name:      "Dr. Budi",
			Email:     "budi@example.com",
			Password:  "$2a$10$hash2",
			Available: false,
		},
	}}
	uc := newTestUsecase(doctorRepo, &fakeSessionService{})

	roster, err := uc.ListDoctors(context.Background())

	require.NoError(t, err)
	assert.Len(t, roster, 2, "unavailable doctors stay on the public roster")

	encoded, err := json.Marshal(roster)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "$2a$10$hash", "the public roster never carries password hashes")
	assert.NotContains(t, string(encoded), "ayu@example.com", "the public roster never carries emails")
}

func TestUpdateDoctorProfileBySession(t *testing.T) {
	t.Run("Only Fees Address And Availability Change", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": {
				ID:         "doc-1",
				Name:       "Dr. Ayu",
				Email:      "ayu@example.com",
				Speciality: "Dermatologist",
				Fees:       50,
				Available:  true,
			},
		}}
		uc := newTestUsecase(doctorRepo, &fakeSessionService{})

		err := uc.UpdateDoctorProfileBySession(context.Background(), doctorSessionData(t, "doc-1"), &requests.UpdateDoctorProfile{
			Fees:      75,
			Address:   requests.Address{Line1: "New Clinic Rd 9"},
			Available: false,
		})

		require.NoError(t, err)
		require.Len(t, doctorRepo.updated, 1)
		updated := doctorRepo.updated[0]
		assert.Equal(t, int64(75), updated.Fees)
		assert.Equal(t, "New Clinic Rd 9", updated.Address.Line1)
		assert.False(t, updated.Available)
		assert.Equal(t, "Dermatologist", updated.Speciality, "speciality is not doctor-editable")
	})

	t.Run("Concurrent Reservation Survives Profile Update", func(t *testing.T) {
		// A booking that lands between the profile update's read and
		// its write must not be erased: the slot map is owned by the
		// guarded slot writes, never by the profile update document.
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": {
				ID:          "doc-1",
				Name:        "Dr. Ayu",
				Fees:        50,
				Available:   true,
				SlotsBooked: map[string][]string{},
			},
		}}
		doctorRepo.afterFind = func() {
			doctorRepo.doctors["doc-1"].ReserveSlot("12_10_2026", "10:30 am")
		}
		uc := newTestUsecase(doctorRepo, &fakeSessionService{})

		err := uc.UpdateDoctorProfileBySession(context.Background(), doctorSessionData(t, "doc-1"), &requests.UpdateDoctorProfile{
			Fees:      75,
			Available: true,
		})

		require.NoError(t, err)
		stored := doctorRepo.doctors["doc-1"]
		assert.Equal(t, int64(75), stored.Fees)
		assert.True(t, stored.HasSlot("12_10_2026", "10:30 am"), "the interleaved reservation must survive the profile update")
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		uc := newTestUsecase(&fakeDoctorRepo{doctors: map[string]*models.Doctor{}}, &fakeSessionService{})

		err := uc.UpdateDoctorProfileBySession(context.Background(), doctorSessionData(t, "missing"), &requests.UpdateDoctorProfile{Fees: 75})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
