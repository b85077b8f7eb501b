package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
	nextID       string
	insertErr    error
	completedIDs []string
	cancelledIDs []string
	paidIDs      []string
}

func (f *fakeAppointmentRepo) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.appointments == nil {
		f.appointments = make(map[string]*models.Appointment)
	}
	stored := *appointmentModel
	stored.ID = f.nextID
	f.appointments[f.nextID] = &stored
	return f.nextID, nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return f.appointments[appointmentID], nil
}

func (f *fakeAppointmentRepo) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) SetCancelled(ctx context.Context, appointmentID string) error {
	f.cancelledIDs = append(f.cancelledIDs, appointmentID)
	if a, ok := f.appointments[appointmentID]; ok {
		a.Cancelled = true
	}
	return nil
}

func (f *fakeAppointmentRepo) SetCompleted(ctx context.Context, appointmentID string) error {
	f.completedIDs = append(f.completedIDs, appointmentID)
	if a, ok := f.appointments[appointmentID]; ok {
		a.IsCompleted = true
	}
	return nil
}

func (f *fakeAppointmentRepo) SetPaid(ctx context.Context, appointmentID string) error {
	f.paidIDs = append(f.paidIDs, appointmentID)
	if a, ok := f.appointments[appointmentID]; ok {
		a.Payment = true
	}
	return nil
}

type fakeDoctorRepo struct {
	doctors       map[string]*models.Doctor
	reserveResult bool
	reserveErr    error
	reserved      []string
	released      []string
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
	if f.reserveErr != nil {
		return false, f.reserveErr
	}
	f.reserved = append(f.reserved, fmt.Sprintf("%s/%s/%s", doctorID, slotDate, slotTime))
	return f.reserveResult, nil
}

func (f *fakeDoctorRepo) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	f.released = append(f.released, fmt.Sprintf("%s/%s/%s", doctorID, slotDate, slotTime))
	return nil
}

func (f *fakeDoctorRepo) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	if d, ok := f.doctors[doctorID]; ok {
		d.Available = available
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	return userModel.ID, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, userModel *models.User) error {
	return nil
}

type fakeSessionService struct{}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
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

type fakeLockerService struct {
	acquired bool
	lockErr  error
	locked   []string
	unlocked []string
}

func (f *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if f.lockErr != nil {
		return false, "", f.lockErr
	}
	f.locked = append(f.locked, key)
	return f.acquired, "lock-value", nil
}

func (f *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked = append(f.unlocked, key)
	return nil
}

type fakeEventPublisher struct {
	events     []*contracts.AppointmentEvent
	publishErr error
}

func (f *fakeEventPublisher) Publish(ctx context.Context, event *contracts.AppointmentEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, event)
	return nil
}

func patientSessionData(t *testing.T, userID string) string {
	t.Helper()
	session := &models.Session{
		SessionID: "sess-1",
		Role:      "patient",
		UserID:    userID,
		Email:     "patient@example.com",
		Name:      "Pat",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	data, err := json.Marshal(session)
	require.NoError(t, err)
	return string(data)
}

func doctorSessionData(t *testing.T, doctorID string) string {
	t.Helper()
	session := &models.Session{
		SessionID: "sess-2",
		Role:      "doctor",
		DoctorID:  doctorID,
		Email:     "doc@example.com",
		Name:      "Doc",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	data, err := json.Marshal(session)
	require.NoError(t, err)
	return string(data)
}

func newTestUsecase(
	appointmentRepo *fakeAppointmentRepo,
	doctorRepo *fakeDoctorRepo,
	userRepo *fakeUserRepo,
	locker *fakeLockerService,
	publisher *fakeEventPublisher,
) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		DoctorRepository:      doctorRepo,
		UserRepository:        userRepo,
		SessionService:        &fakeSessionService{},
		LockerService:         locker,
		EventPublisher:        publisher,
		InternalConfig: &config.InternalConfig{
			Booking: config.AppBooking{SlotLockTTLInSeconds: 30},
		},
		Log: zap.NewNop(),
	}
}

func testDoctor(id string) *models.Doctor {
	return &models.Doctor{
		ID:          id,
		Name:        "Dr. Ayu",
		Email:       "ayu@example.com",
		Speciality:  "General physician",
		Fees:        50,
		Available:   true,
		SlotsBooked: map[string][]string{},
	}
}

func TestBookAppointment(t *testing.T) {
	bookRequest := &requests.BookAppointment{
		DoctorID: "doc-1",
		SlotDate: "12_10_2026",
		SlotTime: "10:30 am",
	}

	t.Run("Successful Booking", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{nextID: "appt-1"}
		doctorRepo := &fakeDoctorRepo{
			doctors:       map[string]*models.Doctor{"doc-1": testDoctor("doc-1")},
			reserveResult: true,
		}
		userRepo := &fakeUserRepo{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Pat", Email: "patient@example.com"},
		}}
		locker := &fakeLockerService{acquired: true}
		publisher := &fakeEventPublisher{}
		uc := newTestUsecase(appointmentRepo, doctorRepo, userRepo, locker, publisher)

		response, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		require.NoError(t, err)
		assert.Equal(t, "appt-1", response.ID)
		assert.Equal(t, "user-1", response.UserID)
		assert.Equal(t, "doc-1", response.DoctorID)
		assert.Equal(t, int64(50), response.Amount, "amount should come from the doctor's fee")
		assert.Equal(t, "Pat", response.UserData.Name, "user snapshot should ride on the appointment")
		assert.Equal(t, "Dr. Ayu", response.DoctorData.Name, "doctor snapshot should ride on the appointment")
		assert.Len(t, doctorRepo.reserved, 1, "slot should be reserved exactly once")
		assert.Len(t, locker.unlocked, 1, "lock should be released after booking")
		require.Len(t, publisher.events, 1)
		assert.Equal(t, "appointment.booked", publisher.events[0].Type)
	})

	t.Run("Doctor Does Not Exist", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{}}
		uc := newTestUsecase(&fakeAppointmentRepo{}, doctorRepo, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})

		_, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Doctor Not Available", func(t *testing.T) {
		doctor := testDoctor("doc-1")
		doctor.Available = false
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{"doc-1": doctor}}
		locker := &fakeLockerService{acquired: true}
		uc := newTestUsecase(&fakeAppointmentRepo{}, doctorRepo, &fakeUserRepo{}, locker, &fakeEventPublisher{})

		_, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Empty(t, locker.locked, "no lock should be taken for an unavailable doctor")
	})

	t.Run("Slot Already Booked", func(t *testing.T) {
		doctor := testDoctor("doc-1")
		doctor.SlotsBooked["12_10_2026"] = []string{"10:30 am"}
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{"doc-1": doctor}}
		uc := newTestUsecase(&fakeAppointmentRepo{}, doctorRepo, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})

		_, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Lock Not Acquired", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{"doc-1": testDoctor("doc-1")}}
		locker := &fakeLockerService{acquired: false}
		uc := newTestUsecase(&fakeAppointmentRepo{}, doctorRepo, &fakeUserRepo{}, locker, &fakeEventPublisher{})

		_, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Empty(t, doctorRepo.reserved, "slot must not be written without the lock")
	})

	t.Run("Guarded Write Conflict", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{
			doctors:       map[string]*models.Doctor{"doc-1": testDoctor("doc-1")},
			reserveResult: false,
		}
		userRepo := &fakeUserRepo{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Pat"},
		}}
		appointmentRepo := &fakeAppointmentRepo{nextID: "appt-1"}
		uc := newTestUsecase(appointmentRepo, doctorRepo, userRepo, &fakeLockerService{acquired: true}, &fakeEventPublisher{})

		_, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Empty(t, appointmentRepo.appointments, "no appointment should be created on a write conflict")
	})

	t.Run("Insert Failure Rolls Back Slot", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepo{
			doctors:       map[string]*models.Doctor{"doc-1": testDoctor("doc-1")},
			reserveResult: true,
		}
		userRepo := &fakeUserRepo{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Pat"},
		}}
		appointmentRepo := &fakeAppointmentRepo{insertErr: errors.New("insert failed")}
		uc := newTestUsecase(appointmentRepo, doctorRepo, userRepo, &fakeLockerService{acquired: true}, &fakeEventPublisher{})

		_, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		require.Error(t, err)
		require.Len(t, doctorRepo.released, 1, "reserved slot should be released after a failed insert")
		assert.Equal(t, "doc-1/12_10_2026/10:30 am", doctorRepo.released[0])
	})

	t.Run("Broker Down Does Not Fail Booking", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{nextID: "appt-1"}
		doctorRepo := &fakeDoctorRepo{
			doctors:       map[string]*models.Doctor{"doc-1": testDoctor("doc-1")},
			reserveResult: true,
		}
		userRepo := &fakeUserRepo{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Pat"},
		}}
		publisher := &fakeEventPublisher{publishErr: errors.New("broker unreachable")}
		uc := newTestUsecase(appointmentRepo, doctorRepo, userRepo, &fakeLockerService{acquired: true}, publisher)

		response, err := uc.BookAppointment(context.Background(), patientSessionData(t, "user-1"), bookRequest)

		require.NoError(t, err, "publishing is best effort")
		assert.Equal(t, "appt-1", response.ID)
	})
}

func TestCancelUserAppointment(t *testing.T) {
	newBookedAppointment := func() *fakeAppointmentRepo {
		return &fakeAppointmentRepo{appointments: map[string]*models.Appointment{
			"appt-1": {
				ID:       "appt-1",
				UserID:   "user-1",
				DoctorID: "doc-1",
				SlotDate: "12_10_2026",
				SlotTime: "10:30 am",
			},
		}}
	}

	t.Run("Owner Cancels And Slot Is Released", func(t *testing.T) {
		appointmentRepo := newBookedAppointment()
		doctorRepo := &fakeDoctorRepo{}
		publisher := &fakeEventPublisher{}
		uc := newTestUsecase(appointmentRepo, doctorRepo, &fakeUserRepo{}, &fakeLockerService{}, publisher)

		err := uc.CancelUserAppointment(context.Background(), patientSessionData(t, "user-1"), &requests.CancelAppointment{AppointmentID: "appt-1"})

		require.NoError(t, err)
		assert.Equal(t, []string{"appt-1"}, appointmentRepo.cancelledIDs)
		require.Len(t, doctorRepo.released, 1)
		assert.Equal(t, "doc-1/12_10_2026/10:30 am", doctorRepo.released[0], "exactly the booked slot should be freed")
		require.Len(t, publisher.events, 1)
		assert.Equal(t, "appointment.cancelled", publisher.events[0].Type)
	})

	t.Run("Non-Owner Is Rejected", func(t *testing.T) {
		appointmentRepo := newBookedAppointment()
		doctorRepo := &fakeDoctorRepo{}
		uc := newTestUsecase(appointmentRepo, doctorRepo, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})

		err := uc.CancelUserAppointment(context.Background(), patientSessionData(t, "user-2"), &requests.CancelAppointment{AppointmentID: "appt-1"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
		assert.Empty(t, appointmentRepo.cancelledIDs, "appointment must stay untouched")
		assert.Empty(t, doctorRepo.released, "slot must stay untouched")
	})

	t.Run("Already Cancelled", func(t *testing.T) {
		appointmentRepo := newBookedAppointment()
		appointmentRepo.appointments["appt-1"].Cancelled = true
		uc := newTestUsecase(appointmentRepo, &fakeDoctorRepo{}, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})

		err := uc.CancelUserAppointment(context.Background(), patientSessionData(t, "user-1"), &requests.CancelAppointment{AppointmentID: "appt-1"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		uc := newTestUsecase(&fakeAppointmentRepo{}, &fakeDoctorRepo{}, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})

		err := uc.CancelUserAppointment(context.Background(), patientSessionData(t, "user-1"), &requests.CancelAppointment{AppointmentID: "missing"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestCompleteDoctorAppointment(t *testing.T) {
	t.Run("Owner Completes", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{appointments: map[string]*models.Appointment{
			"appt-1": {ID: "appt-1", UserID: "user-1", DoctorID: "doc-1"},
		}}
		publisher := &fakeEventPublisher{}
		uc := newTestUsecase(appointmentRepo, &fakeDoctorRepo{}, &fakeUserRepo{}, &fakeLockerService{}, publisher)

		err := uc.CompleteDoctorAppointment(context.Background(), doctorSessionData(t, "doc-1"), &requests.CompleteAppointment{AppointmentID: "appt-1"})

		require.NoError(t, err)
		assert.Equal(t, []string{"appt-1"}, appointmentRepo.completedIDs)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, "appointment.completed", publisher.events[0].Type)
	})

	t.Run("Other Doctor Is Rejected", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{appointments: map[string]*models.Appointment{
			"appt-1": {ID: "appt-1", DoctorID: "doc-1"},
		}}
		uc := newTestUsecase(appointmentRepo, &fakeDoctorRepo{}, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})

		err := uc.CompleteDoctorAppointment(context.Background(), doctorSessionData(t, "doc-2"), &requests.CompleteAppointment{AppointmentID: "appt-1"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
		assert.Empty(t, appointmentRepo.completedIDs)
	})

	t.Run("Cancelled Appointment Cannot Complete", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{appointments: map[string]*models.Appointment{
			"appt-1": {ID: "appt-1", DoctorID: "doc-1", Cancelled: true},
		}}
		uc := newTestUsecase(appointmentRepo, &fakeDoctorRepo{}, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})

		err := uc.CompleteDoctorAppointment(context.Background(), doctorSessionData(t, "doc-1"), &requests.CompleteAppointment{AppointmentID: "appt-1"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestGetDoctorDashboard(t *testing.T) {
	t.Run("Earnings Patients And Latest", func(t *testing.T) {
		// FindByDoctorID on the real repository returns in insertion
		// order; the fake map breaks that, so use a deterministic slice
		// via a purpose-built fake.
		appointments := []models.Appointment{
			{ID: "a1", UserID: "user-1", DoctorID: "doc-1", Amount: 50, IsCompleted: true},
			{ID: "a2", UserID: "user-2", DoctorID: "doc-1", Amount: 60, Payment: true},
			{ID: "a3", UserID: "user-1", DoctorID: "doc-1", Amount: 70},
			{ID: "a4", UserID: "user-3", DoctorID: "doc-1", Amount: 80, IsCompleted: true, Payment: true},
			{ID: "a5", UserID: "user-1", DoctorID: "doc-1", Amount: 90, Cancelled: true},
			{ID: "a6", UserID: "user-4", DoctorID: "doc-1", Amount: 40, Payment: true},
		}
		uc := newTestUsecase(&fakeAppointmentRepo{}, &fakeDoctorRepo{}, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})
		uc.AppointmentRepository = &orderedAppointmentRepo{appointments: appointments}

		dashboard, err := uc.GetDoctorDashboard(context.Background(), doctorSessionData(t, "doc-1"))

		require.NoError(t, err)
		assert.Equal(t, int64(50+60+80+40), dashboard.Earnings, "completed or paid appointments count once each")
		assert.Equal(t, 6, dashboard.Appointments)
		assert.Equal(t, 4, dashboard.Patients, "patients are counted distinct")
		require.Len(t, dashboard.LatestAppointments, 5)
		assert.Equal(t, "a6", dashboard.LatestAppointments[0].ID, "latest appointments are newest first")
		assert.Equal(t, "a2", dashboard.LatestAppointments[4].ID)
	})

	t.Run("Fewer Than Five Appointments", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a1", UserID: "user-1", DoctorID: "doc-1", Amount: 50},
			{ID: "a2", UserID: "user-1", DoctorID: "doc-1", Amount: 60, Payment: true},
		}
		uc := newTestUsecase(&fakeAppointmentRepo{}, &fakeDoctorRepo{}, &fakeUserRepo{}, &fakeLockerService{}, &fakeEventPublisher{})
		uc.AppointmentRepository = &orderedAppointmentRepo{appointments: appointments}

		dashboard, err := uc.GetDoctorDashboard(context.Background(), doctorSessionData(t, "doc-1"))

		require.NoError(t, err)
		assert.Equal(t, int64(60), dashboard.Earnings)
		assert.Equal(t, 1, dashboard.Patients)
		require.Len(t, dashboard.LatestAppointments, 2)
		assert.Equal(t, "a2", dashboard.LatestAppointments[0].ID)
	})
}

type orderedAppointmentRepo struct {
	fakeAppointmentRepo
	appointments []models.Appointment
}

func (f *orderedAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return f.appointments, nil
}
