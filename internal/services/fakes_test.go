package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"traininghub/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeServiceRepo is an in-memory TrainingServiceRepository for tests. When
// sessions is set, Delete cascades to that repo's sessions the way the
// schema's ON DELETE CASCADE does.
type fakeServiceRepo struct {
	byID     map[string]*domain.TrainingService
	sessions *fakeSessionRepo
	nextID   int
	err      error // if set, every call returns this error
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{byID: make(map[string]*domain.TrainingService), nextID: 1}
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc *domain.TrainingService) error {
	if f.err != nil {
		return f.err
	}
	svc.ID = fmt.Sprintf("svc-%d", f.nextID)
	f.nextID++
	f.byID[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, svc *domain.TrainingService) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[svc.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	if f.sessions != nil {
		for sessionID, s := range f.sessions.byID {
			if s.ServiceID == id {
				delete(f.sessions.byID, sessionID)
			}
		}
	}
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*domain.TrainingService, error) {
	if f.err != nil {
		return nil, f.err
	}
	if svc, ok := f.byID[id]; ok {
		return svc, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeServiceRepo) ListAvailable(ctx context.Context) ([]*domain.TrainingService, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.TrainingService
	for _, svc := range f.byID {
		if svc.Available {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*domain.TrainingService, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.TrainingService
	for _, svc := range f.byID {
		out = append(out, svc)
	}
	return out, nil
}

// fakeSessionRepo is an in-memory SessionRepository for tests. The clock is
// injectable so the upcoming filter agrees with fixtures that pin time.
type fakeSessionRepo struct {
	byID   map[string]*domain.Session
	nextID int
	now    func() time.Time
	err    error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session), nextID: 1, now: time.Now}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	if f.err != nil {
		return f.err
	}
	session.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.byID[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *domain.Session) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[session.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) GetBySessionCode(ctx context.Context, code string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range f.byID {
		if strings.ToUpper(s.SessionCode) == code {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListUpcoming(ctx context.Context, serviceID string) ([]*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	now := f.now()
	var out []*domain.Session
	for _, s := range f.byID {
		if s.Status != domain.SessionStatusActive || s.Date.Before(now) {
			continue
		}
		if serviceID != "" && s.ServiceID != serviceID {
			continue
		}
		out = append(out, s)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date.Before(out[i].Date) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Session
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

// fakeRegistrationRepo is an in-memory RegistrationRepository. It mimics the
// real repo's transactional behavior: the occupancy claim and the duplicate
// check, in that order.
type fakeRegistrationRepo struct {
	sessions  *fakeSessionRepo
	byID      map[string]*domain.Registration
	nextID    int
	createErr error
}

func newFakeRegistrationRepo(sessions *fakeSessionRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{sessions: sessions, byID: make(map[string]*domain.Registration), nextID: 1}
}

func (f *fakeRegistrationRepo) CreateConfirmed(ctx context.Context, reg *domain.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	session, ok := f.sessions.byID[reg.SessionID]
	if !ok {
		return domain.ErrNotFound
	}
	if session.Status != domain.SessionStatusActive || session.CurrentRegistrations >= session.MaxCapacity {
		return domain.ErrSessionFull
	}
	if reg.StripePaymentIntentID != nil {
		for _, existing := range f.byID {
			if existing.StripePaymentIntentID != nil && *existing.StripePaymentIntentID == *reg.StripePaymentIntentID {
				return domain.ErrDuplicateRegistration
			}
		}
	}
	session.CurrentRegistrations++
	reg.ID = fmt.Sprintf("reg-%d", f.nextID)
	f.nextID++
	reg.CreatedAt = time.Now()
	f.byID[reg.ID] = reg
	return nil
}

func (f *fakeRegistrationRepo) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Registration, error) {
	for _, reg := range f.byID {
		if reg.StripePaymentIntentID != nil && *reg.StripePaymentIntentID == paymentIntentID {
			return reg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) ListByEmail(ctx context.Context, email string) ([]*domain.Registration, error) {
	var out []*domain.Registration
	for _, reg := range f.byID {
		if reg.Email == email {
			out = append(out, reg)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

// fakeContactRepo is an in-memory ContactRepository for tests.
type fakeContactRepo struct {
	byID   map[string]*domain.ContactSubmission
	nextID int
	err    error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{byID: make(map[string]*domain.ContactSubmission), nextID: 1}
}

func (f *fakeContactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	sub.ID = fmt.Sprintf("contact-%d", f.nextID)
	f.nextID++
	sub.CreatedAt = time.Now()
	f.byID[sub.ID] = sub
	return nil
}

func (f *fakeContactRepo) ListByEmail(ctx context.Context, email string) ([]*domain.ContactSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ContactSubmission
	for _, sub := range f.byID {
		if sub.Email == email {
			out = append(out, sub)
		}
	}
	return out, nil
}

// fakePaymentProvider is a scriptable PaymentProvider.
type fakePaymentProvider struct {
	intents        map[string]*domain.PaymentIntent
	nextIntent     int
	createErr      error
	getErr         error
	customerErr    error
	customersMade  []string
	createdIntents []domain.PaymentIntentParams
}

func newFakePaymentProvider() *fakePaymentProvider {
	return &fakePaymentProvider{intents: make(map[string]*domain.PaymentIntent), nextIntent: 1}
}

func (f *fakePaymentProvider) CreateIntent(ctx context.Context, params domain.PaymentIntentParams) (*domain.PaymentIntent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdIntents = append(f.createdIntents, params)
	intent := &domain.PaymentIntent{
		ID:           fmt.Sprintf("pi_fake_%d", f.nextIntent),
		ClientSecret: fmt.Sprintf("pi_fake_%d_secret", f.nextIntent),
		Status:       "requires_payment_method",
		Amount:       params.Amount,
		Currency:     params.Currency,
	}
	f.nextIntent++
	f.intents[intent.ID] = intent
	return intent, nil
}

func (f *fakePaymentProvider) GetIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if intent, ok := f.intents[intentID]; ok {
		return intent, nil
	}
	return nil, fmt.Errorf("no such intent %s", intentID)
}

func (f *fakePaymentProvider) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	if f.customerErr != nil {
		return "", f.customerErr
	}
	f.customersMade = append(f.customersMade, email)
	return "cus_fake_" + email, nil
}

// succeededIntent registers a provider-side intent already in the succeeded state.
func (f *fakePaymentProvider) succeededIntent(id string, amount int64, receiptURL string) {
	f.intents[id] = &domain.PaymentIntent{
		ID:         id,
		Status:     domain.PaymentIntentSucceeded,
		Amount:     amount,
		Currency:   "usd",
		ReceiptURL: receiptURL,
	}
}

// fakeEmailService records sends and can be told to fail.
type fakeEmailService struct {
	registrationSends []*domain.RegistrationConfirmationEmailData
	contactSends      []*domain.ContactConfirmationEmailData
	err               error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.registrationSends = append(f.registrationSends, data)
	return nil
}

func (f *fakeEmailService) SendContactConfirmation(ctx context.Context, data *domain.ContactConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.contactSends = append(f.contactSends, data)
	return nil
}

// fakeSecretChecker accepts one password.
type fakeSecretChecker struct {
	password string
}

func (f *fakeSecretChecker) Check(password string) error {
	if password != f.password {
		return domain.ErrUnauthorized
	}
	return nil
}

// fakeTokenIssuer returns a canned token.
type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Issue(subject string, roles []string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}
