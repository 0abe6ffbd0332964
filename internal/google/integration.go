package google

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/magscene/magsav-api/internal/config"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/metrics"
)

// ConfigStore gives the integration access to the persisted configuration.
type ConfigStore interface {
	Get(ctx context.Context) (domain.GoogleServicesConfig, error)
	UpdateTokens(ctx context.Context, id uint, accessToken, refreshToken, tokenType string, expiry time.Time) error
}

type Option func(*Integration)

// WithHTTPClient sets the base client used for OAuth2 and API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(i *Integration) {
		i.httpClient = c
	}
}

// WithSyncUnit changes the unit of intervalle_sync, one minute by default.
func WithSyncUnit(d time.Duration) Option {
	return func(i *Integration) {
		i.syncUnit = d
	}
}

// Integration coordinates the Calendar, Gmail and Contacts clients. Every
// operation is a soft failure: errors are logged and reported as false or
// empty results.
type Integration struct {
	store      ConfigStore
	metrics    *metrics.Metrics
	httpClient *http.Client
	syncUnit   time.Duration
	now        func() time.Time

	mu          sync.RWMutex
	settings    config.GoogleConfig
	auth        *Authenticator
	cfg         domain.GoogleServicesConfig
	calendar    *CalendarClient
	gmail       *GmailClient
	contacts    *ContactsClient
	initialized bool
	lastCalSync *time.Time
	lastCtSync  *time.Time

	lifeMu sync.Mutex
	autoMu sync.Mutex
	auto   *autoRun
}

// autoRun is one generation of auto-sync loops.
type autoRun struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewIntegration(settings *config.GoogleConfig, store ConfigStore, m *metrics.Metrics, opts ...Option) *Integration {
	i := &Integration{
		store:      store,
		metrics:    m,
		httpClient: &http.Client{},
		syncUnit:   time.Minute,
		now:        time.Now,
		settings:   *settings,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.auth = NewAuthenticator(Endpoints{AuthURL: settings.AuthURL, TokenURL: settings.TokenURL}, i.httpClient)

	return i
}

// UpdateSettings swaps the endpoints and client tuning. It takes effect on
// the next Initialize or Reload.
func (i *Integration) UpdateSettings(settings *config.GoogleConfig) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.settings = *settings
	i.auth = NewAuthenticator(Endpoints{AuthURL: settings.AuthURL, TokenURL: settings.TokenURL}, i.httpClient)
}

func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		zap.L().Warn("Unknown time zone, using UTC", zap.String("time_zone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

func (i *Integration) saveTokens(id uint) func(*oauth2.Token) {
	return func(tok *oauth2.Token) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := i.store.UpdateTokens(ctx, id, tok.AccessToken, tok.RefreshToken, tok.TokenType, tok.Expiry); err != nil {
			zap.L().Error("Failed to persist refreshed Google token", zap.Error(err))
			return
		}

		i.mu.Lock()
		i.cfg.AccessToken = tok.AccessToken
		i.cfg.RefreshToken = tok.RefreshToken
		i.cfg.TokenType = tok.TokenType
		i.cfg.TokenExpiry = tok.Expiry
		i.mu.Unlock()
	}
}

// Initialize loads the stored configuration, builds the three clients on one
// token source and pings them. The integration is initialized when at least
// one ping succeeds; auto-sync starts then.
func (i *Integration) Initialize(ctx context.Context) bool {
	i.StopAutoSync()

	cfg, err := i.store.Get(ctx)
	if err != nil {
		zap.L().Error("Failed to load Google configuration", zap.Error(err))
		i.reset(domain.GoogleServicesConfig{})
		return false
	}
	i.reset(cfg)

	if !cfg.IsConfigured() {
		zap.L().Warn("Google configuration is missing or incomplete")
		return false
	}
	if cfg.AccessToken == "" && cfg.RefreshToken == "" {
		zap.L().Warn("Google authorization required before initialization")
		return false
	}

	i.mu.RLock()
	settings := i.settings
	auth := i.auth
	i.mu.RUnlock()

	httpClient := auth.Client(cfg, i.saveTokens(cfg.ID))
	limiter := rate.NewLimiter(rate.Limit(settings.RequestsPerSec), settings.Burst)
	if settings.RequestsPerSec <= 0 {
		limiter = nil
	}
	opts := clientOptions{timeout: settings.RequestTimeout, attempts: settings.RetryAttempts, delay: settings.RetryDelay}

	calendar := newCalendarClient(newAPIClient("calendar", httpClient, limiter, opts, i.metrics),
		settings.CalendarURL, cfg.CalendrierPrincipal, loadLocation(settings.TimeZone))
	gmail := newGmailClient(newAPIClient("gmail", httpClient, limiter, opts, i.metrics),
		settings.GmailURL, cfg.NomExpediteur, cfg.EmailExpediteur, cfg.SignatureEmail)
	contacts := newContactsClient(newAPIClient("contacts", httpClient, limiter, opts, i.metrics), settings.PeopleURL)

	calendarOK := i.ping(ctx, "calendar", calendar.Ping)
	gmailOK := i.ping(ctx, "gmail", gmail.Ping)
	contactsOK := i.ping(ctx, "contacts", contacts.Ping)
	ok := calendarOK || gmailOK || contactsOK

	i.mu.Lock()
	i.calendar, i.gmail, i.contacts = calendar, gmail, contacts
	i.initialized = ok
	i.mu.Unlock()

	if !ok {
		zap.L().Warn("No Google service could be initialized")
		return false
	}

	zap.L().Info("Google integration initialized",
		zap.Bool("calendar", calendarOK), zap.Bool("gmail", gmailOK), zap.Bool("contacts", contactsOK))
	i.StartAutoSync()

	return true
}

func (i *Integration) ping(ctx context.Context, api string, fn func(context.Context) error) bool {
	if err := fn(ctx); err != nil {
		zap.L().Warn("Google API check failed", zap.String("api", api), zap.Error(err))
		return false
	}
	return true
}

func (i *Integration) reset(cfg domain.GoogleServicesConfig) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.cfg = cfg
	i.calendar, i.gmail, i.contacts = nil, nil, nil
	i.initialized = false
}

// Reload re-reads the configuration. A previously initialized integration
// is stopped and initialized again.
func (i *Integration) Reload(ctx context.Context) bool {
	if i.Initialized() {
		return i.Initialize(ctx)
	}

	cfg, err := i.store.Get(ctx)
	if err != nil {
		zap.L().Error("Failed to reload Google configuration", zap.Error(err))
		return false
	}

	i.mu.Lock()
	i.cfg = cfg
	i.mu.Unlock()

	return true
}

func (i *Integration) Initialized() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.initialized
}

func (i *Integration) CalendarAvailable() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.initialized && i.calendar != nil && i.cfg.SyncCalendarActif
}

func (i *Integration) GmailAvailable() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.initialized && i.gmail != nil && i.cfg.GmailActif
}

func (i *Integration) ContactsAvailable() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.initialized && i.contacts != nil && i.cfg.ContactsActif
}

func (i *Integration) Status() domain.GoogleStatus {
	status := domain.GoogleStatus{
		CalendarAvailable: i.CalendarAvailable(),
		GmailAvailable:    i.GmailAvailable(),
		ContactsAvailable: i.ContactsAvailable(),
		AutoSyncRunning:   i.AutoSyncRunning(),
	}

	i.mu.RLock()
	status.Initialized = i.initialized
	status.LastCalendarSync = i.lastCalSync
	status.LastContactsSync = i.lastCtSync
	i.mu.RUnlock()

	return status
}

func (i *Integration) calendarClient() *CalendarClient {
	if !i.CalendarAvailable() {
		return nil
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.calendar
}

func (i *Integration) gmailClient() *GmailClient {
	if !i.GmailAvailable() {
		return nil
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.gmail
}

func (i *Integration) contactsClient() *ContactsClient {
	if !i.ContactsAvailable() {
		return nil
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.contacts
}

// SyncPlanification creates or updates the Calendar event of p and returns
// its id. An event deleted on the Google side is created again.
func (i *Integration) SyncPlanification(ctx context.Context, p domain.Planification) (string, bool) {
	calendar := i.calendarClient()
	if calendar == nil {
		return "", false
	}

	if p.GoogleEventID != "" {
		err := calendar.UpdateEvent(ctx, p)
		if err == nil {
			return p.GoogleEventID, true
		}
		if !IsNotFound(err) {
			zap.L().Error("Failed to update Calendar event",
				zap.Uint("planification_id", p.ID), zap.String("event_id", p.GoogleEventID), zap.Error(err))
			return "", false
		}
	}

	eventID, err := calendar.CreateEvent(ctx, p)
	if err != nil {
		zap.L().Error("Failed to create Calendar event", zap.Uint("planification_id", p.ID), zap.Error(err))
		return "", false
	}

	zap.L().Info("Calendar event synced", zap.Uint("planification_id", p.ID), zap.String("event_id", eventID))
	return eventID, true
}

func (i *Integration) DeletePlanification(ctx context.Context, eventID string) bool {
	calendar := i.calendarClient()
	if calendar == nil || eventID == "" {
		return false
	}

	if err := calendar.DeleteEvent(ctx, eventID); err != nil {
		zap.L().Error("Failed to delete Calendar event", zap.String("event_id", eventID), zap.Error(err))
		return false
	}

	return true
}

func (i *Integration) send(ctx context.Context, kind string, build func() (Message, error)) bool {
	gmail := i.gmailClient()
	if gmail == nil {
		return false
	}

	msg, err := build()
	if err != nil {
		zap.L().Error("Failed to build email", zap.String("kind", kind), zap.Error(err))
		return false
	}

	if err = gmail.Send(ctx, msg); err != nil {
		zap.L().Error("Failed to send email", zap.String("kind", kind), zap.String("to", msg.To), zap.Error(err))
		return false
	}

	zap.L().Info("Email sent", zap.String("kind", kind), zap.String("to", msg.To))
	return true
}

func (i *Integration) SendInterventionNotification(ctx context.Context, m InterventionMail) bool {
	return i.send(ctx, "intervention_notification", func() (Message, error) {
		return InterventionNotificationMessage(m)
	})
}

func (i *Integration) SendInterventionReminder(ctx context.Context, m ReminderMail) bool {
	return i.send(ctx, "intervention_reminder", func() (Message, error) {
		return InterventionReminderMessage(m)
	})
}

func (i *Integration) SendOrderConfirmation(ctx context.Context, m OrderMail) bool {
	return i.send(ctx, "order_confirmation", func() (Message, error) {
		return OrderConfirmationMessage(m)
	})
}

// SyncContacts lists the Google contacts. It returns nil when Contacts is
// unavailable or the call fails.
func (i *Integration) SyncContacts(ctx context.Context) []Contact {
	contacts := i.contactsClient()
	if contacts == nil {
		return nil
	}

	list, err := contacts.ListContacts(ctx)
	i.metrics.RecordSyncRun("contacts", err == nil)
	if err != nil {
		zap.L().Error("Failed to list Google contacts", zap.Error(err))
		return nil
	}

	now := i.now()
	i.mu.Lock()
	i.lastCtSync = &now
	i.mu.Unlock()

	return list
}

// AddContact creates the contact and returns its resource name, empty on failure.
func (i *Integration) AddContact(ctx context.Context, c Contact) string {
	contacts := i.contactsClient()
	if contacts == nil {
		return ""
	}

	id, err := contacts.CreateContact(ctx, c)
	if err != nil {
		zap.L().Error("Failed to create Google contact", zap.String("name", c.Nom), zap.Error(err))
		return ""
	}

	return id
}

// TestConnection pings the three APIs with the current clients.
func (i *Integration) TestConnection(ctx context.Context) map[string]bool {
	i.mu.RLock()
	calendar, gmail, contacts := i.calendar, i.gmail, i.contacts
	i.mu.RUnlock()

	result := map[string]bool{"calendar": false, "gmail": false, "contacts": false}
	if calendar != nil {
		result["calendar"] = i.ping(ctx, "calendar", calendar.Ping)
	}
	if gmail != nil {
		result["gmail"] = i.ping(ctx, "gmail", gmail.Ping)
	}
	if contacts != nil {
		result["contacts"] = i.ping(ctx, "contacts", contacts.Ping)
	}

	return result
}

// AuthorizationURL returns the consent URL for the stored client.
func (i *Integration) AuthorizationURL(ctx context.Context) (string, error) {
	cfg, err := i.store.Get(ctx)
	if err != nil {
		return "", err
	}

	return i.AuthorizationURLFor(cfg)
}

// AuthorizationURLFor builds the consent URL for a configuration that may not
// be stored yet.
func (i *Integration) AuthorizationURLFor(cfg domain.GoogleServicesConfig) (string, error) {
	i.mu.RLock()
	auth := i.auth
	i.mu.RUnlock()

	return auth.AuthorizationURL(cfg)
}

// ExchangeCode trades the OAuth2 code for tokens and stores them.
func (i *Integration) ExchangeCode(ctx context.Context, code, state string) error {
	cfg, err := i.store.Get(ctx)
	if err != nil {
		return err
	}
	if cfg.ID == 0 {
		return ErrNotConfigured
	}

	i.mu.RLock()
	auth := i.auth
	i.mu.RUnlock()

	tok, err := auth.Exchange(ctx, cfg, code, state)
	if err != nil {
		return err
	}

	if err = i.store.UpdateTokens(ctx, cfg.ID, tok.AccessToken, tok.RefreshToken, tok.TokenType, tok.Expiry); err != nil {
		return err
	}

	zap.L().Info("Google authorization tokens saved")
	return nil
}

// StartAutoSync runs the periodic calendar and contacts pulls, replacing any
// running loops. It returns false when the integration is not initialized.
func (i *Integration) StartAutoSync() bool {
	i.lifeMu.Lock()
	defer i.lifeMu.Unlock()

	i.mu.RLock()
	initialized := i.initialized
	cfg := i.cfg
	i.mu.RUnlock()

	if !initialized {
		return false
	}

	i.stopAutoSync()

	interval := time.Duration(cfg.IntervalleSync) * i.syncUnit
	if interval <= 0 {
		interval = domain.DefaultIntervalleSync * i.syncUnit
	}

	ctx, cancel := context.WithCancel(context.Background())
	run := &autoRun{cancel: cancel}
	if cfg.SyncCalendarActif {
		run.wg.Add(1)
		go i.every(ctx, &run.wg, interval, i.pullCalendar)
	}
	if cfg.SyncContactsAuto {
		run.wg.Add(1)
		go i.every(ctx, &run.wg, 2*interval, func(ctx context.Context) { i.SyncContacts(ctx) })
	}

	i.autoMu.Lock()
	i.auto = run
	i.autoMu.Unlock()

	i.metrics.SetAutoSyncRunning(true)
	zap.L().Info("Google auto-sync started", zap.Duration("interval", interval))

	return true
}

// StopAutoSync cancels the periodic pulls and waits for a running pull to end.
func (i *Integration) StopAutoSync() {
	i.lifeMu.Lock()
	defer i.lifeMu.Unlock()

	i.stopAutoSync()
}

// stopAutoSync must be called with lifeMu held.
func (i *Integration) stopAutoSync() {
	i.autoMu.Lock()
	run := i.auto
	i.auto = nil
	i.autoMu.Unlock()

	if run == nil {
		return
	}

	run.cancel()
	run.wg.Wait()
	i.metrics.SetAutoSyncRunning(false)
	zap.L().Info("Google auto-sync stopped")
}

func (i *Integration) AutoSyncRunning() bool {
	i.autoMu.Lock()
	defer i.autoMu.Unlock()

	return i.auto != nil
}

func (i *Integration) every(ctx context.Context, wg *sync.WaitGroup, interval time.Duration, fn func(context.Context)) {
	defer wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (i *Integration) pullCalendar(ctx context.Context) {
	calendar := i.calendarClient()
	if calendar == nil {
		return
	}

	now := i.now()
	events, err := calendar.ListEvents(ctx, now.AddDate(0, 0, -1))
	i.metrics.RecordSyncRun("calendar", err == nil)
	if err != nil {
		zap.L().Error("Calendar auto-sync failed", zap.Error(err))
		return
	}

	i.mu.Lock()
	i.lastCalSync = &now
	i.mu.Unlock()

	zap.L().Info("Calendar auto-sync done", zap.Int("events", len(events)))
}

// Shutdown stops the auto-sync loops.
func (i *Integration) Shutdown() {
	i.StopAutoSync()
}
