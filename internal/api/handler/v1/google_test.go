package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/api/handler/v1/response"
	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/google"
)

type fakeIntegration struct {
	GoogleIntegration

	initialized bool
	calendar    bool
	eventID     string
	mailOK      bool
	contactID   string
	exchangeErr error
	reloads     int
	autoSync    bool
	lastMail    google.InterventionMail
	lastContact google.Contact
}

func (f *fakeIntegration) Initialize(context.Context) bool { return f.initialized }

func (f *fakeIntegration) Reload(context.Context) bool {
	f.reloads++
	return f.initialized
}

func (f *fakeIntegration) CalendarAvailable() bool { return f.calendar }

func (f *fakeIntegration) Status() domain.GoogleStatus {
	return domain.GoogleStatus{Initialized: f.initialized, CalendarAvailable: f.calendar, AutoSyncRunning: f.autoSync}
}

func (f *fakeIntegration) SyncPlanification(context.Context, domain.Planification) (string, bool) {
	return f.eventID, f.eventID != ""
}

func (f *fakeIntegration) SendInterventionNotification(_ context.Context, m google.InterventionMail) bool {
	f.lastMail = m
	return f.mailOK
}

func (f *fakeIntegration) AddContact(_ context.Context, c google.Contact) string {
	f.lastContact = c
	return f.contactID
}

func (f *fakeIntegration) SyncContacts(context.Context) []google.Contact { return nil }

func (f *fakeIntegration) TestConnection(context.Context) map[string]bool {
	return map[string]bool{"calendar": f.calendar, "gmail": false, "contacts": false}
}

func (f *fakeIntegration) ExchangeCode(context.Context, string, string) error { return f.exchangeErr }

func (f *fakeIntegration) StartAutoSync() bool {
	f.autoSync = f.initialized
	return f.initialized
}

func (f *fakeIntegration) StopAutoSync() { f.autoSync = false }

func googleRouter(integration GoogleIntegration) *gin.Engine {
	h := NewGoogleHandler(integration)
	r := gin.New()
	r.GET("/google/status", h.HandleStatus)
	r.POST("/google/initialize", h.HandleInitialize)
	r.GET("/google/test-connection", h.HandleTestConnection)
	r.POST("/google/calendar/sync-planification", h.HandleSyncPlanification)
	r.POST("/google/gmail/send-intervention-notification", h.HandleSendInterventionNotification)
	r.POST("/google/contacts/sync", h.HandleSyncContacts)
	r.POST("/google/contacts/add-client", h.HandleAddClient)
	r.POST("/google/sync/start-auto", h.HandleStartAutoSync)
	r.POST("/google/sync/stop-auto", h.HandleStopAutoSync)
	r.GET("/google/oauth/callback", h.HandleOAuthCallback)

	return r
}

const planificationBody = `{"technicien_id":2,"client_nom":"Théâtre des Célestins","date_prevue":"2024-05-02","heure_prevue":"09:30"}`

func TestGoogleHandler_Initialize(t *testing.T) {
	f := &fakeIntegration{initialized: true}
	r := googleRouter(f)

	w := perform(r, http.MethodPost, "/google/initialize", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[response.Status](t, w)
	assert.True(t, got.Success)
	assert.True(t, got.Initialized)
}

func TestGoogleHandler_SyncPlanification(t *testing.T) {
	f := &fakeIntegration{}
	r := googleRouter(f)

	w := perform(r, http.MethodPost, "/google/calendar/sync-planification", planificationBody)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Google Calendar non disponible", decode[response.Err](t, w).Message)

	f.calendar = true
	w = perform(r, http.MethodPost, "/google/calendar/sync-planification", planificationBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[response.SyncPlanification](t, w).Success)

	f.eventID = "evt_42"
	w = perform(r, http.MethodPost, "/google/calendar/sync-planification", planificationBody)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[response.SyncPlanification](t, w)
	assert.True(t, got.Success)
	assert.Equal(t, "evt_42", got.EventID)

	w = perform(r, http.MethodPost, "/google/calendar/sync-planification", `{"client_nom":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoogleHandler_SendInterventionNotification(t *testing.T) {
	f := &fakeIntegration{mailOK: true}
	r := googleRouter(f)

	body := `{"client_email":"regie@celestins.fr","client_nom":"Célestins","technicien_nom":"Karim","date_intervention":"2024-05-02"}`
	w := perform(r, http.MethodPost, "/google/gmail/send-intervention-notification", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[response.Mutation](t, w).Success)
	assert.Equal(t, "Karim", f.lastMail.TechnicienNom)

	f.mailOK = false
	w = perform(r, http.MethodPost, "/google/gmail/send-intervention-notification", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[response.Mutation](t, w).Success)

	w = perform(r, http.MethodPost, "/google/gmail/send-intervention-notification", `{"client_email":"pas-un-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoogleHandler_Contacts(t *testing.T) {
	f := &fakeIntegration{contactID: "people/c123"}
	r := googleRouter(f)

	w := perform(r, http.MethodPost, "/google/contacts/add-client", `{"nom":" Régie Nord ","email":"contact@regienord.fr"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "people/c123", decode[response.ContactAdded](t, w).ContactID)
	assert.Equal(t, "Régie Nord", f.lastContact.Nom)
	assert.Equal(t, []string{"contact@regienord.fr"}, f.lastContact.Emails)

	w = perform(r, http.MethodPost, "/google/contacts/sync", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[response.Contacts](t, w)
	assert.Equal(t, 0, got.Count)
	assert.NotNil(t, got.Contacts)
}

func TestGoogleHandler_AutoSync(t *testing.T) {
	f := &fakeIntegration{}
	r := googleRouter(f)

	w := perform(r, http.MethodPost, "/google/sync/start-auto", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errNotInitialized, decode[response.Err](t, w).Message)

	f.initialized = true
	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/google/sync/start-auto", nil).Code)
	assert.True(t, f.autoSync)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/google/sync/stop-auto", nil).Code)
	assert.False(t, f.autoSync)
}

func TestGoogleHandler_TestConnection(t *testing.T) {
	f := &fakeIntegration{}
	r := googleRouter(f)

	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/google/test-connection", nil).Code)

	f.initialized, f.calendar = true, true
	w := perform(r, http.MethodGet, "/google/test-connection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[response.Connection](t, w).Tests["calendar"])
}

func TestGoogleHandler_OAuthCallback(t *testing.T) {
	f := &fakeIntegration{initialized: true}
	r := googleRouter(f)

	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/google/oauth/callback", nil).Code)

	f.exchangeErr = google.ErrInvalidState
	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/google/oauth/callback?code=abc&state=forged", nil).Code)
	assert.Zero(t, f.reloads)

	f.exchangeErr = nil
	w := perform(r, http.MethodGet, "/google/oauth/callback?code=abc&state=ok", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, f.reloads)
}
