package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propnest-dev/realty_marketplace/backend/models"
	"github.com/propnest-dev/realty_marketplace/backend/wizard"
)

type fakeCreator struct {
	result wizard.CreationResult
	err    error
	calls  int
}

func (f *fakeCreator) CreateListing(ctx context.Context, payload wizard.ListingPayload, role string) (wizard.CreationResult, error) {
	f.calls++
	return f.result, f.err
}

// asUser injects the auth context the middleware would normally populate.
func asUser(userID, role string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, UserRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func wizardRouter(store *wizard.Store, creator wizard.ListingCreator, userID, role string) *mux.Router {
	router := mux.NewRouter()
	router.Use(asUser(userID, role))
	router.HandleFunc("/api/wizard", StartWizard(store)).Methods("POST")
	router.HandleFunc("/api/wizard/{sessionID}", GetWizard(store)).Methods("GET")
	router.HandleFunc("/api/wizard/{sessionID}", CancelWizard(store)).Methods("DELETE")
	router.HandleFunc("/api/wizard/{sessionID}/draft", UpdateWizardDraft(store)).Methods("PUT")
	router.HandleFunc("/api/wizard/{sessionID}/photos", AddWizardPhotos(store)).Methods("POST")
	router.HandleFunc("/api/wizard/{sessionID}/next", WizardNext(store, creator)).Methods("POST")
	router.HandleFunc("/api/wizard/{sessionID}/previous", WizardPrevious(store)).Methods("POST")
	return router
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func startSession(t *testing.T, router *mux.Router) string {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/api/wizard", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	sessionID, _ := data["sessionId"].(string)
	require.NotEmpty(t, sessionID)
	return sessionID
}

func validDraftBody() map[string]interface{} {
	return map[string]interface{}{
		"title":        "2BHK in HSR Layout with covered parking",
		"status":       "sale",
		"propertyType": "apartment",
		"location":     "HSR Layout, Bengaluru",
		"state":        "Karnataka",
		"bedrooms":     2,
		"bathrooms":    2,
		"builtUpArea":  "1250",
		"facing":       "East",
		"description":  strings.Repeat("Spacious and well ventilated flat close to parks and schools. ", 3),
		"price":        "75,00,000",
	}
}

func TestWizardRequiresListerRole(t *testing.T) {
	store := wizard.NewStore(time.Minute)
	defer store.Close()
	router := wizardRouter(store, &fakeCreator{}, "buyer-1", models.RoleBuyer)

	w := performRequest(router, http.MethodPost, "/api/wizard", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWizardFullFlow(t *testing.T) {
	store := wizard.NewStore(time.Minute)
	defer store.Close()
	creator := &fakeCreator{result: wizard.CreationResult{Success: true, ListingID: "42"}}
	router := wizardRouter(store, creator, "seller-1", models.RoleSeller)

	sessionID := startSession(t, router)

	w := performRequest(router, http.MethodPut, "/api/wizard/"+sessionID+"/draft", validDraftBody())
	require.Equal(t, http.StatusOK, w.Code)

	nextURL := "/api/wizard/" + sessionID + "/next"
	for i := 0; i < 4; i++ {
		w = performRequest(router, http.MethodPost, nextURL, nil)
		require.Equal(t, http.StatusOK, w.Code, "advancing from step %d", i+1)
	}

	w = performRequest(router, http.MethodPost, nextURL, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, creator.calls)

	// The session is gone once the listing exists.
	w = performRequest(router, http.MethodGet, "/api/wizard/"+sessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizardValidationFailureReportsFirstRule(t *testing.T) {
	store := wizard.NewStore(time.Minute)
	defer store.Close()
	router := wizardRouter(store, &fakeCreator{}, "seller-1", models.RoleSeller)

	sessionID := startSession(t, router)

	w := performRequest(router, http.MethodPost, "/api/wizard/"+sessionID+"/next", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Title is required", resp.Message)
}

func TestWizardSubmissionFailureSurfacesMessage(t *testing.T) {
	store := wizard.NewStore(time.Minute)
	defer store.Close()
	creator := &fakeCreator{result: wizard.CreationResult{Success: false, Message: "Duplicate listing"}}
	router := wizardRouter(store, creator, "seller-1", models.RoleSeller)

	sessionID := startSession(t, router)
	performRequest(router, http.MethodPut, "/api/wizard/"+sessionID+"/draft", validDraftBody())

	nextURL := "/api/wizard/" + sessionID + "/next"
	for i := 0; i < 4; i++ {
		performRequest(router, http.MethodPost, nextURL, nil)
	}

	w := performRequest(router, http.MethodPost, nextURL, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Duplicate listing", resp.Message)

	// The draft survives; the user can retry without re-entering data.
	w = performRequest(router, http.MethodGet, "/api/wizard/"+sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(5), data["step"])
}

func TestWizardPhotoCapWarning(t *testing.T) {
	store := wizard.NewStore(time.Minute)
	defer store.Close()
	router := wizardRouter(store, &fakeCreator{}, "seller-1", models.RoleSeller)

	sessionID := startSession(t, router)

	photos := make([]map[string]string, 11)
	for i := range photos {
		photos[i] = map[string]string{
			"uri":    fmt.Sprintf("file:///photo-%d.jpg", i),
			"base64": "aGVsbG8=",
		}
	}

	w := performRequest(router, http.MethodPost, "/api/wizard/"+sessionID+"/photos", map[string]interface{}{"photos": photos})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, wizard.CapacityWarning, resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(10), data["added"])
	assert.Equal(t, float64(10), data["photoCount"])
}

func TestWizardOwnershipEnforced(t *testing.T) {
	store := wizard.NewStore(time.Minute)
	defer store.Close()

	ownerRouter := wizardRouter(store, &fakeCreator{}, "seller-1", models.RoleSeller)
	sessionID := startSession(t, ownerRouter)

	intruderRouter := wizardRouter(store, &fakeCreator{}, "seller-2", models.RoleSeller)
	w := performRequest(intruderRouter, http.MethodGet, "/api/wizard/"+sessionID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWizardCancelDiscardsSession(t *testing.T) {
	store := wizard.NewStore(time.Minute)
	defer store.Close()
	router := wizardRouter(store, &fakeCreator{}, "seller-1", models.RoleSeller)

	sessionID := startSession(t, router)

	w := performRequest(router, http.MethodDelete, "/api/wizard/"+sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/wizard/"+sessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
