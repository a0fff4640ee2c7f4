package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/propnest-dev/realty_marketplace/backend/models"
	"github.com/propnest-dev/realty_marketplace/backend/wizard"
)

func writeJSON(w http.ResponseWriter, status int, body models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// sessionForRequest loads the session for the {sessionID} path variable and
// enforces that the caller owns it.
func sessionForRequest(store *wizard.Store, w http.ResponseWriter, r *http.Request) *wizard.Session {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		log.Println("User ID missing in context")
		http.Error(w, "User ID missing in context", http.StatusUnauthorized)
		return nil
	}

	sessionID := mux.Vars(r)["sessionID"]
	session, ok := store.Get(sessionID)
	if !ok {
		log.Printf("Wizard session not found: %s", sessionID)
		writeJSON(w, http.StatusNotFound, models.APIResponse{Success: false, Message: "Wizard session not found"})
		return nil
	}
	if session.UserID != userID {
		log.Printf("User %s attempted to access session %s owned by %s", userID, sessionID, session.UserID)
		writeJSON(w, http.StatusForbidden, models.APIResponse{Success: false, Message: "Not your wizard session"})
		return nil
	}
	return session
}

// StartWizard opens a fresh listing session for a seller, agent or builder.
func StartWizard(store *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}
		role, _ := r.Context().Value(UserRoleKey).(string)
		if !models.ListerRole(role) {
			log.Printf("User %s with role %q attempted to start a listing wizard", userID, role)
			writeJSON(w, http.StatusForbidden, models.APIResponse{Success: false, Message: "Only sellers, agents and builders can create listings"})
			return
		}

		session := wizard.NewSession(userID, role)
		store.Add(session)

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "Wizard session started",
			Data:    session.Snapshot(),
		})
	}
}

func GetWizard(store *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionForRequest(store, w, r)
		if session == nil {
			return
		}
		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: session.Snapshot()})
	}
}

// UpdateWizardDraft applies a partial draft mutation; nothing is validated
// until the step is left.
func UpdateWizardDraft(store *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionForRequest(store, w, r)
		if session == nil {
			return
		}

		var update wizard.DraftUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			log.Printf("Invalid draft update: %v", err)
			writeJSON(w, http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid draft update"})
			return
		}

		if err := session.Update(update); err != nil {
			writeJSON(w, http.StatusConflict, models.APIResponse{Success: false, Message: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: session.Snapshot()})
	}
}

type addPhotosRequest struct {
	Photos []wizard.PhotoInput `json:"photos"`
}

type addPhotosResult struct {
	Added      int    `json:"added"`
	PhotoCount int    `json:"photoCount"`
	Warning    string `json:"warning,omitempty"`
}

// AddWizardPhotos appends attachments; overflow past the cap is truncated
// and reported as a warning, not an error.
func AddWizardPhotos(store *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionForRequest(store, w, r)
		if session == nil {
			return
		}

		var req addPhotosRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid photo payload: %v", err)
			writeJSON(w, http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid photo payload"})
			return
		}

		added, warning, err := session.AddPhotos(req.Photos)
		if err != nil {
			writeJSON(w, http.StatusConflict, models.APIResponse{Success: false, Message: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: warning,
			Data: addPhotosResult{
				Added:      added,
				PhotoCount: session.Snapshot().PhotoCount,
				Warning:    warning,
			},
		})
	}
}

// RemoveWizardPhoto drops the attachment at the {index} path position.
func RemoveWizardPhoto(store *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionForRequest(store, w, r)
		if session == nil {
			return
		}

		index, err := strconv.Atoi(mux.Vars(r)["index"])
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid photo index"})
			return
		}

		if err := session.RemovePhoto(index); err != nil {
			writeJSON(w, http.StatusNotFound, models.APIResponse{Success: false, Message: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: session.Snapshot()})
	}
}

// WizardNext validates the current step and advances; on the final step it
// submits through the listing creator.
func WizardNext(store *wizard.Store, creator wizard.ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionForRequest(store, w, r)
		if session == nil {
			return
		}

		result, err := session.Next(r.Context(), creator)
		if err != nil {
			var verr *wizard.ValidationError
			var serr *wizard.SubmissionError
			switch {
			case errors.As(err, &verr):
				writeJSON(w, http.StatusUnprocessableEntity, models.APIResponse{
					Success: false,
					Message: verr.Message,
					Data:    verr,
				})
			case errors.As(err, &serr):
				log.Printf("Submission failed for session %s: %s", session.ID, serr.Message)
				writeJSON(w, http.StatusBadGateway, models.APIResponse{Success: false, Message: serr.Message})
			case errors.Is(err, wizard.ErrSubmissionInFlight):
				writeJSON(w, http.StatusConflict, models.APIResponse{Success: false, Message: err.Error()})
			default:
				writeJSON(w, http.StatusConflict, models.APIResponse{Success: false, Message: err.Error()})
			}
			return
		}

		if result.Submitted {
			store.Remove(session.ID)
			log.Printf("Listing %s created via wizard session %s", result.ListingID, session.ID)
			writeJSON(w, http.StatusCreated, models.APIResponse{
				Success: true,
				Message: "Listing created",
				Data:    result,
			})
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: session.Snapshot()})
	}
}

// WizardPrevious steps back unconditionally.
func WizardPrevious(store *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionForRequest(store, w, r)
		if session == nil {
			return
		}

		if _, err := session.Previous(); err != nil {
			writeJSON(w, http.StatusConflict, models.APIResponse{Success: false, Message: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: session.Snapshot()})
	}
}

// CancelWizard discards the draft. The confirmation dialog is the client's
// job; this endpoint is the point of no return.
func CancelWizard(store *wizard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionForRequest(store, w, r)
		if session == nil {
			return
		}

		if err := session.Cancel(); err != nil {
			writeJSON(w, http.StatusConflict, models.APIResponse{Success: false, Message: err.Error()})
			return
		}
		store.Remove(session.ID)

		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Message: "Listing draft discarded"})
	}
}
