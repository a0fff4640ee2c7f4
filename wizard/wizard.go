package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/propnest-dev/realty_marketplace/backend/taxonomy"
)

type SessionState string

const (
	StateActive    SessionState = "active"
	StateSubmitted SessionState = "submitted"
	StateCancelled SessionState = "cancelled"
)

var (
	// ErrSubmissionInFlight guards against a double-tap on submit; only one
	// creation call may be outstanding per session.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrSessionClosed is returned for any mutation of a submitted or
	// cancelled session.
	ErrSessionClosed = errors.New("wizard session is no longer active")

	ErrAlreadyAtFirstStep = errors.New("already at the first step")
)

// SubmissionError wraps a failed creation call. The draft is preserved and
// the wizard stays on the pricing step so the user can retry.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

const genericSubmissionFailure = "Could not publish the listing. Please try again."

// CreationResult is the fixed result shape the listing creator returns; any
// non-success result or transport error counts uniformly as a failure.
type CreationResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ListingID string `json:"listingId,omitempty"`
}

// ListingCreator is the external collaborator that persists a finished
// listing. The wizard never retries on its own.
type ListingCreator interface {
	CreateListing(ctx context.Context, payload ListingPayload, role string) (CreationResult, error)
}

// Session owns one draft for the duration of one listing-creation flow. All
// methods are safe for concurrent use, though in practice a session serves a
// single user.
type Session struct {
	ID     string
	UserID string
	Role   string

	mu         sync.Mutex
	step       Step
	state      SessionState
	draft      Draft
	submitting bool
	touched    time.Time
}

func NewSession(userID, role string) *Session {
	return &Session{
		ID:      uuid.NewString(),
		UserID:  userID,
		Role:    role,
		step:    StepBasicInfo,
		state:   StateActive,
		touched: time.Now(),
	}
}

// Snapshot is a read-only view of the session for the API layer, bundling
// the taxonomy policy for the draft's current type so clients never compute
// visibility themselves.
type Snapshot struct {
	ID         string                       `json:"sessionId"`
	Step       Step                         `json:"step"`
	StepName   string                       `json:"stepName"`
	State      SessionState                 `json:"state"`
	Draft      Draft                        `json:"draft"`
	Rule       taxonomy.FieldVisibilityRule `json:"rule"`
	Amenities  []taxonomy.AmenityID         `json:"applicableAmenities"`
	PhotoCount int                          `json:"photoCount"`
	Submitting bool                         `json:"submitting"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:         s.ID,
		Step:       s.step,
		StepName:   s.step.String(),
		State:      s.state,
		Draft:      s.draft,
		Rule:       taxonomy.VisibilityRuleFor(s.draft.PropertyType),
		Amenities:  taxonomy.ApplicableAmenitiesFor(s.draft.PropertyType),
		PhotoCount: len(s.draft.Photos),
		Submitting: s.submitting,
	}
}

// Update applies a partial draft mutation. Back-and-forth edits on earlier
// steps are allowed; nothing is validated until Next.
func (s *Session) Update(u DraftUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrSessionClosed
	}
	s.draft.apply(u)
	s.touched = time.Now()
	return nil
}

// AddPhotos appends photo attachments up to the cap; overflow is truncated
// and reported through the warning, never as an error.
func (s *Session) AddPhotos(in []PhotoInput) (added int, warning string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return 0, "", ErrSessionClosed
	}
	added, warning = s.draft.addPhotos(in)
	s.touched = time.Now()
	return added, warning, nil
}

// RemovePhoto drops the attachment at the given position.
func (s *Session) RemovePhoto(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrSessionClosed
	}
	if !s.draft.removePhoto(i) {
		return errors.New("no photo at that position")
	}
	s.touched = time.Now()
	return nil
}

// StepResult reports the outcome of a successful Next call.
type StepResult struct {
	Step      Step   `json:"step"`
	Submitted bool   `json:"submitted"`
	ListingID string `json:"listingId,omitempty"`
}

// Next validates the current step and either advances or, on the final step,
// assembles the payload and hands it to the creator. Validation failures and
// submission failures leave the step and the draft untouched.
func (s *Session) Next(ctx context.Context, creator ListingCreator) (*StepResult, error) {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if verr := Validate(s.step, &s.draft); verr != nil {
		s.mu.Unlock()
		return nil, verr
	}
	s.touched = time.Now()

	if s.step < FinalStep {
		s.step++
		result := &StepResult{Step: s.step}
		s.mu.Unlock()
		return result, nil
	}

	payload := assemblePayload(&s.draft, s.UserID)
	role := s.Role
	s.submitting = true
	s.mu.Unlock()

	// The creation call runs outside the lock so a Snapshot during a slow
	// submit does not block; the submitting flag keeps it single-flight.
	res, err := creator.CreateListing(ctx, payload, role)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.touched = time.Now()

	if err != nil {
		return nil, &SubmissionError{Message: genericSubmissionFailure}
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = genericSubmissionFailure
		}
		return nil, &SubmissionError{Message: msg}
	}

	s.state = StateSubmitted
	s.draft = Draft{}
	return &StepResult{Step: s.step, Submitted: true, ListingID: res.ListingID}, nil
}

// Previous moves back one step. Back-navigation is unconditional and never
// re-validates.
func (s *Session) Previous() (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return s.step, ErrSessionClosed
	}
	if s.step <= StepBasicInfo {
		return s.step, ErrAlreadyAtFirstStep
	}
	s.step--
	s.touched = time.Now()
	return s.step, nil
}

// Cancel abandons the draft. Confirmation is the caller's concern; once
// called the draft is gone.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrSessionClosed
	}
	s.state = StateCancelled
	s.draft = Draft{}
	s.touched = time.Now()
	return nil
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touched)
}

func (s *Session) finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateActive
}
