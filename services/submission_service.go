package services // Use-case layer; orchestrates the form engine and the store, not HTTP/DB details.

import (
	"fmt"
	"io"
	"sync"
	"time"

	"FormLab/core"
	"FormLab/models"
	"FormLab/repositories"
	"FormLab/utils"
	"FormLab/utils/redislog"

	"github.com/google/uuid"
)

// SubmissionService lists all use-cases that handlers can call.
type SubmissionService interface {
	// Forms:
	Submit(v models.Variant, raw core.RawInput) (*models.Submission, core.ValidationResult, error) // validate + save
	Check(raw core.RawInput) models.CheckResponse                                                  // live validation, never saves
	PasswordStrength(pw string) core.PasswordStrength                                              // advisory only
	Countries(query string) []string                                                               // autocomplete

	// Store:
	Latest(v models.Variant) (*models.Submission, error)
	Overview() (*models.Overview, error)
	ClearNewFlag(v models.Variant) error
	ExportXLSX(w io.Writer) error

	Close() // stops pending isNew timers
}

// DefaultNewFlagWindow is how long a fresh submission stays highlighted.
const DefaultNewFlagWindow = 3 * time.Second

// Options tunes the service; zero values pick the defaults.
type Options struct {
	NewFlagWindow time.Duration // <0 disables the automatic reset
	BcryptCost    int
	Countries     []string // autocomplete reference list
}

// submissionService depends on the store, the validator and the Redis logger.
type submissionService struct {
	repo      repositories.SubmissionRepository
	validator *core.Validator
	log       *redislog.Logger // may be nil
	opts      Options

	mu     sync.Mutex // serializes slot writes with their timers
	timers map[models.Variant]pendingClear
}

// pendingClear ties a timer to the submission it was started for.
type pendingClear struct {
	id    string
	timer *time.Timer
}

// NewSubmissionService constructs a service with all dependencies injected.
func NewSubmissionService(repo repositories.SubmissionRepository, v *core.Validator, rlog *redislog.Logger, opts Options) SubmissionService {
	if opts.NewFlagWindow == 0 {
		opts.NewFlagWindow = DefaultNewFlagWindow
	}
	return &submissionService{
		repo:      repo,
		validator: v,
		log:       rlog,
		opts:      opts,
		timers:    make(map[models.Variant]pendingClear),
	}
}

// ---------------- Forms ----------------

// Submit normalizes for the store flow, validates, and only when valid saves a copy.
// Validation failures are not errors: they come back in the result with a nil submission.
func (s *submissionService) Submit(v models.Variant, raw core.RawInput) (*models.Submission, core.ValidationResult, error) {
	rec := core.Normalize(raw, core.ImageModeDataURI)
	res := s.validator.Validate(rec)
	if !res.IsValid {
		s.log.Warn("submission rejected", map[string]string{"variant": string(v), "fields": fmt.Sprint(len(res.Errors))})
		return nil, res, nil
	}

	hash, err := utils.HashPassword(rec.Password, s.opts.BcryptCost)
	if err != nil {
		s.log.Error("submission hash error", map[string]string{"variant": string(v), "err": err.Error()})
		return nil, res, err
	}

	age, _ := rec.Age.Int() // validated above
	sub := &models.Submission{
		ID:            uuid.NewString(),
		Variant:       v,
		Name:          rec.Name,
		Age:           age,
		Email:         rec.Email,
		PasswordHash:  hash,
		Gender:        string(rec.Gender),
		TermsAccepted: rec.TermsAccepted,
		Country:       rec.Country,
		ImageBase64:   rec.Image.DataURI, // empty only when no image was sent and none is required
		IsNew:         rec.IsNew,
	}
	now := time.Now().UTC()
	sub.CreatedAt, sub.UpdatedAt = now, now

	// the last record saved must also own the last timer started
	s.mu.Lock()
	if err := s.repo.Save(sub); err != nil {
		s.mu.Unlock()
		s.log.Error("submission save error", map[string]string{"variant": string(v), "err": err.Error()})
		return nil, res, err
	}
	s.scheduleClearLocked(v, sub.ID)
	s.mu.Unlock()

	s.log.Info("submission saved", map[string]string{"variant": string(v), "id": sub.ID})
	return sub, res, nil
}

// Check is the preview flow: the blob stays canonical and nothing is stored.
func (s *submissionService) Check(raw core.RawInput) models.CheckResponse {
	rec := core.Normalize(raw, core.ImageModeBlob)
	res := s.validator.Validate(rec)
	return models.CheckResponse{
		Errors:           res.Errors,
		IsValid:          res.IsValid,
		PasswordStrength: core.CheckPasswordStrength(rec.Password),
	}
}

func (s *submissionService) PasswordStrength(pw string) core.PasswordStrength {
	return core.CheckPasswordStrength(pw)
}

func (s *submissionService) Countries(query string) []string {
	return core.FilterCountries(s.opts.Countries, query, core.DefaultSuggestionLimit)
}

// ---------------- Store ----------------

func (s *submissionService) Latest(v models.Variant) (*models.Submission, error) {
	return s.repo.Find(v)
}

// Overview fills one tile per variant; an empty slot stays nil.
func (s *submissionService) Overview() (*models.Overview, error) {
	out := &models.Overview{}
	for _, v := range models.Variants {
		sub, err := s.repo.Find(v)
		if repositories.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		switch v {
		case models.VariantUncontrolled:
			out.Uncontrolled = sub
		case models.VariantManaged:
			out.Managed = sub
		}
	}
	return out, nil
}

// ClearNewFlag resets isNew now instead of waiting for the timer.
func (s *submissionService) ClearNewFlag(v models.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.repo.Find(v)
	if err != nil {
		return err
	}
	if p, ok := s.timers[v]; ok {
		p.timer.Stop()
		delete(s.timers, v)
	}
	if err := s.repo.ClearNewFlag(v, cur.ID); err != nil {
		s.log.Error("clear new flag error", map[string]string{"variant": string(v), "err": err.Error()})
		return err
	}
	return nil
}

func (s *submissionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for v, p := range s.timers {
		p.timer.Stop()
		delete(s.timers, v)
	}
}

// scheduleClearLocked replaces the variant's pending timer; s.mu must be held.
// The store only clears the flag while the slot still holds submission id,
// so a late timer never touches a newer record.
func (s *submissionService) scheduleClearLocked(v models.Variant, id string) {
	if s.opts.NewFlagWindow < 0 {
		return
	}
	if p, ok := s.timers[v]; ok {
		p.timer.Stop()
	}
	s.timers[v] = pendingClear{id: id, timer: time.AfterFunc(s.opts.NewFlagWindow, func() {
		s.expire(v, id)
	})}
}

func (s *submissionService) expire(v models.Variant, id string) {
	if err := s.repo.ClearNewFlag(v, id); err != nil {
		s.log.Error("clear new flag error", map[string]string{"variant": string(v), "err": err.Error()})
	}
	s.mu.Lock()
	if p, ok := s.timers[v]; ok && p.id == id {
		delete(s.timers, v)
	}
	s.mu.Unlock()
}
