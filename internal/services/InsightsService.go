package services

import (
	"errors"
	"time"

	"github.com/spf13/cast"

	"nli/internal/metrics"
	"nli/internal/models"
	"nli/internal/providers"
)

// ErrChildNotFound is returned by LookupChild for unknown ids.
var ErrChildNotFound = errors.New("child not found")

type InsightsServiceInterface interface {
	ComputeSnapshot(w models.DateWindow) (*models.MetricsSnapshot, error)
	LookupChild(id string, w models.DateWindow) (*models.ActivityReport, error)
	ExportAccounts(w models.DateWindow) ([]models.AccountRow, error)
	ExportChildren(w models.DateWindow) ([]models.ChildRow, error)
	ExportEvents(w models.DateWindow) ([]models.EventRow, error)
	DatasetCounts() (accounts int, children int)
}

// InsightsService runs the aggregation engine over the loader's collections.
// Every call is a fresh computation; no state survives between calls.
type InsightsService struct {
	loader LoaderInterface
	logger providers.Logger
	clock  func() time.Time
}

func NewInsightsService(loader LoaderInterface, logger providers.Logger) InsightsServiceInterface {
	return &InsightsService{
		loader: loader,
		logger: logger,
		clock:  time.Now,
	}
}

func (s *InsightsService) ComputeSnapshot(w models.DateWindow) (*models.MetricsSnapshot, error) {
	accounts, err := s.loader.LoadAccounts()
	if err != nil {
		return nil, err
	}
	profiles, err := s.loader.LoadProfiles()
	if err != nil {
		return nil, err
	}
	installs, err := s.loader.LoadInstalls()
	if err != nil {
		// The install collection is optional; a failed load means zero
		// installs, not a failed snapshot.
		s.logger.Warnf(providers.TypeApp, "Install records unavailable: %s", err)
		installs = nil
	}

	filteredAccounts := metrics.FilterByWindow(accounts, w, accountCreatedAt)
	filteredProfiles := metrics.FilterByWindow(profiles, w, profileCreatedAt)

	snap := metrics.Aggregate(filteredAccounts, filteredProfiles, installs, w, s.clock())
	snap.Previous = metrics.ComputeTrend(accounts, profiles, w)
	return snap, nil
}

func (s *InsightsService) LookupChild(id string, w models.DateWindow) (*models.ActivityReport, error) {
	profiles, err := s.loader.LoadProfiles()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID == id {
			return metrics.BuildActivityReport(profiles[i], w, s.clock(), s.emailOf), nil
		}
	}
	return nil, ErrChildNotFound
}

// emailOf resolves one linked account id. A failed resolution is non-fatal;
// the id is simply skipped.
func (s *InsightsService) emailOf(id string) (string, bool) {
	account, err := s.loader.LoadAccountByID(id)
	if err != nil {
		return "", false
	}
	return account.Email, true
}

func (s *InsightsService) ExportAccounts(w models.DateWindow) ([]models.AccountRow, error) {
	accounts, err := s.loader.LoadAccounts()
	if err != nil {
		return nil, err
	}
	filtered := metrics.FilterByWindow(accounts, w, accountCreatedAt)
	rows := make([]models.AccountRow, 0, len(filtered))
	for _, a := range filtered {
		rows = append(rows, models.AccountRow{
			ID:        a.ID,
			Email:     a.Email,
			Name:      a.Name,
			CreatedAt: formatInstant(a.CreatedAt),
			Deleted:   a.Deleted,
			DeletedAt: formatInstant(a.DeletedAt),
		})
	}
	return rows, nil
}

func (s *InsightsService) ExportChildren(w models.DateWindow) ([]models.ChildRow, error) {
	accounts, err := s.loader.LoadAccounts()
	if err != nil {
		return nil, err
	}
	profiles, err := s.loader.LoadProfiles()
	if err != nil {
		return nil, err
	}

	emails := metrics.EmailIndex(accounts)
	now := s.clock()

	filtered := metrics.FilterByWindow(profiles, w, profileCreatedAt)
	rows := make([]models.ChildRow, 0, len(filtered))
	for _, p := range filtered {
		row := models.ChildRow{
			ID:           p.ID,
			Name:         p.Name,
			Sex:          p.Sex,
			BirthDate:    p.BirthDate,
			CreatedAt:    formatInstant(p.CreatedAt),
			EventCount:   len(p.Events),
			ParentEmails: resolveParentEmailsIndexed(p, emails),
		}
		if birth, ok := metrics.ParseBirthDate(p.BirthDate); ok {
			row.Age = metrics.AgeString(birth, now)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *InsightsService) ExportEvents(w models.DateWindow) ([]models.EventRow, error) {
	profiles, err := s.loader.LoadProfiles()
	if err != nil {
		return nil, err
	}
	var rows []models.EventRow
	for _, p := range profiles {
		events := metrics.FilterByWindow(p.Events, w, eventOccurredAt)
		for _, e := range events {
			rows = append(rows, models.EventRow{
				ChildID:    p.ID,
				ChildName:  p.Name,
				Type:       e.Type,
				OccurredAt: formatInstant(e.OccurredAt),
				Value:      stringValue(e.Value),
				Comment:    e.Comment,
			})
		}
	}
	return rows, nil
}

func (s *InsightsService) DatasetCounts() (int, int) {
	accounts, err := s.loader.LoadAccounts()
	if err != nil {
		return 0, 0
	}
	profiles, err := s.loader.LoadProfiles()
	if err != nil {
		return len(accounts), 0
	}
	return len(accounts), len(profiles)
}

func accountCreatedAt(a models.Account) any      { return a.CreatedAt }
func profileCreatedAt(p models.ChildProfile) any { return p.CreatedAt }
func eventOccurredAt(e models.ActivityEvent) any { return e.OccurredAt }

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

func formatInstant(v any) string {
	t, ok := metrics.NormalizeDate(v)
	if !ok {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func resolveParentEmailsIndexed(p models.ChildProfile, emails map[string]string) []string {
	out := make([]string, 0, len(p.ParentIDs))
	seen := make(map[string]struct{})
	for _, id := range p.ParentIDs {
		email, ok := emails[id]
		if !ok || email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	if p.OwnerEmail != "" {
		if _, dup := seen[p.OwnerEmail]; !dup {
			out = append(out, p.OwnerEmail)
		}
	}
	return out
}
