package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"deckhand/internal/eventbus"
)

// SavedLabel replaces the save control's label after a successful export.
const SavedLabel = "Report saved!"

// SavedLabelDuration is how long SavedLabel stays up.
const SavedLabelDuration = 3 * time.Second

// Filename builds the report file name. Every character of the venture name
// outside [a-zA-Z0-9] becomes an underscore.
func Filename(venture string, at time.Time) string {
	date := at.Format("02-01-2006")
	if venture == "" {
		return fmt.Sprintf("Marketing_Clinic_%s.txt", date)
	}
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, venture)
	return fmt.Sprintf("Marketing_Clinic_%s_%s.txt", safe, date)
}

// Result describes a written report.
type Result struct {
	ID          string
	ReportPath  string
	AnswersPath string
	Pages       int
	Text        string
}

// Exporter writes clinic reports to a directory.
type Exporter struct {
	dir    string
	layout Layout
	bus    eventbus.EventBus
	now    func() time.Time
	newID  func() string
}

// NewExporter creates an exporter writing into dir. bus may be nil.
func NewExporter(dir string, bus eventbus.EventBus) *Exporter {
	return &Exporter{
		dir:    dir,
		layout: DefaultLayout(),
		bus:    bus,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Dir returns the export directory.
func (e *Exporter) Dir() string { return e.dir }

// Export renders the current answers and writes the text report plus a YAML
// copy of the answers.
func (e *Exporter) Export(src Source) (*Result, error) {
	answers := Collect(src)
	answers.ID = e.newID()
	answers.GeneratedAt = e.now()

	pages := e.layout.Paginate(answers.Document())
	text := pages.String()

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	name := Filename(answers.MarketingPlan.VentureName, answers.GeneratedAt)
	reportPath := filepath.Join(e.dir, name)
	if err := os.WriteFile(reportPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	data, err := yaml.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	answersPath := strings.TrimSuffix(reportPath, ".txt") + ".yaml"
	if err := os.WriteFile(answersPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write answers: %w", err)
	}

	log.Printf("Exported report %s to %s (%d pages)", answers.ID, reportPath, len(pages))
	if e.bus != nil {
		e.bus.Publish(eventbus.ReportExportedEvent{
			ReportID:    answers.ID,
			ReportPath:  reportPath,
			AnswersPath: answersPath,
			Pages:       len(pages),
		})
	}

	return &Result{
		ID:          answers.ID,
		ReportPath:  reportPath,
		AnswersPath: answersPath,
		Pages:       len(pages),
		Text:        text,
	}, nil
}

var (
	clipboardWriteAll = clipboard.WriteAll
	writeClipboard    = clipboardWriteAll
)

// CopyToClipboard places the report text on the system clipboard.
func CopyToClipboard(r *Result) error {
	if r == nil {
		return fmt.Errorf("no report to copy")
	}
	if err := writeClipboard(r.Text); err != nil {
		return fmt.Errorf("failed to copy report: %w", err)
	}
	return nil
}
