// internal/ledger/store.go
package ledger

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/NakedFlower/Commute/internal/models"
)

const (
	SheetName = "Attendance"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	// ErrUnsupportedKind signals an event kind outside the known set. The
	// boundary validates kinds before calling Record, so hitting this means a
	// programming error.
	ErrUnsupportedKind = errors.New("unsupported event kind")

	// ErrStorage wraps any failure of the underlying ledger file.
	ErrStorage = errors.New("ledger storage failure")
)

// NameResolver turns a Slack user ID into a display name.
type NameResolver interface {
	DisplayName(userID string) (string, error)
}

// Store owns the attendance ledger file. All access to the file goes through
// a single mutex: one upsert (or the one-time bootstrap) is in flight at any
// instant, so concurrent requests can never observe a partial write.
type Store struct {
	path     string
	resolver NameResolver

	mu  sync.Mutex
	loc *time.Location
	now func() time.Time
}

func NewStore(path string, resolver NameResolver) *Store {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	return &Store{
		path:     path,
		resolver: resolver,
		loc:      loc,
		now:      time.Now,
	}
}

// Path returns the location of the ledger file, for logging and audit.
func (s *Store) Path() string {
	return s.path
}

// Init creates the ledger file with its header row if it does not exist yet.
// Safe to call from concurrent first requests: the check and the create run
// under the same mutex as ordinary upserts.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	header := []interface{}{"Date", "Slack User ID", "Name", "Clock-in", "Field Work", "Clock-out"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// Cosmetic only: the file doubles as a human-readable report.
	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err == nil {
		_ = f.SetCellStyle(SheetName, "A1", "F1", style)
	}
	_ = f.SetColWidth(SheetName, "A", "A", 12)
	_ = f.SetColWidth(SheetName, "B", "C", 15)
	_ = f.SetColWidth(SheetName, "D", "F", 12)

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	log.Printf("ledger file created: %s", s.path)
	return nil
}

// Record upserts the current time-of-day into kind's column for (today,
// userID) and returns the recorded time string. At most one row ever exists
// per (date, user); repeat events of the same kind the same day overwrite.
func (s *Store) Record(userID string, kind models.EventKind) (string, error) {
	col := kind.Column()
	if col == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	now := s.now().In(s.loc)
	dateStr := now.Format(dateLayout)
	timeStr := now.Format(timeLayout)

	name, err := s.resolver.DisplayName(userID)
	if err != nil || name == "" {
		name = userID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// Linear scan below the header; the file stays small (one row per user
	// per day), first match wins.
	target := 0
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) >= 2 && row[0] == dateStr && row[1] == userID {
			target = i + 1
			break
		}
	}

	if target == 0 {
		target = len(rows) + 1
		seed := []interface{}{dateStr, userID, name}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", target), &seed); err != nil {
			return "", fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}

	cell := fmt.Sprintf("%s%d", col, target)
	if err := f.SetCellValue(SheetName, cell, timeStr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err == nil {
		_ = f.SetCellStyle(SheetName, fmt.Sprintf("A%d", target), fmt.Sprintf("F%d", target), style)
	}

	if err := f.Save(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return timeStr, nil
}
