package repositories

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/platform/obs"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQL-backed implementation of the MilestoneRepository and SectionRepository ports.
// Works against sqlite and postgres; only placeholders differ.
type SQLMilestoneRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLMilestoneRepository(db *sql.DB, dialect Dialect) *SQLMilestoneRepository {
	return &SQLMilestoneRepository{DB: db, Dialect: dialect}
}

const milestoneColumns = `
	id, title, company, location, lat, lng, start_date, end_date,
	description, type, technologies, url, color
`

// Return all milestones in display order.
func (s *SQLMilestoneRepository) ListMilestones(ctx context.Context) (_ []*domain.Milestone, err error) {
	defer obs.Time(ctx, "milestones.List")(&err)

	if s.DB == nil {
		return nil, errors.New("milestone repository: DB is nil")
	}

	query := `SELECT ` + milestoneColumns + ` FROM milestones ORDER BY position;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list milestones: query milestones table: %w", err)
	}
	defer rows.Close()

	milestones := make([]*domain.Milestone, 0, 16)
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("list milestones: %w", err)
		}
		milestones = append(milestones, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list milestones: row iteration: %w", err)
	}

	return milestones, nil
}

func (s *SQLMilestoneRepository) GetMilestone(ctx context.Context, id string) (_ *domain.Milestone, err error) {
	defer obs.Time(ctx, "milestones.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("milestone repository: DB is nil")
	}

	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = ` + s.Dialect.Placeholder(1) + `;`
	m, err := scanMilestone(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get milestone %q: %w", id, domain.ErrMilestoneNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get milestone %q: %w", id, err)
	}

	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMilestone(r rowScanner) (*domain.Milestone, error) {
	var (
		m       domain.Milestone
		typ     string
		techs   string
		endDate sql.NullString
	)

	if err := r.Scan(
		&m.ID, &m.Title, &m.Company, &m.Location, &m.Coordinates.Lat, &m.Coordinates.Lng,
		&m.StartDate, &endDate, &m.Description, &typ, &techs, &m.URL, &m.Color,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan row: %w", err)
	}

	m.Type = domain.MilestoneType(typ)
	if endDate.Valid {
		end := endDate.String
		m.EndDate = &end
	}
	if err := json.Unmarshal([]byte(techs), &m.Technologies); err != nil {
		return nil, fmt.Errorf("decode technologies for %q: %w", m.ID, err)
	}

	return &m, nil
}

// Return all story sections in story order.
func (s *SQLMilestoneRepository) ListSections(ctx context.Context) (_ []domain.StorySection, err error) {
	defer obs.Time(ctx, "sections.List")(&err)

	if s.DB == nil {
		return nil, errors.New("section repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+sectionColumns+` FROM story_sections ORDER BY position;`)
	if err != nil {
		return nil, fmt.Errorf("list sections: query story_sections table: %w", err)
	}
	defer rows.Close()

	sections := make([]domain.StorySection, 0, 8)
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("list sections: %w", err)
		}
		sections = append(sections, sec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sections: row iteration: %w", err)
	}

	return sections, nil
}

func (s *SQLMilestoneRepository) GetSection(ctx context.Context, id string) (_ domain.StorySection, err error) {
	defer obs.Time(ctx, "sections.Get")(&err)

	if s.DB == nil {
		return domain.StorySection{}, errors.New("section repository: DB is nil")
	}

	query := `SELECT ` + sectionColumns + ` FROM story_sections WHERE id = ` + s.Dialect.Placeholder(1) + `;`
	sec, err := scanSection(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StorySection{}, fmt.Errorf("get section %q: %w", id, domain.ErrSectionNotFound)
	}
	if err != nil {
		return domain.StorySection{}, fmt.Errorf("get section %q: %w", id, err)
	}

	return sec, nil
}

const sectionColumns = `id, title, subtitle, milestone_ids`

func scanSection(r rowScanner) (domain.StorySection, error) {
	var (
		sec domain.StorySection
		ids string
	)

	if err := r.Scan(&sec.ID, &sec.Title, &sec.Subtitle, &ids); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StorySection{}, err
		}
		return domain.StorySection{}, fmt.Errorf("scan row: %w", err)
	}

	if err := json.Unmarshal([]byte(ids), &sec.MilestoneIDs); err != nil {
		return domain.StorySection{}, fmt.Errorf("decode milestone ids for %q: %w", sec.ID, err)
	}

	return sec, nil
}
