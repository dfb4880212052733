package repositories

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Dialect selects SQL syntax differences between sqlite and postgres.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d Dialect) floatType() string {
	if d == Postgres {
		return "DOUBLE PRECISION"
	}
	return "REAL"
}

// Initialize the database schema.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createMilestonesQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS milestones (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL,
		lat %[1]s NOT NULL,
		lng %[1]s NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT,
		description TEXT NOT NULL,
		type TEXT NOT NULL,
		technologies TEXT NOT NULL,
		url TEXT NOT NULL,
		color TEXT NOT NULL
	);
	`, dialect.floatType())

	createSectionsQuery := `
	CREATE TABLE IF NOT EXISTS story_sections (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL,
		milestone_ids TEXT NOT NULL
	);
	`

	// Endpoint keys carry the milestone id and its coordinates, so a moved
	// milestone never matches an old row.
	createLegCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS leg_distances (
        from_key TEXT NOT NULL,
        to_key TEXT NOT NULL,
        distance_km %s NOT NULL,
        PRIMARY KEY (from_key, to_key)
    );
	`, dialect.floatType())

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_milestones_position
    ON milestones(position);
	`

	statements := []string{
		createMilestonesQuery,
		createSectionsQuery,
		createLegCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	// Databases created before the company column existed.
	if err := ensureColumn(tx, dialect, "milestones", "company", "TEXT NOT NULL DEFAULT ''"); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

func ensureColumn(tx *sql.Tx, dialect Dialect, table, column, def string) error {
	if dialect == Postgres {
		q := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s;`, table, column, def)
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("add column %s.%s: %w", table, column, err)
		}
		return nil
	}

	var n int
	if err := tx.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?;`, table, column,
	).Scan(&n); err != nil {
		return fmt.Errorf("inspect column %s.%s: %w", table, column, err)
	}
	if n > 0 {
		return nil
	}

	q := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s;`, table, column, def)
	if _, err := tx.Exec(q); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}

// Seed is the parsed content of a seed file.
type Seed struct {
	Milestones []*domain.Milestone
	Sections   []domain.StorySection
}

type seedFile struct {
	Milestones []MilestoneSeed `json:"milestones"`
	Sections   []SectionSeed   `json:"sections"`
}

type MilestoneSeed struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Location     string         `json:"location"`
	Coordinates  geo.Coordinate `json:"coordinates"`
	StartDate    string         `json:"startDate"`
	EndDate      *string        `json:"endDate"`
	Description  string         `json:"description"`
	Type         string         `json:"type"`
	Technologies []string       `json:"technologies"`
	URL          string         `json:"url"`
	Color        string         `json:"color"`
}

type SectionSeed struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	MilestoneIDs []string `json:"milestoneIds"`
}

// LoadSeedFile parses and validates a seed file.
func LoadSeedFile(jsonPath string) (*Seed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data seedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	seed := &Seed{
		Milestones: make([]*domain.Milestone, 0, len(data.Milestones)),
		Sections:   make([]domain.StorySection, 0, len(data.Sections)),
	}

	seen := make(map[string]struct{}, len(data.Milestones))
	for i, item := range data.Milestones {
		m := &domain.Milestone{
			ID:           strings.TrimSpace(item.ID),
			Title:        strings.TrimSpace(item.Title),
			Company:      item.Company,
			Location:     item.Location,
			Coordinates:  item.Coordinates,
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
			Description:  item.Description,
			Type:         domain.MilestoneType(item.Type),
			Technologies: item.Technologies,
			URL:          item.URL,
			Color:        item.Color,
		}
		if m.Technologies == nil {
			m.Technologies = []string{}
		}

		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("load seed: milestone at index %d: %w", i+1, err)
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("load seed: duplicate milestone id %q at index %d", m.ID, i+1)
		}
		seen[m.ID] = struct{}{}

		seed.Milestones = append(seed.Milestones, m)
	}

	seenSections := make(map[string]struct{}, len(data.Sections))
	for i, item := range data.Sections {
		s := domain.StorySection{
			ID:           strings.TrimSpace(item.ID),
			Title:        strings.TrimSpace(item.Title),
			Subtitle:     item.Subtitle,
			MilestoneIDs: item.MilestoneIDs,
		}
		if s.MilestoneIDs == nil {
			s.MilestoneIDs = []string{}
		}

		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("load seed: section at index %d: %w", i+1, err)
		}
		if _, dup := seenSections[s.ID]; dup {
			return nil, fmt.Errorf("load seed: duplicate section id %q at index %d", s.ID, i+1)
		}
		seenSections[s.ID] = struct{}{}

		seed.Sections = append(seed.Sections, s)
	}

	return seed, nil
}

// Populate the database from a JSON seed file. The seed is authoritative:
// rows whose id is no longer in the file are removed in the same transaction.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	seed, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedMilestones(ctx, tx, dialect, seed.Milestones); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := seedSections(ctx, tx, dialect, seed.Sections); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}

func seedMilestones(ctx context.Context, tx *sql.Tx, dialect Dialect, ms []*domain.Milestone) error {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	if err := deleteMissing(ctx, tx, dialect, "milestones", ids); err != nil {
		return fmt.Errorf("milestones: %w", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO milestones (
		id, position, title, company, location, lat, lng, start_date, end_date,
		description, type, technologies, url, color
	)
	VALUES (%s)
	ON CONFLICT (id) DO UPDATE SET
		position = EXCLUDED.position,
		title = EXCLUDED.title,
		company = EXCLUDED.company,
		location = EXCLUDED.location,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		start_date = EXCLUDED.start_date,
		end_date = EXCLUDED.end_date,
		description = EXCLUDED.description,
		type = EXCLUDED.type,
		technologies = EXCLUDED.technologies,
		url = EXCLUDED.url,
		color = EXCLUDED.color;
	`, placeholders(dialect, 1, 14))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("milestones: prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos, m := range ms {
		techs, err := json.Marshal(m.Technologies)
		if err != nil {
			return fmt.Errorf("milestones: encode technologies for %q: %w", m.ID, err)
		}

		if _, err := stmt.ExecContext(ctx,
			m.ID, pos, m.Title, m.Company, m.Location, m.Coordinates.Lat, m.Coordinates.Lng,
			m.StartDate, m.EndDate, m.Description, string(m.Type), string(techs), m.URL, m.Color,
		); err != nil {
			return fmt.Errorf("milestones: insert id=%q: %w", m.ID, err)
		}
	}

	return nil
}

func seedSections(ctx context.Context, tx *sql.Tx, dialect Dialect, sections []domain.StorySection) error {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	if err := deleteMissing(ctx, tx, dialect, "story_sections", ids); err != nil {
		return fmt.Errorf("sections: %w", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO story_sections (id, position, title, subtitle, milestone_ids)
	VALUES (%s)
	ON CONFLICT (id) DO UPDATE SET
		position = EXCLUDED.position,
		title = EXCLUDED.title,
		subtitle = EXCLUDED.subtitle,
		milestone_ids = EXCLUDED.milestone_ids;
	`, placeholders(dialect, 1, 5))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("sections: prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos, s := range sections {
		encoded, err := json.Marshal(s.MilestoneIDs)
		if err != nil {
			return fmt.Errorf("sections: encode milestone ids for %q: %w", s.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, s.ID, pos, s.Title, s.Subtitle, string(encoded)); err != nil {
			return fmt.Errorf("sections: insert id=%q: %w", s.ID, err)
		}
	}

	return nil
}

// deleteMissing removes rows of table whose id is not in keep.
func deleteMissing(ctx context.Context, tx *sql.Tx, dialect Dialect, table string, keep []string) error {
	if len(keep) == 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+`;`); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
		return nil
	}

	args := make([]any, len(keep))
	for i, id := range keep {
		args[i] = id
	}

	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`DELETE FROM %s WHERE id NOT IN (%s);`, table, placeholders(dialect, 1, len(keep)))
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("prune %s: %w", table, err)
	}
	return nil
}

// placeholders renders n bind parameters starting at first.
func placeholders(dialect Dialect, first, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = dialect.Placeholder(first + i)
	}
	return strings.Join(ph, ", ")
}
