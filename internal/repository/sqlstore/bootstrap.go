package sqlstore

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/logger"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// DefaultFixtures returns the seed data shipped with the binary.
func DefaultFixtures() fs.FS {
	sub, err := fs.Sub(embeddedFixtures, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

type column struct {
	name    string
	sqlType string
}

// Table describes one seeded table: its columns, the fixture file holding
// its rows and how to decode that file.
type Table struct {
	Name    string
	Fixture string
	columns []column
	decode  func([]byte) ([]interface{}, error)
}

func (t Table) createStatement() string {
	defs := lo.Map(t.columns, func(c column, _ int) string { return c.name + " " + c.sqlType })
	return fmt.Sprintf("CREATE TABLE %s (%s)", t.Name, strings.Join(defs, ", "))
}

func (t Table) insertStatement() string {
	names := lo.Map(t.columns, func(c column, _ int) string { return c.name })
	params := lo.Map(names, func(n string, _ int) string { return ":" + n })
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(names, ", "), strings.Join(params, ", "))
}

func decodeRows[T any](data []byte) ([]interface{}, error) {
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row T, _ int) interface{} { return row }), nil
}

func integer(name string) column { return column{name, "INTEGER"} }
func text(name string) column    { return column{name, "TEXT"} }
func double(name string) column  { return column{name, "DOUBLE PRECISION"} }

// Tables is the catalogue schema in seeding order.
var Tables = []Table{
	{
		Name:    "locations",
		Fixture: "locations.json",
		columns: []column{
			integer("id"), text("name"), text("address"), text("phone"), text("fax"),
			text("email"), text("description"), text("highway"), text("train"),
			text("airplane"), double("lat"), double("lng"), text("imgloc"),
		},
		decode: decodeRows[model.Location],
	},
	{
		Name:    "location_services",
		Fixture: "location-service.json",
		columns: []column{text("location"), text("service")},
		decode:  decodeRows[model.LocationService],
	},
	{
		Name:    "photo_gallery",
		Fixture: "photoGallery.json",
		columns: []column{integer("id"), text("img")},
		decode:  decodeRows[model.PhotoGalleryEntry],
	},
	{
		Name:    "services",
		Fixture: "services.json",
		columns: []column{
			integer("id"), text("searchname"), text("imgser"), text("name"),
			text("shortdescription"), text("description"), text("visittime"),
			text("mealtime"), text("preparation"), text("statistics"),
		},
		decode: decodeRows[model.Service],
	},
	{
		Name:    "doctor_services",
		Fixture: "doctorsServices.json",
		columns: []column{integer("id"), integer("doctorid"), integer("serviceid")},
		decode:  decodeRows[model.DoctorServiceLink],
	},
	{
		Name:    "doctors",
		Fixture: "doctors.json",
		columns: []column{
			integer("singledoctorid"), text("name"), text("surname"), text("img"),
			text("birthdate"), integer("arearespid"), integer("servrespid"),
			integer("locationid"), text("description"), text("curriculum"),
		},
		decode: decodeRows[model.Doctor],
	},
	{
		Name:    "areas",
		Fixture: "areas.json",
		columns: []column{integer("id"), text("name")},
		decode:  decodeRows[model.Area],
	},
}

// Report tells which tables a bootstrap run created and which it left alone.
type Report struct {
	Created  map[string]int
	Existing []string
}

// Bootstrapper creates and seeds every missing catalogue table. Tables that
// already exist are never touched, so running it twice is a no-op.
type Bootstrapper struct {
	db       *sqlx.DB
	fixtures fs.FS
	logger   *logger.Logger
	tables   []Table
}

// NewBootstrapper uses DefaultFixtures when fixtures is nil.
func NewBootstrapper(db *sqlx.DB, fixtures fs.FS, log *logger.Logger) *Bootstrapper {
	if fixtures == nil {
		fixtures = DefaultFixtures()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Bootstrapper{db: db, fixtures: fixtures, logger: log, tables: Tables}
}

func (b *Bootstrapper) Run(ctx context.Context) (*Report, error) {
	report := &Report{Created: make(map[string]int)}

	for _, table := range b.tables {
		exists, err := b.tableExists(ctx, table.Name)
		if err != nil {
			return report, fmt.Errorf("failed to check table %s: %w", table.Name, err)
		}
		if exists {
			report.Existing = append(report.Existing, table.Name)
			continue
		}

		count, err := b.seed(ctx, table)
		if err != nil {
			return report, err
		}
		report.Created[table.Name] = count
		b.logger.Info("table created", "table", table.Name, "rows", count)
	}

	return report, nil
}

func (b *Bootstrapper) seed(ctx context.Context, table Table) (int, error) {
	data, err := fs.ReadFile(b.fixtures, table.Fixture)
	if err != nil {
		return 0, fmt.Errorf("failed to read fixture %s: %w", table.Fixture, err)
	}
	rows, err := table.decode(data)
	if err != nil {
		return 0, fmt.Errorf("failed to decode fixture %s: %w", table.Fixture, err)
	}

	if _, err := b.db.ExecContext(ctx, table.createStatement()); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", table.Name, err)
	}

	insert := table.insertStatement()
	for i, row := range rows {
		if _, err := b.db.NamedExecContext(ctx, insert, row); err != nil {
			return i, fmt.Errorf("failed to insert row %d into %s: %w", i, table.Name, err)
		}
	}
	return len(rows), nil
}

func (b *Bootstrapper) tableExists(ctx context.Context, name string) (bool, error) {
	var query string
	switch b.db.DriverName() {
	case DriverSQLite:
		query = `SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)`
	default:
		query = `SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = ?
		)`
	}

	var exists bool
	if err := b.db.GetContext(ctx, &exists, b.db.Rebind(query), name); err != nil {
		return false, err
	}
	return exists, nil
}
