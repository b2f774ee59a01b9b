package datastore

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/gradient-catalog/api/colormatch"
)

type GradientRepository interface {
	Create(position int, gradient colormatch.Gradient) (int, error)
	GetAll() ([]colormatch.Gradient, error)
	GetByName(name string) (colormatch.Gradient, error)
	Count() (int, error)
}

type GradientDatabase struct {
	database *sql.DB
}

func NewGradientDatabase(db *sql.DB) (GradientDatabase, error) {
	var gradientDB GradientDatabase
	gradientDB.database = db
	return gradientDB, nil
}

// Create inserts a gradient at the given catalog position and returns its id
func (gdb GradientDatabase) Create(position int, gradient colormatch.Gradient) (int, error) {
	db := gdb.database

	colors := make([]string, len(gradient.Colors))
	for i, c := range gradient.Colors {
		colors[i] = c.Hex()
	}
	tags := gradient.Tags
	if tags == nil {
		tags = []string{}
	}

	sqlStatement := `
		INSERT INTO gradients (position, name, category, kind, artist, tags, colors)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int
	err := db.QueryRow(
		sqlStatement,
		position,
		gradient.Name,
		gradient.Category,
		string(gradient.Kind),
		gradient.Artist,
		pq.Array(tags),
		pq.Array(colors),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create gradient %q: %w", gradient.Name, err)
	}

	return id, nil
}

// GetAll retrieves every gradient in catalog order
func (gdb GradientDatabase) GetAll() ([]colormatch.Gradient, error) {
	db := gdb.database

	sqlStatement := `
		SELECT name, category, kind, artist, tags, colors
		FROM gradients
		ORDER BY position, id`

	rows, err := db.Query(sqlStatement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gradients []colormatch.Gradient
	for rows.Next() {
		g, err := scanGradient(rows)
		if err != nil {
			return nil, err
		}
		gradients = append(gradients, g)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return gradients, nil
}

// GetByName retrieves the first gradient with the given name
func (gdb GradientDatabase) GetByName(name string) (colormatch.Gradient, error) {
	db := gdb.database

	sqlStatement := `
		SELECT name, category, kind, artist, tags, colors
		FROM gradients
		WHERE LOWER(name) = LOWER($1)
		ORDER BY position, id
		LIMIT 1`

	g, err := scanGradient(db.QueryRow(sqlStatement, name))

	switch err {
	case sql.ErrNoRows:
		return colormatch.Gradient{}, NoRowsError{true, err}
	case nil:
		return g, nil
	default:
		return colormatch.Gradient{}, err
	}
}

// Count returns the number of stored gradients
func (gdb GradientDatabase) Count() (int, error) {
	var count int
	err := gdb.database.QueryRow(`SELECT COUNT(*) FROM gradients`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGradient(row rowScanner) (colormatch.Gradient, error) {
	var (
		g      colormatch.Gradient
		kind   string
		tags   []string
		colors []string
	)
	err := row.Scan(
		&g.Name,
		&g.Category,
		&kind,
		&g.Artist,
		pq.Array(&tags),
		pq.Array(&colors),
	)
	if err != nil {
		return colormatch.Gradient{}, err
	}

	g.Kind = colormatch.Kind(kind)
	if len(tags) > 0 {
		g.Tags = tags
	}
	for _, raw := range colors {
		c, err := colormatch.ParseColor(raw)
		if err != nil {
			return colormatch.Gradient{}, fmt.Errorf("stored gradient %q: %w", g.Name, err)
		}
		g.Colors = append(g.Colors, c)
	}
	return g, nil
}

// SeedCatalog stores every gradient of c when the table is empty and reports
// how many rows were inserted.
func SeedCatalog(repo GradientRepository, c *colormatch.Catalog) (int, error) {
	count, err := repo.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count gradients: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for i, g := range c.Gradients() {
		if _, err := repo.Create(i, g); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// LoadCatalog reads the stored gradients into a validated catalog.
func LoadCatalog(repo GradientRepository) (*colormatch.Catalog, error) {
	gradients, err := repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load gradients: %w", err)
	}
	return colormatch.NewCatalog(gradients...)
}
