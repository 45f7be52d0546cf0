package store

import (
	"context"

	"github.com/uptrace/bun"
)

// Projects persists user-owned project records.
type Projects struct {
	db *bun.DB
}

// NewProjectsRepository builds the projects repository over the given DB.
func NewProjectsRepository(db *bun.DB) *Projects {
	return &Projects{db: db}
}

// ListByOwner returns every project belonging to the given user, oldest
// first. No rows yields an empty slice, not nil, so the HTTP layer always
// renders a JSON array.
func (r *Projects) ListByOwner(ctx context.Context, userID int64) ([]Project, error) {
	projects := make([]Project, 0)
	err := r.db.NewSelect().
		Model(&projects).
		Where("prj.user_id = ?", userID).
		Order("prj.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Create inserts a project and fills in its generated id.
func (r *Projects) Create(ctx context.Context, project *Project) (*Project, error) {
	if _, err := r.db.NewInsert().Model(project).Returning("id").Exec(ctx); err != nil {
		return nil, err
	}
	return project, nil
}
