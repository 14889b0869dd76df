package canvas

import (
	"context"

	"canvas-assistant/internal/model"
	pkgCanvas "canvas-assistant/pkg/canvas"
)

// Modules lists modules then fetches each module's items in a second pass.
// A failed item fetch leaves that module with an empty item list.
func (r *implRepository) Modules(ctx context.Context, courseID int64) ([]model.Module, error) {
	raw, err := r.client.ListModules(ctx, courseID, pkgCanvas.IncludeItems)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to list modules for course %d: %v", courseID, err)
		return []model.Module{}, err
	}

	modules := make([]model.Module, 0, len(raw))
	for _, m := range raw {
		module := toModule(courseID, m)

		items, err := r.client.ListModuleItems(ctx, courseID, m.ID)
		if err != nil {
			r.l.Warnf(ctx, "canvas repository: failed to list items of module %d in course %d: %v", m.ID, courseID, err)
			module.Items = []model.ModuleItem{}
		} else {
			module.Items = toModuleItems(m.ID, items)
		}

		modules = append(modules, module)
	}
	return modules, nil
}

func (r *implRepository) Files(ctx context.Context, courseID int64) ([]model.File, error) {
	raw, err := r.client.ListFiles(ctx, courseID)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to list files for course %d: %v", courseID, err)
		return []model.File{}, err
	}

	files := make([]model.File, 0, len(raw))
	for _, f := range raw {
		files = append(files, toFile(courseID, f))
	}
	return files, nil
}

func (r *implRepository) Announcements(ctx context.Context, courseID int64) ([]model.Announcement, error) {
	raw, err := r.client.ListAnnouncements(ctx, courseID)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to list announcements for course %d: %v", courseID, err)
		return []model.Announcement{}, err
	}

	announcements := make([]model.Announcement, 0, len(raw))
	for _, t := range raw {
		announcements = append(announcements, toAnnouncement(courseID, t))
	}
	return announcements, nil
}
