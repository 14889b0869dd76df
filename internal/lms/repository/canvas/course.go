package canvas

import (
	"context"

	"canvas-assistant/internal/model"
	pkgCanvas "canvas-assistant/pkg/canvas"
)

func (r *implRepository) Self(ctx context.Context) (model.User, error) {
	u, err := r.client.GetSelf(ctx)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to fetch current user: %v", err)
		return model.User{}, err
	}
	return toUser(u), nil
}

// Courses drops any course whose access is currently date-restricted; such
// entries carry no usable data and are never "active".
func (r *implRepository) Courses(ctx context.Context) ([]model.Course, error) {
	raw, err := r.client.ListActiveCourses(ctx, pkgCanvas.IncludeTerm)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to list active courses: %v", err)
		return []model.Course{}, err
	}

	courses := make([]model.Course, 0, len(raw))
	for _, c := range raw {
		if c.AccessRestrictedByDate {
			r.l.Debugf(ctx, "canvas repository: skipping date-restricted course %d", c.ID)
			continue
		}
		courses = append(courses, toCourse(c))
	}
	return courses, nil
}

func (r *implRepository) CourseDetail(ctx context.Context, courseID int64) (model.Course, error) {
	c, err := r.client.GetCourse(ctx, courseID,
		pkgCanvas.IncludeSyllabusBody, pkgCanvas.IncludeTerm, pkgCanvas.IncludeTeachers)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to fetch course %d: %v", courseID, err)
		return model.Course{}, err
	}
	return toCourse(*c), nil
}
