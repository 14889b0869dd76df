package usecase

import (
	"context"
	"strings"

	"canvas-assistant/internal/model"
)

func (uc *implUseCase) ResolveCourse(ctx context.Context, name string) (int64, bool) {
	return resolveCourse(uc.courses(ctx), name)
}

// resolveCourse matches exact names first, then substrings, both ignoring
// case. The first match in list order wins.
func resolveCourse(courses []model.Course, name string) (int64, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return 0, false
	}

	for _, c := range courses {
		if strings.ToLower(c.Name) == needle {
			return c.ID, true
		}
	}
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c.ID, true
		}
	}
	return 0, false
}
