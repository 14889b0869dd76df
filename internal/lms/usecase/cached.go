package usecase

import (
	"context"
	"strconv"

	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/model"
)

// fetch runs one cache-first lookup. Upstream failures are already logged
// by the repository and the cache; the caller only sees the empty default.
func fetch[T any](ctx context.Context, c *cache.Cache, key cache.Key, fn cache.FetchFunc[T]) T {
	v, _ := cache.GetOrFetch(ctx, c, key, fn)
	return v
}

func courseKey(rt model.ResourceType, courseID int64) cache.Key {
	return cache.Key{Resource: rt, ID: strconv.FormatInt(courseID, 10)}
}

func (uc *implUseCase) self(ctx context.Context) (model.User, error) {
	return cache.GetOrFetch(ctx, uc.cache, cache.Key{Resource: model.ResourceUserInfo, ID: "self"}, uc.repo.Self)
}

func (uc *implUseCase) courses(ctx context.Context) []model.Course {
	return fetch(ctx, uc.cache, cache.Key{Resource: model.ResourceCourses}, uc.repo.Courses)
}

func (uc *implUseCase) courseDetail(ctx context.Context, courseID int64) model.Course {
	return fetch(ctx, uc.cache, courseKey(model.ResourceCourseDetail, courseID), func(ctx context.Context) (model.Course, error) {
		return uc.repo.CourseDetail(ctx, courseID)
	})
}

func (uc *implUseCase) assignments(ctx context.Context, courseID int64) []model.Assignment {
	return fetch(ctx, uc.cache, courseKey(model.ResourceAssignments, courseID), func(ctx context.Context) ([]model.Assignment, error) {
		return uc.repo.Assignments(ctx, courseID)
	})
}

func (uc *implUseCase) grades(ctx context.Context, courseID int64) model.Grades {
	return fetch(ctx, uc.cache, courseKey(model.ResourceGrades, courseID), func(ctx context.Context) (model.Grades, error) {
		return uc.repo.Grades(ctx, courseID)
	})
}

func (uc *implUseCase) modules(ctx context.Context, courseID int64) []model.Module {
	return fetch(ctx, uc.cache, courseKey(model.ResourceModules, courseID), func(ctx context.Context) ([]model.Module, error) {
		return uc.repo.Modules(ctx, courseID)
	})
}

func (uc *implUseCase) files(ctx context.Context, courseID int64) []model.File {
	return fetch(ctx, uc.cache, courseKey(model.ResourceFiles, courseID), func(ctx context.Context) ([]model.File, error) {
		return uc.repo.Files(ctx, courseID)
	})
}

func (uc *implUseCase) announcements(ctx context.Context, courseID int64) []model.Announcement {
	return fetch(ctx, uc.cache, courseKey(model.ResourceAnnouncements, courseID), func(ctx context.Context) ([]model.Announcement, error) {
		return uc.repo.Announcements(ctx, courseID)
	})
}
