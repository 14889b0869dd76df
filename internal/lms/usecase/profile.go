package usecase

import (
	"context"

	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/model"
)

// Profile reports the token owner. A failed lookup means the token cannot
// be used; it is not cached, so the next call retries.
func (uc *implUseCase) Profile(ctx context.Context) (model.User, bool) {
	u, err := uc.self(ctx)
	if err != nil || u.ID == 0 {
		return model.User{}, false
	}
	return u, true
}

func (uc *implUseCase) ActiveCourses(ctx context.Context) []model.Course {
	return uc.courses(ctx)
}

func (uc *implUseCase) CacheStats() cache.Stats {
	return uc.cache.Stats()
}

func (uc *implUseCase) PurgeCache() int {
	return uc.cache.Purge()
}
