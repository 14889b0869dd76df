package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/datemath"
)

func (uc *implUseCase) UpcomingDeadlines(ctx context.Context) []model.Deadline {
	return uc.mergeDeadlines(ctx, uc.courses(ctx), uc.now())
}

// mergeDeadlines collects future deadlines across courses and sorts them by
// the raw due string. Per-course lists are concatenated in course order
// before the stable sort, so ties keep encounter order.
func (uc *implUseCase) mergeDeadlines(ctx context.Context, courses []model.Course, now time.Time) []model.Deadline {
	perCourse := make([][]model.Assignment, len(courses))

	var g errgroup.Group
	g.SetLimit(uc.concurrency)
	for i, c := range courses {
		g.Go(func() error {
			perCourse[i] = uc.assignments(ctx, c.ID)
			return nil
		})
	}
	_ = g.Wait()

	deadlines := make([]model.Deadline, 0)
	for i, c := range courses {
		for _, a := range perCourse[i] {
			if a.DueAt == nil {
				continue
			}
			if !datemath.After(*a.DueAt, now) {
				continue
			}
			deadlines = append(deadlines, model.Deadline{
				CourseID:       c.ID,
				CourseName:     c.Name,
				AssignmentID:   a.ID,
				AssignmentName: a.Name,
				DueAt:          *a.DueAt,
				PointsPossible: a.PointsPossible,
				Submitted:      a.Submission.Submitted(),
				HTMLURL:        a.HTMLURL,
			})
		}
	}

	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].DueAt < deadlines[j].DueAt
	})
	return deadlines
}
