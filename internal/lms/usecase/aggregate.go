package usecase

import (
	"context"
	"strings"

	"canvas-assistant/internal/lms"
)

// Aggregate builds the data bag for one classified intent. The course list
// is always loaded. Course-scoped kinds are loaded only when the reference
// resolves. Deadlines are a cross-course view and are added when asked for
// or when no course was named.
func (uc *implUseCase) Aggregate(ctx context.Context, intent lms.Intent) lms.AggregateOutput {
	now := uc.now()
	bag := lms.DataBag{Courses: uc.courses(ctx)}

	ref := strings.TrimSpace(intent.CourseRef)
	if ref != "" {
		if id, ok := resolveCourse(bag.Courses, ref); ok {
			bag.CourseID = &id
		} else {
			uc.l.Infof(ctx, "lms.usecase.Aggregate: course %q not found among %d active courses", ref, len(bag.Courses))
		}
	}

	if bag.CourseID != nil {
		uc.fillCourseScoped(ctx, *bag.CourseID, intent, &bag)
	}

	if intent.Has(lms.KindDeadlines) || intent.Has(lms.KindUpcoming) || ref == "" {
		bag.Deadlines = uc.mergeDeadlines(ctx, bag.Courses, now)
	}

	return lms.AggregateOutput{Data: bag, GeneratedAt: now}
}

func (uc *implUseCase) fillCourseScoped(ctx context.Context, courseID int64, intent lms.Intent, bag *lms.DataBag) {
	if intent.Has(lms.KindCourseDetails) {
		detail := uc.courseDetail(ctx, courseID)
		if detail.ID != 0 {
			bag.CourseDetails = &detail
		}
	}
	if intent.Has(lms.KindAssignments) {
		bag.Assignments = uc.assignments(ctx, courseID)
	}
	if intent.Has(lms.KindGrades) {
		grades := uc.grades(ctx, courseID)
		bag.Grades = &grades
	}
	if intent.Has(lms.KindModules) {
		bag.Modules = uc.modules(ctx, courseID)
	}
	if intent.Has(lms.KindFiles) {
		bag.Files = uc.files(ctx, courseID)
	}
	if intent.Has(lms.KindAnnouncements) {
		bag.Announcements = uc.announcements(ctx, courseID)
	}
}
