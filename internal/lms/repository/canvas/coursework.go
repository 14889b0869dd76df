package canvas

import (
	"context"

	"canvas-assistant/internal/model"
	pkgCanvas "canvas-assistant/pkg/canvas"
)

func (r *implRepository) Assignments(ctx context.Context, courseID int64) ([]model.Assignment, error) {
	raw, err := r.client.ListAssignments(ctx, courseID, pkgCanvas.IncludeSubmission)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to list assignments for course %d: %v", courseID, err)
		return []model.Assignment{}, err
	}

	assignments := make([]model.Assignment, 0, len(raw))
	for _, a := range raw {
		assignments = append(assignments, toAssignment(courseID, a))
	}
	return assignments, nil
}

// Grades needs two calls: assignments with submissions, then the course with
// total_scores for the computed overall score. Either failing fails the whole
// grade view so a half-built summary is never cached.
func (r *implRepository) Grades(ctx context.Context, courseID int64) (model.Grades, error) {
	empty := model.Grades{CourseID: courseID, Assignments: []model.GradeRecord{}}

	raw, err := r.client.ListAssignments(ctx, courseID, pkgCanvas.IncludeSubmission)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to list graded assignments for course %d: %v", courseID, err)
		return empty, err
	}

	summary, err := r.client.GetCourse(ctx, courseID, pkgCanvas.IncludeTotalScores)
	if err != nil {
		r.l.Errorf(ctx, "canvas repository: failed to fetch total scores for course %d: %v", courseID, err)
		return empty, err
	}

	grades := model.Grades{
		CourseID:    courseID,
		Assignments: make([]model.GradeRecord, 0, len(raw)),
	}
	if len(summary.Enrollments) > 0 {
		grades.OverallScore = summary.Enrollments[0].ComputedCurrentScore
	}
	for _, a := range raw {
		grades.Assignments = append(grades.Assignments, toGradeRecord(courseID, a))
	}
	return grades, nil
}
