package canvas

import (
	"canvas-assistant/internal/model"
	pkgCanvas "canvas-assistant/pkg/canvas"
)

func toUser(u *pkgCanvas.User) model.User {
	return model.User{
		ID:           u.ID,
		Name:         u.Name,
		ShortName:    u.ShortName,
		LoginID:      u.LoginID,
		PrimaryEmail: u.PrimaryEmail,
	}
}

func toCourse(c pkgCanvas.Course) model.Course {
	course := model.Course{
		ID:         c.ID,
		Name:       c.Name,
		CourseCode: c.CourseCode,
	}
	if c.Term != nil {
		course.Term = &model.Term{
			ID:      c.Term.ID,
			Name:    c.Term.Name,
			StartAt: c.Term.StartAt,
			EndAt:   c.Term.EndAt,
		}
	}
	if c.SyllabusBody != nil {
		course.Syllabus = *c.SyllabusBody
	}
	for _, t := range c.Teachers {
		course.Teachers = append(course.Teachers, model.Teacher{ID: t.ID, DisplayName: t.DisplayName})
	}
	return course
}

// toAssignment keeps a nil due date as nil and defaults missing points to 0.
func toAssignment(courseID int64, a pkgCanvas.Assignment) model.Assignment {
	out := model.Assignment{
		ID:       a.ID,
		CourseID: courseID,
		Name:     a.Name,
		DueAt:    a.DueAt,
		HTMLURL:  a.HTMLURL,
	}
	if a.PointsPossible != nil {
		out.PointsPossible = *a.PointsPossible
	}
	if a.Submission != nil {
		out.Submission = &model.Submission{
			SubmittedAt: a.Submission.SubmittedAt,
			Score:       a.Submission.Score,
			Grade:       a.Submission.Grade,
		}
	}
	return out
}

func toGradeRecord(courseID int64, a pkgCanvas.Assignment) model.GradeRecord {
	as := toAssignment(courseID, a)
	rec := model.GradeRecord{
		ID:             as.ID,
		Name:           as.Name,
		PointsPossible: as.PointsPossible,
		Submitted:      as.Submission.Submitted(),
		Graded:         as.Submission.Graded(),
	}
	if as.Submission != nil {
		rec.Score = as.Submission.Score
	}
	return rec
}

func toModule(courseID int64, m pkgCanvas.Module) model.Module {
	return model.Module{
		ID:       m.ID,
		CourseID: courseID,
		Name:     m.Name,
		Position: m.Position,
	}
}

func toModuleItems(moduleID int64, items []pkgCanvas.ModuleItem) []model.ModuleItem {
	out := make([]model.ModuleItem, 0, len(items))
	for _, it := range items {
		mid := it.ModuleID
		if mid == 0 {
			mid = moduleID
		}
		out = append(out, model.ModuleItem{
			ID:          it.ID,
			ModuleID:    mid,
			Position:    it.Position,
			Title:       it.Title,
			Type:        it.Type,
			ContentID:   it.ContentID,
			HTMLURL:     it.HTMLURL,
			ExternalURL: it.ExternalURL,
		})
	}
	return out
}

func toFile(courseID int64, f pkgCanvas.File) model.File {
	return model.File{
		ID:          f.ID,
		CourseID:    courseID,
		DisplayName: f.DisplayName,
		ContentType: f.ContentType,
		Size:        f.Size,
		URL:         f.URL,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toAnnouncement(courseID int64, t pkgCanvas.DiscussionTopic) model.Announcement {
	a := model.Announcement{
		ID:       t.ID,
		CourseID: courseID,
		Title:    t.Title,
		Message:  t.Message,
		HTMLURL:  t.HTMLURL,
	}
	if t.PostedAt != nil {
		a.PostedAt = *t.PostedAt
	}
	if t.Author != nil {
		a.Author = t.Author.DisplayName
	}
	return a
}
