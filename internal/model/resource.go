package model

import "time"

// ResourceType is the unit of cache keying and fetch policy.
type ResourceType string

const (
	ResourceCourses       ResourceType = "courses"
	ResourceCourseDetail  ResourceType = "course_detail"
	ResourceAssignments   ResourceType = "assignments"
	ResourceGrades        ResourceType = "grades"
	ResourceModules       ResourceType = "modules"
	ResourceFiles         ResourceType = "files"
	ResourceAnnouncements ResourceType = "announcements"
	ResourceUserInfo      ResourceType = "user_info"
)

// DefaultTTLs is the expiration policy used when config does not override it.
// Course detail shares the courses policy.
var DefaultTTLs = map[ResourceType]time.Duration{
	ResourceCourses:       3600 * time.Second,
	ResourceCourseDetail:  3600 * time.Second,
	ResourceAssignments:   1800 * time.Second,
	ResourceGrades:        1800 * time.Second,
	ResourceAnnouncements: 1800 * time.Second,
	ResourceModules:       3600 * time.Second,
	ResourceFiles:         3600 * time.Second,
	ResourceUserInfo:      86400 * time.Second,
}
