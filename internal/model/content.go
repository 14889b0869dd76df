package model

// ModuleItem is a content reference inside a module.
type ModuleItem struct {
	ID          int64  `json:"id"`
	ModuleID    int64  `json:"module_id"`
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	ContentID   int64  `json:"content_id,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// Module is an ordered unit of course content.
type Module struct {
	ID       int64        `json:"id"`
	CourseID int64        `json:"course_id"`
	Name     string       `json:"name"`
	Position int          `json:"position"`
	Items    []ModuleItem `json:"items"`
}

// File is a course file.
type File struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"course_id"`
	DisplayName string `json:"display_name"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
	URL         string `json:"url,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Announcement is a course announcement.
type Announcement struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	PostedAt string `json:"posted_at,omitempty"`
	Author   string `json:"author,omitempty"`
	HTMLURL  string `json:"html_url,omitempty"`
}
