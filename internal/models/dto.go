package models

// AdminFormType discriminates the multi-purpose admin console submission.
type AdminFormType string

const (
	FormAddCourse     AdminFormType = "add_course"
	FormAddMark       AdminFormType = "add_mark"
	FormAddVideo      AdminFormType = "add_video"
	FormEnrollStudent AdminFormType = "enroll_student"
)

// ParseAdminFormType maps the submitted form_type discriminator to a typed
// value. The boolean is false for unknown tags.
func ParseAdminFormType(s string) (AdminFormType, bool) {
	switch AdminFormType(s) {
	case FormAddCourse, FormAddMark, FormAddVideo, FormEnrollStudent:
		return AdminFormType(s), true
	}
	return "", false
}

// NoticeCategory tags a flash notice for display styling.
type NoticeCategory string

const (
	NoticeSuccess NoticeCategory = "success"
	NoticeDanger  NoticeCategory = "danger"
	NoticeWarning NoticeCategory = "warning"
	NoticeInfo    NoticeCategory = "info"
)

// Notice is a short-lived message shown once after a redirect.
type Notice struct {
	Category NoticeCategory
	Message  string
}
