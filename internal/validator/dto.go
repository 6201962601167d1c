package validator

// Form DTOs for every portal submission. All fields arrive as HTML form
// values; handlers bind them before validation.

type RegisterRequest struct {
	Name            string `form:"name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email,max=100"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
	ExamYear        int    `form:"exam_year" validate:"required,min=2000,max=2100"`
	School          string `form:"school" validate:"omitempty,max=150"`
	Birthday        string `form:"birthday" validate:"required,datetime=2006-01-02"`
	GuardianContact string `form:"guardian_contact" validate:"omitempty,max=15"`
	WhatsappNumber  string `form:"whatsapp_number" validate:"required,max=15"`
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type ProfileUpdateRequest struct {
	Name            string `form:"name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email,max=100"`
	School          string `form:"school" validate:"omitempty,max=150"`
	ExamYear        int    `form:"exam_year" validate:"required,min=2000,max=2100"`
	WhatsappNumber  string `form:"whatsapp_number" validate:"required,max=15"`
	GuardianContact string `form:"guardian_contact" validate:"omitempty,max=15"`
}

type AddCourseRequest struct {
	Name        string  `form:"course_name" validate:"required,max=100"`
	Description string  `form:"course_description" validate:"omitempty"`
	Price       float64 `form:"course_price" validate:"min=0"`
}

type AddMarkRequest struct {
	IndexNumber string `form:"index_number" validate:"required"`
	PaperName   string `form:"paper_name" validate:"required,max=100"`
	Score       int    `form:"score" validate:"min=0"`
}

type AddVideoRequest struct {
	Title string `form:"video_title" validate:"required,max=200"`
	Link  string `form:"video_link" validate:"required,max=200"`
}

type EnrollStudentRequest struct {
	IndexNumber string `form:"index_number" validate:"required"`
	CourseID    uint   `form:"course_id" validate:"required"`
}
