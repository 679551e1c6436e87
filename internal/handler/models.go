package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=student professor"`
}

type LoginRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        int    `json:"id"`
	StudentID string `json:"student_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

type RegisterResponse struct {
	User UserResponse `json:"user"`
}

type ProfileResponse struct {
	Profile UserResponse `json:"profile"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=1"`
	Email string `json:"email" validate:"omitempty,email"`
}

type CreateCourseRequest struct {
	Title string `json:"title" validate:"required"`
	Code  string `json:"code"`
}

type CourseResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	ProfessorID int    `json:"professor_id"`
	CreatedAt   string `json:"created_at"`
}

type CreateCourseResponse struct {
	Course CourseResponse `json:"course"`
}

type EnrollmentResponse struct {
	ID         int    `json:"id"`
	StudentID  int    `json:"student_id"`
	CourseID   int    `json:"course_id"`
	EnrolledAt string `json:"enrolled_at"`
}

type EnrollResponse struct {
	Enrollment EnrollmentResponse `json:"enrollment"`
}

type CreatePostRequest struct {
	CourseID int    `json:"course_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type PostResponse struct {
	ID         int    `json:"id"`
	CourseID   int    `json:"course_id"`
	AuthorID   int    `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Likes      int    `json:"likes"`
	IsLiked    bool   `json:"is_liked"`
	CreatedAt  string `json:"created_at"`
}

type CreatePostResponse struct {
	Post PostResponse `json:"post"`
}

type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required"`
	ParentCommentID *int   `json:"parent_comment_id"`
}

type CommentResponse struct {
	ID              int    `json:"id"`
	PostID          int    `json:"post_id"`
	AuthorID        int    `json:"author_id"`
	AuthorName      string `json:"author_name,omitempty"`
	Content         string `json:"content"`
	ParentCommentID *int   `json:"parent_comment_id,omitempty"`
	Likes           int    `json:"likes"`
	IsLiked         bool   `json:"is_liked"`
	CreatedAt       string `json:"created_at"`
}

type CreateCommentResponse struct {
	Comment CommentResponse `json:"comment"`
}

type LikeResponse struct {
	IsLiked bool `json:"is_liked"`
	Likes   int  `json:"likes"`
}

type CreateRecruitmentRequest struct {
	CourseID    int    `json:"course_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	MaxMembers  int    `json:"max_members" validate:"required,min=2"`
}

type RecruitmentResponse struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"course_id"`
	AuthorID    int    `json:"author_id"`
	AuthorName  string `json:"author_name,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members"`
	MemberCount int    `json:"member_count"`
	IsMember    bool   `json:"is_member"`
	CreatedAt   string `json:"created_at"`
}

type CreateRecruitmentResponse struct {
	Recruitment RecruitmentResponse `json:"recruitment"`
}

type CreateScheduleRequest struct {
	Title     string `json:"title" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	TeamID    *int   `json:"team_id"`
}

type ScheduleResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	TeamID    *int   `json:"team_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AddAvailabilityRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type AvailabilityResponse struct {
	ID        int    `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AddAvailabilityResponse struct {
	Created      bool                 `json:"created"`
	Availability AvailabilityResponse `json:"availability"`
}

type TeamMemberSummaryResponse struct {
	UserID    int                    `json:"user_id"`
	Name      string                 `json:"name"`
	StudentID string                 `json:"student_id,omitempty"`
	Role      string                 `json:"role"`
	Intervals []AvailabilityResponse `json:"intervals"`
}

type SlotResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
}

type SlotPopularityResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	Count     int    `json:"count"`
}

type TimeBlockResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type TeamAvailabilityResponse struct {
	TeamID      int                            `json:"team_id"`
	TeamSize    int                            `json:"team_size"`
	Members     []TeamMemberSummaryResponse    `json:"members"`
	Slots       []SlotResponse                 `json:"slots"`
	DailyBlocks map[string][]TimeBlockResponse `json:"daily_blocks"`
	Popularity  []SlotPopularityResponse       `json:"popularity"`
}
