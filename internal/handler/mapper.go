package handler

import (
	"sort"
	"time"

	"github.com/coursehub/backend/internal/domain"
	"github.com/coursehub/backend/internal/timegrid"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		StudentID: user.StudentID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
	}
}

func domainCourseToHTTP(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Code:        course.Code,
		ProfessorID: course.ProfessorID,
		CreatedAt:   course.CreatedAt.Format(time.RFC3339),
	}
}

func domainCoursesToHTTP(courses []*domain.Course) []CourseResponse {
	result := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, domainCourseToHTTP(course))
	}
	return result
}

func domainEnrollmentToHTTP(enrollment *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         enrollment.ID,
		StudentID:  enrollment.StudentID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt.Format(time.RFC3339),
	}
}

func domainPostToHTTP(post *domain.Post) PostResponse {
	return PostResponse{
		ID:         post.ID,
		CourseID:   post.CourseID,
		AuthorID:   post.AuthorID,
		AuthorName: post.AuthorName,
		Title:      post.Title,
		Content:    post.Content,
		Category:   post.Category,
		Likes:      post.Likes,
		IsLiked:    post.IsLiked,
		CreatedAt:  post.CreatedAt.Format(time.RFC3339),
	}
}

func domainPostsToHTTP(posts []*domain.Post) []PostResponse {
	result := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, domainPostToHTTP(post))
	}
	return result
}

func domainCommentToHTTP(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:              comment.ID,
		PostID:          comment.PostID,
		AuthorID:        comment.AuthorID,
		AuthorName:      comment.AuthorName,
		Content:         comment.Content,
		ParentCommentID: comment.ParentCommentID,
		Likes:           comment.Likes,
		IsLiked:         comment.IsLiked,
		CreatedAt:       comment.CreatedAt.Format(time.RFC3339),
	}
}

func domainCommentsToHTTP(comments []*domain.Comment) []CommentResponse {
	result := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, domainCommentToHTTP(comment))
	}
	return result
}

func domainRecruitmentToHTTP(recruitment *domain.Recruitment) RecruitmentResponse {
	return RecruitmentResponse{
		ID:          recruitment.ID,
		CourseID:    recruitment.CourseID,
		AuthorID:    recruitment.AuthorID,
		AuthorName:  recruitment.AuthorName,
		Title:       recruitment.Title,
		Description: recruitment.Description,
		MaxMembers:  recruitment.MaxMembers,
		MemberCount: recruitment.MemberCount,
		IsMember:    recruitment.IsMember,
		CreatedAt:   recruitment.CreatedAt.Format(time.RFC3339),
	}
}

func domainRecruitmentsToHTTP(recruitments []*domain.Recruitment) []RecruitmentResponse {
	result := make([]RecruitmentResponse, 0, len(recruitments))
	for _, recruitment := range recruitments {
		result = append(result, domainRecruitmentToHTTP(recruitment))
	}
	return result
}

func domainScheduleToHTTP(entry *domain.ScheduleEntry) ScheduleResponse {
	return ScheduleResponse{
		ID:        entry.ID,
		Title:     entry.Title,
		Date:      entry.Date,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		TeamID:    entry.TeamID,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}

func domainIntervalToHTTP(interval *domain.AvailabilityInterval) AvailabilityResponse {
	return AvailabilityResponse{
		ID:        interval.ID,
		DayOfWeek: interval.DayOfWeek,
		StartTime: timegrid.FormatMinute(interval.StartMinute),
		EndTime:   timegrid.FormatMinute(interval.EndMinute),
	}
}

func domainIntervalsToHTTP(intervals []*domain.AvailabilityInterval) []AvailabilityResponse {
	result := make([]AvailabilityResponse, 0, len(intervals))
	for _, interval := range intervals {
		result = append(result, domainIntervalToHTTP(interval))
	}
	return result
}

func domainTeamAvailabilityToHTTP(snapshot *domain.TeamAvailability) TeamAvailabilityResponse {
	members := make([]TeamMemberSummaryResponse, 0, len(snapshot.Members))
	for _, member := range snapshot.Members {
		members = append(members, TeamMemberSummaryResponse{
			UserID:    member.UserID,
			Name:      member.Name,
			StudentID: member.StudentID,
			Role:      string(member.Role),
			Intervals: domainIntervalsToHTTP(member.Intervals),
		})
	}

	slots := make([]SlotResponse, 0, len(snapshot.Slots))
	for _, slot := range snapshot.Slots {
		slots = append(slots, SlotResponse{
			Day:       timegrid.DayName(slot.Day),
			StartTime: timegrid.FormatMinute(slot.Minute),
		})
	}

	blocks := make(map[string][]TimeBlockResponse, len(snapshot.DailyBlocks))
	for day, dayBlocks := range snapshot.DailyBlocks {
		converted := make([]TimeBlockResponse, 0, len(dayBlocks))
		for _, block := range dayBlocks {
			converted = append(converted, TimeBlockResponse{
				StartTime: timegrid.FormatMinute(block.StartMinute),
				EndTime:   timegrid.FormatMinute(block.EndMinute),
			})
		}
		blocks[day] = converted
	}

	popularity := make([]SlotPopularityResponse, 0, len(snapshot.Popularity))
	for slot, count := range snapshot.Popularity {
		popularity = append(popularity, SlotPopularityResponse{
			Day:       timegrid.DayName(slot.Day),
			StartTime: timegrid.FormatMinute(slot.Minute),
			Count:     count,
		})
	}
	sort.Slice(popularity, func(i, j int) bool {
		if popularity[i].Day != popularity[j].Day {
			di, _ := timegrid.DayIndex(popularity[i].Day)
			dj, _ := timegrid.DayIndex(popularity[j].Day)
			return di < dj
		}
		return popularity[i].StartTime < popularity[j].StartTime
	})

	return TeamAvailabilityResponse{
		TeamID:      snapshot.TeamID,
		TeamSize:    snapshot.TeamSize,
		Members:     members,
		Slots:       slots,
		DailyBlocks: blocks,
		Popularity:  popularity,
	}
}
