// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"forum-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			CreatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

// AsAdmin marks the user as an admin.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

// AsGoldMember gives the user the Gold membership badge.
func (b *UserBuilder) AsGoldMember() *UserBuilder {
	b.user.Badge = models.BadgeGold
	return b
}

func (b *UserBuilder) WithPostCount(count int) *UserBuilder {
	b.user.PostCount = count
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Post Fixtures =====

// PostBuilder provides fluent API for building test posts.
type PostBuilder struct {
	post models.Post
}

// NewPost creates a new PostBuilder with sensible defaults.
func NewPost() *PostBuilder {
	return &PostBuilder{
		post: models.Post{
			ID: primitive.NewObjectID(),
			Author: models.PostAuthor{
				Name:  "Test User",
				Email: "test@example.com",
			},
			Title:       fmt.Sprintf("Test Post %s", primitive.NewObjectID().Hex()[:8]),
			Description: "A post written by the test suite.",
			Tags:        "go",
			Time:        time.Now(),
		},
	}
}

func (b *PostBuilder) WithID(id primitive.ObjectID) *PostBuilder {
	b.post.ID = id
	return b
}

func (b *PostBuilder) WithTitle(title string) *PostBuilder {
	b.post.Title = title
	return b
}

func (b *PostBuilder) WithAuthor(name, email string) *PostBuilder {
	b.post.Author.Name = name
	b.post.Author.Email = email
	return b
}

func (b *PostBuilder) WithTags(tags string) *PostBuilder {
	b.post.Tags = tags
	return b
}

func (b *PostBuilder) WithVotes(up, down int) *PostBuilder {
	b.post.UpVote = up
	b.post.DownVote = down
	return b
}

func (b *PostBuilder) WithTime(at time.Time) *PostBuilder {
	b.post.Time = at
	return b
}

func (b *PostBuilder) Build() models.Post {
	return b.post
}

func (b *PostBuilder) BuildPtr() *models.Post {
	return &b.post
}

// ===== Comment Fixtures =====

// CommentBuilder provides fluent API for building test comments.
type CommentBuilder struct {
	comment models.Comment
}

// NewComment creates a new CommentBuilder with sensible defaults.
func NewComment() *CommentBuilder {
	return &CommentBuilder{
		comment: models.Comment{
			ID:        primitive.NewObjectID(),
			UserEmail: "test@example.com",
			PostTitle: "Test Post",
			Comment:   "A comment written by the test suite.",
		},
	}
}

func (b *CommentBuilder) WithID(id primitive.ObjectID) *CommentBuilder {
	b.comment.ID = id
	return b
}

func (b *CommentBuilder) WithPostTitle(title string) *CommentBuilder {
	b.comment.PostTitle = title
	return b
}

func (b *CommentBuilder) WithUserEmail(email string) *CommentBuilder {
	b.comment.UserEmail = email
	return b
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.comment.Comment = text
	return b
}

func (b *CommentBuilder) Build() models.Comment {
	return b.comment
}

func (b *CommentBuilder) BuildPtr() *models.Comment {
	return &b.comment
}

// ===== Report Fixtures =====

// ReportBuilder provides fluent API for building test reports.
type ReportBuilder struct {
	report models.Report
}

// NewReport creates a new ReportBuilder with sensible defaults.
func NewReport() *ReportBuilder {
	return &ReportBuilder{
		report: models.Report{
			ID:         primitive.NewObjectID(),
			Feedback:   "spam",
			ReportedBy: "test@example.com",
		},
	}
}

func (b *ReportBuilder) WithID(id primitive.ObjectID) *ReportBuilder {
	b.report.ID = id
	return b
}

// WithComment links the report to a comment.
func (b *ReportBuilder) WithComment(commentID primitive.ObjectID, text string) *ReportBuilder {
	b.report.CommentID = commentID
	b.report.CommentText = text
	return b
}

func (b *ReportBuilder) WithFeedback(feedback string) *ReportBuilder {
	b.report.Feedback = feedback
	return b
}

func (b *ReportBuilder) WithReportedBy(email string) *ReportBuilder {
	b.report.ReportedBy = email
	return b
}

func (b *ReportBuilder) Build() models.Report {
	return b.report
}

func (b *ReportBuilder) BuildPtr() *models.Report {
	return &b.report
}

// ===== Announcement Fixtures =====

// AnnouncementBuilder provides fluent API for building test announcements.
type AnnouncementBuilder struct {
	announcement models.Announcement
}

// NewAnnouncement creates a new AnnouncementBuilder with sensible defaults.
func NewAnnouncement() *AnnouncementBuilder {
	return &AnnouncementBuilder{
		announcement: models.Announcement{
			ID:          primitive.NewObjectID(),
			AuthorName:  "Test Admin",
			Title:       "Test Announcement",
			Description: "An announcement written by the test suite.",
		},
	}
}

func (b *AnnouncementBuilder) WithTitle(title string) *AnnouncementBuilder {
	b.announcement.Title = title
	return b
}

func (b *AnnouncementBuilder) WithAuthorName(name string) *AnnouncementBuilder {
	b.announcement.AuthorName = name
	return b
}

func (b *AnnouncementBuilder) Build() models.Announcement {
	return b.announcement
}

func (b *AnnouncementBuilder) BuildPtr() *models.Announcement {
	return &b.announcement
}

// ===== Payment Fixtures =====

// PaymentBuilder provides fluent API for building test payments.
type PaymentBuilder struct {
	payment models.Payment
}

// NewPayment creates a new PaymentBuilder with sensible defaults.
func NewPayment() *PaymentBuilder {
	return &PaymentBuilder{
		payment: models.Payment{
			ID:            primitive.NewObjectID(),
			Email:         "test@example.com",
			Price:         10,
			TransactionID: fmt.Sprintf("pi_test_%s", primitive.NewObjectID().Hex()[:8]),
			Date:          time.Now(),
		},
	}
}

func (b *PaymentBuilder) WithEmail(email string) *PaymentBuilder {
	b.payment.Email = email
	return b
}

func (b *PaymentBuilder) WithPrice(price float64) *PaymentBuilder {
	b.payment.Price = price
	return b
}

func (b *PaymentBuilder) WithDate(at time.Time) *PaymentBuilder {
	b.payment.Date = at
	return b
}

func (b *PaymentBuilder) Build() models.Payment {
	return b.payment
}

func (b *PaymentBuilder) BuildPtr() *models.Payment {
	return &b.payment
}
