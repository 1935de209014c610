package service

import (
	"context"
	"time"

	"forum-api/internal/cache"
	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recentPostsLimit is how many posts the public author feed returns.
const recentPostsLimit = 3

// PostService handles business logic for post operations, including the
// membership-gated post quota.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cache    cache.Cache
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, cache cache.Cache) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// ListPosts returns posts filtered by tag substring and sorted by recency or
// popularity.
func (s *PostService) ListPosts(ctx context.Context, query *models.PostListQuery) ([]models.Post, error) {
	sortOption := query.SortOption
	if sortOption == "" {
		sortOption = models.SortLatest
	}

	return s.postRepo.List(ctx, sortOption, query.SearchTerm)
}

// GetPost retrieves a single post by ID.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPostNotFound
	}

	return s.postRepo.FindByID(ctx, objectID)
}

// CreatePost creates a post for the authenticated user, enforcing the quota
// policy: Gold members post without limit, everyone else is capped at the
// free post limit. The quota reservation is atomic; a failed insert releases
// it again.
func (s *PostService) CreatePost(ctx context.Context, email string, req *models.CreatePostRequest) (*models.Post, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.ReserveQuota(ctx, email); err != nil {
		return nil, err
	}

	author := models.PostAuthor{
		Name:  req.AuthorName,
		Email: email,
		Image: req.AuthorImage,
	}
	if author.Name == "" {
		author.Name = user.Name
	}
	if author.Image == "" {
		author.Image = user.Image
	}

	post := &models.Post{
		Author:      author,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Time:        time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		// The reservation already bumped postCount; undo it so a failed
		// insert does not consume quota.
		_ = s.userRepo.ReleaseQuota(ctx, email)
		return nil, err
	}

	// Invalidate cached membership, its postCount is now stale
	_ = s.cache.Delete(ctx, cache.MembershipCacheKey(email))

	return post, nil
}

// SetVotes overwrites a post's vote counters.
func (s *PostService) SetVotes(ctx context.Context, id string, req *models.UpdateVotesRequest) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrPostNotFound
	}

	return s.postRepo.SetVotes(ctx, objectID, req.UpVote, req.DownVote)
}

// IncrementComments increments a post's comment counter.
func (s *PostService) IncrementComments(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrPostNotFound
	}

	return s.postRepo.IncrementComments(ctx, objectID)
}

// RecentPostsByAuthor returns an author's three most recent posts.
func (s *PostService) RecentPostsByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	return s.postRepo.FindByAuthor(ctx, email, recentPostsLimit)
}

// PostsByAuthor returns all of an author's posts, newest first.
func (s *PostService) PostsByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	return s.postRepo.FindByAuthor(ctx, email, 0)
}

// DeletePost removes a post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrPostNotFound
	}

	return s.postRepo.Delete(ctx, objectID)
}
