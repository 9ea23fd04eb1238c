package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	blogDTO "bitsa_backend/internals/features/content/blogs/dto"
	blogModel "bitsa_backend/internals/features/content/blogs/model"
	"bitsa_backend/internals/features/moderation"
	helper "bitsa_backend/internals/helpers"
)

const MsgBlogNotFound = "Blog post not found"

type ListQuery struct {
	Search   string
	Category string
	Offset   int
	Limit    int
}

type BlogService struct {
	DB       *gorm.DB
	Workflow *moderation.Workflow[blogModel.BlogPostModel, *blogModel.BlogPostModel]
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{
		DB: db,
		Workflow: &moderation.Workflow[blogModel.BlogPostModel, *blogModel.BlogPostModel]{
			DB:       db,
			Kind:     "blog",
			NotFound: MsgBlogNotFound,
			Plural:   "blog posts",
			Preload:  []string{"Author"},
		},
	}
}

// ListPublic only ever returns APPROVED posts, newest first.
func (s *BlogService) ListPublic(ctx context.Context, q ListQuery) ([]blogDTO.BlogResponse, int64, error) {
	base := s.DB.WithContext(ctx).Model(&blogModel.BlogPostModel{}).
		Where("status = ?", moderation.StatusApproved)

	if q.Search != "" {
		like := helper.LikePattern(q.Search)
		base = base.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(excerpt) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\')`, like, like, like)
	}
	if q.Category != "" {
		base = base.Where("category = ?", q.Category)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgBlogNotFound)
	}

	blogs := make([]blogModel.BlogPostModel, 0)
	if err := base.Session(&gorm.Session{}).
		Preload("Author").
		Order("created_at DESC").Order("id DESC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&blogs).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgBlogNotFound)
	}
	return blogDTO.FromModels(blogs), total, nil
}

// Categories returns the distinct categories of approved posts.
func (s *BlogService) Categories(ctx context.Context) ([]string, error) {
	cats := make([]string, 0)
	err := s.DB.WithContext(ctx).Model(&blogModel.BlogPostModel{}).
		Where("status = ?", moderation.StatusApproved).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error
	return cats, err
}

func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (blogDTO.BlogResponse, error) {
	b, err := s.Workflow.Find(ctx, id)
	if err != nil {
		return blogDTO.BlogResponse{}, err
	}
	return blogDTO.FromModel(b), nil
}

func (s *BlogService) Create(ctx context.Context, actor moderation.Actor, req *blogDTO.CreateBlogRequest) (blogDTO.BlogResponse, error) {
	status, isAdminPost := moderation.InitialStatus(actor.Role)
	b := req.ToModel(actor.UserID, status, isAdminPost)

	if err := s.DB.WithContext(ctx).Create(b).Error; err != nil {
		return blogDTO.BlogResponse{}, helper.MapDBError(err, "Blog post already exists", "Author not found")
	}
	return s.Get(ctx, b.ID)
}

// Update applies a partial update. Status is never changed by an edit.
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, actor moderation.Actor, req *blogDTO.UpdateBlogRequest) (blogDTO.BlogResponse, error) {
	if _, err := s.Workflow.Authorize(ctx, id, actor, moderation.ActionEdit); err != nil {
		return blogDTO.BlogResponse{}, err
	}
	if updates := req.Updates(); len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&blogModel.BlogPostModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return blogDTO.BlogResponse{}, helper.MapDBError(err, "Blog post already exists", MsgBlogNotFound)
		}
	}
	return s.Get(ctx, id)
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID, actor moderation.Actor) error {
	if _, err := s.Workflow.Authorize(ctx, id, actor, moderation.ActionDelete); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&blogModel.BlogPostModel{}).Error; err != nil {
		return helper.MapDBError(err, "", MsgBlogNotFound)
	}
	return nil
}

// Mine lists the caller's posts in every status, newest first.
func (s *BlogService) Mine(ctx context.Context, userID uuid.UUID, offset, limit int) ([]blogDTO.BlogResponse, int64, error) {
	base := s.DB.WithContext(ctx).Model(&blogModel.BlogPostModel{}).Where("author_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgBlogNotFound)
	}
	blogs := make([]blogModel.BlogPostModel, 0)
	if err := base.Session(&gorm.Session{}).
		Preload("Author").
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&blogs).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "", MsgBlogNotFound)
	}
	return blogDTO.FromModels(blogs), total, nil
}

func (s *BlogService) Pending(ctx context.Context, offset, limit int) ([]blogDTO.BlogResponse, int64, error) {
	blogs, total, err := s.Workflow.Pending(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return blogDTO.FromModels(blogs), total, nil
}

func (s *BlogService) Transition(ctx context.Context, id uuid.UUID, actor moderation.Actor, to moderation.Status) (blogDTO.BlogResponse, error) {
	b, err := s.Workflow.Transition(ctx, id, actor, to)
	if err != nil {
		return blogDTO.BlogResponse{}, err
	}
	return blogDTO.FromModel(b), nil
}
