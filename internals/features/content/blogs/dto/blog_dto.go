package dto

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	blogModel "bitsa_backend/internals/features/content/blogs/model"
	"bitsa_backend/internals/features/moderation"
	userDTO "bitsa_backend/internals/features/users/user/dto"
	helper "bitsa_backend/internals/helpers"
)

const excerptMaxRunes = 200

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateBlogRequest struct {
	Title     string  `json:"title" validate:"required,max=200"`
	Content   string  `json:"content" validate:"required"`
	Excerpt   string  `json:"excerpt" validate:"max=500"`
	Thumbnail *string `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Category  string  `json:"category" validate:"required,max=80"`
}

func (r *CreateBlogRequest) Normalize() {
	r.Title = helper.PlainText(r.Title)
	r.Content = helper.RichText(r.Content)
	r.Excerpt = helper.PlainText(r.Excerpt)
	if r.Excerpt == "" {
		r.Excerpt = DeriveExcerpt(r.Content)
	}
	if r.Thumbnail != nil {
		v := strings.TrimSpace(*r.Thumbnail)
		r.Thumbnail = &v
		if v == "" {
			r.Thumbnail = nil
		}
	}
	r.Category = helper.PlainText(r.Category)
}

func (r *CreateBlogRequest) ToModel(authorID uuid.UUID, status moderation.Status, isAdminPost bool) *blogModel.BlogPostModel {
	return &blogModel.BlogPostModel{
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		Thumbnail:   r.Thumbnail,
		Category:    r.Category,
		AuthorID:    authorID,
		Status:      status,
		IsAdminPost: isAdminPost,
	}
}

// UpdateBlogRequest: only provided, non-empty fields change. An empty thumbnail clears it.
type UpdateBlogRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content   *string `json:"content,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Thumbnail *string `json:"thumbnail,omitempty" validate:"omitempty,url|len=0"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=80"`
}

func (r *UpdateBlogRequest) Normalize() {
	clean := func(p *string, f func(string) string) *string {
		if p == nil {
			return nil
		}
		v := f(*p)
		return &v
	}
	r.Title = clean(r.Title, helper.PlainText)
	r.Content = clean(r.Content, helper.RichText)
	r.Excerpt = clean(r.Excerpt, helper.PlainText)
	r.Thumbnail = clean(r.Thumbnail, strings.TrimSpace)
	r.Category = clean(r.Category, helper.PlainText)
}

func (r *UpdateBlogRequest) Updates() map[string]any {
	m := map[string]any{}
	set := func(col string, p *string) {
		if p != nil && *p != "" {
			m[col] = *p
		}
	}
	set("title", r.Title)
	set("content", r.Content)
	set("excerpt", r.Excerpt)
	set("category", r.Category)
	if r.Thumbnail != nil {
		if *r.Thumbnail == "" {
			m["thumbnail"] = nil
		} else {
			m["thumbnail"] = *r.Thumbnail
		}
	}
	return m
}

// DeriveExcerpt takes the leading plain text of the content, cut on a word boundary.
func DeriveExcerpt(content string) string {
	text := strings.Join(strings.Fields(helper.PlainText(content)), " ")
	if utf8.RuneCountInString(text) <= excerptMaxRunes {
		return text
	}
	runes := []rune(text)[:excerptMaxRunes]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > excerptMaxRunes/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "..."
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type BlogResponse struct {
	ID          uuid.UUID               `json:"id"`
	Title       string                  `json:"title"`
	Content     string                  `json:"content"`
	Excerpt     string                  `json:"excerpt"`
	Thumbnail   *string                 `json:"thumbnail"`
	Category    string                  `json:"category"`
	Status      moderation.Status       `json:"status"`
	IsAdminPost bool                    `json:"isAdminPost"`
	AuthorID    uuid.UUID               `json:"authorId"`
	Author      *userDTO.AuthorResponse `json:"author,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func FromModel(b *blogModel.BlogPostModel) BlogResponse {
	return BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Content:     b.Content,
		Excerpt:     b.Excerpt,
		Thumbnail:   b.Thumbnail,
		Category:    b.Category,
		Status:      b.Status,
		IsAdminPost: b.IsAdminPost,
		AuthorID:    b.AuthorID,
		Author:      userDTO.AuthorFromModel(&b.Author),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromModels(blogs []blogModel.BlogPostModel) []BlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		out = append(out, FromModel(&blogs[i]))
	}
	return out
}
