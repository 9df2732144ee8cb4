package articles

import "time"

// CreateArticleRequest carries the author supplied fields of a new article.
// There is deliberately no author field: the author is always the resolved
// current principal, so impersonation at creation time is not expressible.
type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
}

// UpdateArticleRequest carries a partial update. Nil fields leave the
// stored value untouched.
type UpdateArticleRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
}

// Empty reports whether the patch carries no fields at all.
func (r UpdateArticleRequest) Empty() bool {
	return r.Title == nil && r.Description == nil
}

// ArticleResponse is the public representation of an article.
type ArticleResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    int64     `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	Edited      bool      `json:"edited"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewArticleResponse maps an Article to its response payload.
func NewArticleResponse(a Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AuthorID:    a.AuthorID,
		AuthorEmail: a.AuthorEmail,
		Edited:      a.Edited,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewArticleResponses maps a slice of articles.
func NewArticleResponses(list []Article) []ArticleResponse {
	out := make([]ArticleResponse, len(list))
	for i, a := range list {
		out[i] = NewArticleResponse(a)
	}
	return out
}
