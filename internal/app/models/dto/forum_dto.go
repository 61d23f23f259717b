package dto

// ForumPost is a discussion forum entry
type ForumPost struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Author    string       `json:"author,omitempty"`
	User      *UserSummary `json:"user,omitempty"`
	CreatedAt string       `json:"createdAt,omitempty"`
	Category  string       `json:"category,omitempty"`
}

// AuthorName returns the best available author label
func (p ForumPost) AuthorName() string {
	if p.User != nil && p.User.Name != "" {
		return p.User.Name
	}
	if p.Author != "" {
		return p.Author
	}
	return "Anonymous"
}

// CategoryName defaults the category to General
func (p ForumPost) CategoryName() string {
	if p.Category == "" {
		return "General"
	}
	return p.Category
}

// CreatePostRequest is the payload for POST /forum
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostForm is the new-post form. Both fields must contain more than whitespace.
type PostForm struct {
	Title   string `form:"title" validate:"notblank,max=200"`
	Content string `form:"content" validate:"notblank,max=10000"`
}
