package discussion

import (
	"time"
)

// Discussion representa uma discussão publicada na comunidade
type Discussion struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags"`
	IsApproved   bool      `json:"is_approved"`
	IsHidden     bool      `json:"is_hidden"`
	LikeCount    int       `json:"like_count"`
	ReplyCount   int       `json:"reply_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsVisible verifica se a discussão pode ser exibida publicamente
func (d *Discussion) IsVisible() bool {
	return d.IsApproved && !d.IsHidden
}

// Tag representa uma tag do vocabulário de discussões
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
