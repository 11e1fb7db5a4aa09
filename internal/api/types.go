package api

import (
	"time"

	"github.com/airiskcouncil/arcctl/internal/authz"
)

// User is a council member as returned by the API.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         authz.Role `json:"role"`
	Organisation string     `json:"organisation,omitempty"`
	Approved     bool       `json:"approved"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Event is a council event (summit, webinar, working group session).
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `json:"capacity"`
	Registered  bool      `json:"registered"`
}

// NewsItem is a published news article.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

// Question is a Q&A forum question.
type Question struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	Votes       int       `json:"votes"`
	AnswerCount int       `json:"answer_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Answer is a reply to a question.
type Answer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Body       string    `json:"body"`
	Author     string    `json:"author"`
	Votes      int       `json:"votes"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuestionDetail is a question together with its answers.
type QuestionDetail struct {
	Question Question `json:"question"`
	Answers  []Answer `json:"answers"`
}

// Resource is a downloadable asset: framework documents, whitepapers,
// and product listings.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Resource types understood by the backend.
const (
	ResourceTypeFramework  = "framework"
	ResourceTypeWhitepaper = "whitepaper"
	ResourceTypeProduct    = "product"
)

// TeamMember is a council team or board member.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
	Order    int    `json:"order"`
}

// Filter keys accepted by the list endpoints.
const (
	FilterTab      = "tab"
	FilterCategory = "category"
	FilterSearch   = "search"
	FilterTags     = "tags"
	FilterType     = "type"
	FilterStatus   = "status"
	FilterRole     = "role"
)
