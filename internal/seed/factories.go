package seed

import (
	"strings"
	"time"

	"blogapi/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	maxTitleLen          = 30
	maxPostContentLen    = 1200
	maxCommentContentLen = 1000
	maxAuthorLen         = 30
)

// Factory builds realistic posts and comments. It does not persist anything.
type Factory struct {
	faker   *gofakeit.Faker
	maxDays int
	now     func() time.Time
}

// NewFactory creates a Factory. A zero seed picks a random one.
func NewFactory(seed int64, maxDays int) *Factory {
	if maxDays <= 0 {
		maxDays = 90
	}
	return &Factory{
		faker:   gofakeit.New(seed),
		maxDays: maxDays,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// BuildPost returns an unsaved post dated somewhere in the last maxDays days.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:        truncate(strings.TrimSuffix(f.faker.Sentence(4), "."), maxTitleLen),
		Content:      truncate(f.faker.Paragraph(2, 3, 12, "\n\n"), maxPostContentLen),
		CreationDate: f.pastDate(f.now()),
	}
	for _, override := range overrides {
		override(post)
	}
	return post
}

// BuildComment returns an unsaved comment on post, dated after the post.
func (f *Factory) BuildComment(post *models.Post, overrides ...func(*models.Comment)) *models.Comment {
	comment := &models.Comment{
		PostID:       post.ID,
		Author:       truncate(f.faker.Name(), maxAuthorLen),
		Content:      truncate(f.faker.Paragraph(1, 2, 10, " "), maxCommentContentLen),
		CreationDate: f.faker.DateRange(post.CreationDate, f.now()).UTC(),
	}
	for _, override := range overrides {
		override(comment)
	}
	return comment
}

func (f *Factory) pastDate(now time.Time) time.Time {
	back := time.Duration(f.faker.Number(0, f.maxDays*24*60)) * time.Minute
	return now.Add(-back).Truncate(time.Second)
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return strings.TrimSpace(string(r[:n]))
}
