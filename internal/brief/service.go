package brief

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmertens/daybrief/internal/feeds"
	"github.com/jmertens/daybrief/internal/prompt"
)

// InterestSource supplies the enabled interest topics
type InterestSource interface {
	EnabledTopics() ([]string, error)
}

// FeedFetcher gathers current headlines for a topic
type FeedFetcher interface {
	FetchLatest(ctx context.Context, topic string, limit int) ([]feeds.Item, error)
}

// Generator turns the rendered prompt into Markdown briefing text
type Generator interface {
	GenerateBriefing(ctx context.Context, systemMessage, prompt string) (string, error)
}

// Service assembles the daily brief for a single request. It holds no
// mutable state; every Build call is an independent fetch-and-generate
// cycle bounded by the request context.
type Service struct {
	interests InterestSource
	feeds     FeedFetcher
	prompts   *prompt.Manager
	generator Generator
	logger    *slog.Logger
	itemLimit int
	timeout   time.Duration
}

// NewService creates a brief assembly service
func NewService(interests InterestSource, fetcher FeedFetcher, prompts *prompt.Manager, generator Generator, logger *slog.Logger, itemLimit int, timeout time.Duration) *Service {
	return &Service{
		interests: interests,
		feeds:     fetcher,
		prompts:   prompts,
		generator: generator,
		logger:    logger,
		itemLimit: itemLimit,
		timeout:   timeout,
	}
}

// Build assembles the brief. Failures never escape as errors; they are
// folded into a status=error Brief with a human-readable message.
func (s *Service) Build(ctx context.Context) Brief {
	now := time.Now().UTC()
	briefID := uuid.New().String()
	title := "Daily Brief for " + now.Format("Monday, January 2")

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	topics, err := s.interests.EnabledTopics()
	if err != nil {
		s.logger.Error("Failed to load interests", "brief_id", briefID, "error", err.Error())
		return errorBrief(title, now, "Could not read your interests. Please check the interests page and try again.")
	}
	if len(topics) == 0 {
		return errorBrief(title, now, "No interests are enabled. Visit the interests page to choose some topics first.")
	}

	headlines := s.gatherHeadlines(ctx, briefID, topics)
	promptText := s.prompts.Render(headlines)

	text, err := s.generator.GenerateBriefing(ctx, s.prompts.SystemMessage(), promptText)
	if err != nil {
		s.logger.Error("Brief generation failed", "brief_id", briefID, "error", err.Error())
		if errors.Is(err, context.DeadlineExceeded) {
			return errorBrief(title, now, "The briefing request took too long and timed out. Please try again.")
		}
		return errorBrief(title, now, "Briefing generation failed: "+err.Error())
	}

	s.logger.Info("Brief generated", "brief_id", briefID, "topics", len(topics), "chars", len(text))
	return Brief{
		Title:        title,
		Status:       StatusSuccess,
		Timestamp:    now,
		BriefingText: text,
	}
}

// gatherHeadlines fetches headlines per topic and renders them as the
// prompt context block. Unreachable feeds degrade to a per-topic note
// rather than failing the brief.
func (s *Service) gatherHeadlines(ctx context.Context, briefID string, topics []string) string {
	var b strings.Builder
	for _, topic := range topics {
		items, err := s.feeds.FetchLatest(ctx, topic, s.itemLimit)
		if err != nil {
			s.logger.Warn("Feed fetch failed", "brief_id", briefID, "topic", topic, "error", err.Error())
		}

		fmt.Fprintf(&b, "Topic: %s\n", topic)
		if len(items) == 0 {
			b.WriteString("- no current headlines found\n")
		}
		for _, item := range items {
			fmt.Fprintf(&b, "- %s (%s)\n", item.Title, item.Link)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func errorBrief(title string, ts time.Time, message string) Brief {
	return Brief{
		Title:        title,
		Status:       StatusError,
		Timestamp:    ts,
		ErrorMessage: message,
	}
}
