// Package tutor answers student questions through a language model.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/llm"
)

// ErrEmptyQuestion is returned for a blank question.
var ErrEmptyQuestion = errors.New("question is empty")

// Service answers chat questions.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates a tutor. A nil provider gives an offline tutor that
// only returns canned guidance.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log.Named("tutor")}
}

// Available reports whether a model is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Model returns the configured model id, or "" when offline.
func (s *Service) Model() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.ModelID()
}

type replyOutput struct {
	Reply  string   `json:"reply"`
	Topics []string `json:"topics"`
}

// Reply answers question in the context of conv. Without a provider it
// returns Offline guidance and no error.
func (s *Service) Reply(ctx context.Context, conv Conversation, question string) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Answer{}, ErrEmptyQuestion
	}
	if s.provider == nil {
		return s.Offline(conv), nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeTutorChat)
	req := llm.Request{
		System:      buildSystemPrompt(conv.Subject),
		Messages:    buildMessages(conv.Turns, question, s.cfg.HistoryTurns),
		Schema:      ReplySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.log.Warn("tutor reply failed", zap.String("subject", conv.SubjectID()), zap.Error(err))
		return Answer{}, fmt.Errorf("tutor reply: %w", err)
	}

	var out replyOutput
	if err := resp.Decode(&out); err != nil {
		return Answer{}, fmt.Errorf("parse tutor reply: %w", err)
	}

	return Answer{
		Text:   strings.TrimSpace(out.Reply),
		Topics: cleanTopics(out.Topics),
	}, nil
}

// Offline returns canned guidance for when no model is configured.
func (s *Service) Offline(conv Conversation) Answer {
	var b strings.Builder
	b.WriteString("The AI tutor is offline. Set TUTORDESK_LLM_PROVIDER and the matching API key to enable it.")
	if conv.Subject != nil {
		topic := catalog.CurrentTopic(*conv.Subject)
		fmt.Fprintf(&b, " Meanwhile, review %s in %s or take a practice quiz.", topic, conv.Subject.Name)
		return Answer{Text: b.String(), Topics: []string{topic}, Offline: true}
	}
	b.WriteString(" Meanwhile, pick a subject from the dashboard or take the daily practice quiz.")
	return Answer{Text: b.String(), Offline: true}
}

// cleanTopics trims, drops blanks and dedupes case-insensitively, keeping
// the first spelling.
func cleanTopics(topics []string) []string {
	seen := make(map[string]bool, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// Topics returns the distinct topics covered across the given answers in
// first-seen order.
func Topics(answers []Answer) []string {
	var all []string
	for _, a := range answers {
		all = append(all, a.Topics...)
	}
	return cleanTopics(all)
}
