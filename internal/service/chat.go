package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SEP491/FitBridge-Chatbot/internal/config"
	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
	"github.com/SEP491/FitBridge-Chatbot/internal/logger"
	"github.com/SEP491/FitBridge-Chatbot/internal/prompts"
	"github.com/SEP491/FitBridge-Chatbot/internal/repository"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ChatRequest is the inbound envelope. The caller owns the history and
// sends the full window it wants considered on every request.
type ChatRequest struct {
	Prompt              string                    `json:"prompt" binding:"required"`
	Longitude           *float64                  `json:"longitude"`
	Latitude            *float64                  `json:"latitude"`
	ConversationHistory []domain.ConversationTurn `json:"conversation_history"`
}

// ChatResponse is the outbound envelope. At most one of Trainers/Gyms
// is populated; both absent means the free-conversation path answered.
type ChatResponse struct {
	PromptResponse      string                    `json:"promptResponse"`
	Trainers            []domain.Trainer          `json:"trainers,omitempty"`
	Gyms                []domain.Gym              `json:"gyms,omitempty"`
	ConversationHistory []domain.ConversationTurn `json:"conversation_history"`
}

type planBranch int

const (
	planNone planBranch = iota
	planTrainer
	planNearbyGym
)

// searchPlan is a cached classification outcome for the two branches
// that depend only on the prompt and coordinates.
type searchPlan struct {
	branch   planBranch
	query    *Query
	radiusKm int
}

// ChatService routes each request through the branch priority chain:
// trainer search, proximity gym search, classified gym search, then
// free conversation. It never returns an error; every failure path
// degrades to a fixed reply.
type ChatService struct {
	repo       *repository.SearchRepository
	completion *CompletionService
	plans      *expirable.LRU[string, *searchPlan]
}

// NewChatService creates the orchestrator.
// Parameters:
//   - repo: read-only store access.
//   - completion: fallback conversation client.
//   - cfg: search tuning (plan cache size and TTL).
// Returns:
//   - *ChatService: service instance.
func NewChatService(repo *repository.SearchRepository, completion *CompletionService, cfg config.SearchConfig) *ChatService {
	size := cfg.CacheSize
	if size <= 0 {
		size = 256
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ChatService{
		repo:       repo,
		completion: completion,
		plans:      expirable.NewLRU[string, *searchPlan](size, nil, ttl),
	}
}

// Chat handles one exchange. The reply contract holds even in total
// failure: a panic anywhere below is caught here and turned into the
// fixed apology, with the history kept coherent.
func (s *ChatService) Chat(ctx context.Context, req ChatRequest) (resp *ChatResponse) {
	prompt := Sanitize(req.Prompt)

	history := make([]domain.ConversationTurn, 0, len(req.ConversationHistory)+2)
	history = append(history, req.ConversationHistory...)
	history = append(history, domain.NewTurn(domain.RoleUser, prompt))

	defer func() {
		if r := recover(); r != nil {
			logger.CtxError(ctx, "Chat recovered: %v", r)
			history = append(history, domain.NewTurn(domain.RoleAssistant, msgSystemError))
			resp = &ChatResponse{
				PromptResponse:      msgSystemError,
				ConversationHistory: history,
			}
		}
	}()

	plan := s.resolvePlan(req)

	switch plan.branch {
	case planTrainer:
		ctx = logger.SetIntent(ctx, "trainer")
		rows, err := s.repo.Execute(ctx, plan.query.SQL, queryArgs(plan.query)...)
		if err != nil {
			logger.CtxWarn(ctx, "Trainer search failed: %v", err)
		}
		if err != nil || len(rows) == 0 {
			return s.reply(history, msgNoTrainers)
		}
		trainers := make([]domain.Trainer, 0, len(rows))
		for _, row := range rows {
			trainers = append(trainers, domain.TrainerFromRow(row))
		}
		logger.With(logger.Fields{logger.FieldCount: len(trainers)}).Info(ctx, "Trainer search completed")
		out := s.reply(history, TrainerReply(trainers))
		out.Trainers = trainers
		return out

	case planNearbyGym:
		ctx = logger.SetIntent(ctx, "gym_nearby")
		rows, err := s.repo.Execute(ctx, plan.query.SQL, queryArgs(plan.query)...)
		if err != nil {
			logger.CtxWarn(ctx, "Nearby gym search failed: %v", err)
		}
		if err != nil || len(rows) == 0 {
			return s.reply(history, msgNoGymsWithin(plan.radiusKm))
		}
		gyms := make([]domain.Gym, 0, len(rows))
		for _, row := range rows {
			gyms = append(gyms, domain.GymFromRow(row))
		}
		logger.With(logger.Fields{logger.FieldCount: len(gyms)}).Info(ctx, "Nearby gym search completed")
		out := s.reply(history, GymReply(gyms))
		out.Gyms = gyms
		return out
	}

	conversationContext := BuildConversationContext(req.ConversationHistory)

	if q := compose(func() *Query { return ComposeGymQueryWithContext(req.Prompt, conversationContext) }); q != nil {
		ctx = logger.SetIntent(ctx, "gym")
		rows, err := s.repo.Execute(ctx, q.SQL, queryArgs(q)...)
		if err != nil {
			logger.CtxWarn(ctx, "Gym search failed: %v", err)
		}
		if err != nil || len(rows) == 0 {
			return s.reply(history, msgNoGyms)
		}
		gyms := make([]domain.Gym, 0, len(rows))
		for _, row := range rows {
			gyms = append(gyms, domain.GymFromRow(row))
		}
		logger.With(logger.Fields{logger.FieldCount: len(gyms)}).Info(ctx, "Gym search completed")
		out := s.reply(history, GymReply(gyms))
		out.Gyms = gyms
		return out
	}

	ctx = logger.SetIntent(ctx, "conversation")
	text, err := s.completion.Complete(ctx, prompts.ConversationPrompt(conversationContext, prompt))
	if err != nil {
		logger.CtxWarn(ctx, "Completion fallback failed: %v", err)
		text = msgSystemError
	}
	return s.reply(history, text)
}

// resolvePlan classifies the prompt for the coordinate-dependent
// branches, with an LRU cache so repeated prompts skip recomposition.
func (s *ChatService) resolvePlan(req ChatRequest) *searchPlan {
	key := planKey(req)
	if plan, ok := s.plans.Get(key); ok {
		return plan
	}

	plan := &searchPlan{branch: planNone}
	point := domain.GeoPointFrom(req.Latitude, req.Longitude)

	if q := compose(func() *Query { return ComposeTrainerQuery(req.Prompt, point) }); q != nil {
		plan = &searchPlan{branch: planTrainer, query: q}
	} else if point != nil && HasProximityCue(req.Prompt, gymNearCues) {
		radius := ResolveRadius(req.Prompt)
		plan = &searchPlan{
			branch:   planNearbyGym,
			query:    ComposeNearbyGymQuery(*point, radius),
			radiusKm: radius,
		}
	}

	s.plans.Add(key, plan)
	return plan
}

// reply appends the assistant turn and wraps the base response.
func (s *ChatService) reply(history []domain.ConversationTurn, text string) *ChatResponse {
	text = Sanitize(text)
	history = append(history, domain.NewTurn(domain.RoleAssistant, text))
	return &ChatResponse{
		PromptResponse:      text,
		ConversationHistory: history,
	}
}

// compose runs a query composer, degrading any panic to "no query".
// Classification failures never propagate past their branch.
func compose(fn func() *Query) (q *Query) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Query composition failed: %v", r)
			q = nil
		}
	}()
	return fn()
}

func planKey(req ChatRequest) string {
	lat, lng := "-", "-"
	if req.Latitude != nil {
		lat = fmt.Sprintf("%.5f", *req.Latitude)
	}
	if req.Longitude != nil {
		lng = fmt.Sprintf("%.5f", *req.Longitude)
	}
	return req.Prompt + "|" + lat + "|" + lng
}

func queryArgs(q *Query) []interface{} {
	if len(q.Args) == 0 {
		return nil
	}
	return []interface{}{q.Args}
}
