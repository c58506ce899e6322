package service

import (
	"context"
	"encoding/json"
	"strings"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/repository/unitofwork"
	"spi-eshop-be/pkg/assistant/query"
	"spi-eshop-be/pkg/assistant/response"
	"spi-eshop-be/pkg/assistant/search"
	"spi-eshop-be/pkg/events"
)

const aiModule = "AI_SERVICE"

type IAIService interface {
	Search(ctx context.Context, req *dto.AISearchRequest) (*dto.AISearchResponse, error)
	Chat(ctx context.Context, req *dto.AIChatRequest) (*dto.AIChatResponse, error)
	Departments() []dto.DepartmentResponse
}

type aiService struct {
	uowFactory       unitofwork.RepositoryFactory
	orchestrator     *search.Orchestrator
	publisherService IPublisherService
	eventPublisher   IEventPublisher
	logger           logger.ILogger
}

func NewAIService(
	uowFactory unitofwork.RepositoryFactory,
	orchestrator *search.Orchestrator,
	publisherService IPublisherService,
	eventPublisher IEventPublisher,
	logger logger.ILogger,
) IAIService {
	return &aiService{
		uowFactory:       uowFactory,
		orchestrator:     orchestrator,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           logger,
	}
}

func (s *aiService) Search(ctx context.Context, req *dto.AISearchRequest) (*dto.AISearchResponse, error) {
	rawQuery := strings.TrimSpace(req.Query)
	res := s.orchestrator.Search(ctx, rawQuery)
	if res.Failure == search.FailureEmptyQuery {
		return nil, badRequest(res.Message)
	}

	out := &dto.AISearchResponse{
		AIChatResponse: toChatResponse(res),
		Products:       []dto.ProductResponse{},
	}

	if res.Success {
		filter := query.BuildFilter(s.orchestrator.Catalog(), response.Response{
			Department:  res.Department,
			SubCategory: res.SubCategory,
		}, rawQuery)

		products, err := s.runSearch(ctx, filter)
		if err != nil {
			s.logger.Error(aiModule, "Product lookup failed", map[string]interface{}{
				"error":      err.Error(),
				"department": filter.Department,
			})
			return nil, err
		}
		out.Products = toProductResponses(products)
	} else {
		out.Suggestions = []string{}
	}

	s.record(ctx, entity.ChannelSearch, rawQuery, res, nil)
	s.eventPublisher.Publish(ctx, events.AISearchPerformed, map[string]interface{}{
		"query":         rawQuery,
		"department":    res.Department,
		"sub_category":  res.SubCategory,
		"product_count": len(out.Products),
		"degraded":      res.Degraded,
	})

	return out, nil
}

// runSearch executes the bounded product lookup for a filter.
func (s *aiService) runSearch(ctx context.Context, filter query.Filter) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx, filter.Specifications()...)
	if err != nil {
		return nil, err
	}
	if len(products) > query.MaxResults {
		products = products[:query.MaxResults]
	}
	return products, nil
}

func (s *aiService) Chat(ctx context.Context, req *dto.AIChatRequest) (*dto.AIChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	res := s.orchestrator.Chat(ctx, message, req.History())
	if res.Failure == search.FailureEmptyQuery {
		return nil, badRequest(res.Message)
	}

	out := toChatResponse(res)
	if !res.Success {
		out.Suggestions = []string{}
	}

	var sessionId *string
	if id := strings.TrimSpace(req.SessionId); id != "" {
		sessionId = &id
	}
	s.record(ctx, entity.ChannelChat, message, res, sessionId)
	s.eventPublisher.Publish(ctx, events.AIChatAnswered, map[string]interface{}{
		"department":   res.Department,
		"sub_category": res.SubCategory,
		"degraded":     res.Degraded,
		"history_size": len(req.ConversationHistory),
	})

	return &out, nil
}

func (s *aiService) Departments() []dto.DepartmentResponse {
	depts := s.orchestrator.Catalog().List()
	out := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, dto.DepartmentResponse{
			Code:          d.Code,
			FullName:      d.FullName,
			SubCategories: d.SubCategories,
		})
	}
	return out
}

// record hands the exchange to the chat log consumer. A failure here never fails the request.
func (s *aiService) record(ctx context.Context, channel, userMessage string, res search.Result, sessionId *string) {
	payload, err := json.Marshal(dto.PublishChatLogMessage{
		Channel:     channel,
		UserMessage: userMessage,
		BotResponse: res.Message,
		Department:  res.Department,
		SubCategory: res.SubCategory,
		Suggestions: res.Suggestions,
		Degraded:    res.Degraded,
		SessionId:   sessionId,
	})
	if err != nil {
		s.logger.Warn(aiModule, "Failed to encode chat log", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn(aiModule, "Failed to publish chat log", map[string]interface{}{"error": err.Error()})
	}
}

func toChatResponse(res search.Result) dto.AIChatResponse {
	suggestions := res.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return dto.AIChatResponse{
		Success:     res.Success,
		Department:  res.Department,
		SubCategory: res.SubCategory,
		Message:     res.Message,
		Suggestions: suggestions,
	}
}
