package service

import (
	"context"
	"time"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/repository/specification"
	"spi-eshop-be/internal/repository/unitofwork"
)

const (
	defaultLogLimit = 50

	// zapcore.ISO8601TimeEncoder output
	logTimeLayout = "2006-01-02T15:04:05.000Z0700"
)

type IAdminService interface {
	GetSystemLogs(ctx context.Context, req *dto.LogQueryRequest) ([]dto.LogListResponse, error)
	GetSystemLogDetail(ctx context.Context, id string) (*dto.LogDetailResponse, error)
	GetChatLogs(ctx context.Context, req *dto.PageRequest, channel string) (*dto.ListResponse[dto.ChatLogResponse], error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *adminService) GetSystemLogs(ctx context.Context, req *dto.LogQueryRequest) ([]dto.LogListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	entries, err := s.logger.GetLogs(req.Level, limit, req.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, logListItem(e))
	}
	return out, nil
}

func (s *adminService) GetSystemLogDetail(ctx context.Context, id string) (*dto.LogDetailResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, notFound("Log not found")
	}
	return &dto.LogDetailResponse{
		LogListResponse: logListItem(*entry),
		Details:         entry.Details,
	}, nil
}

func (s *adminService) GetChatLogs(ctx context.Context, req *dto.PageRequest, channel string) (*dto.ListResponse[dto.ChatLogResponse], error) {
	page, limit := normalizePage(req.Page, req.Limit)

	var filters []specification.Specification
	if channel != "" {
		filters = append(filters, specification.ByChannel{Channel: channel})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.ChatLogRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	logs, err := uow.ChatLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ChatLogResponse, 0, len(logs))
	for _, l := range logs {
		data = append(data, dto.ChatLogResponse{
			Id:          l.Id.String(),
			Channel:     l.Channel,
			UserMessage: l.UserMessage,
			BotResponse: l.BotResponse,
			Department:  l.Department,
			SubCategory: l.SubCategory,
			Suggestions: l.Suggestions,
			Degraded:    l.Degraded,
			SessionId:   l.SessionId,
			CreatedAt:   l.CreatedAt,
		})
	}
	return &dto.ListResponse[dto.ChatLogResponse]{
		Data: data,
		Meta: dto.ListMeta{Total: total, Page: page, Limit: limit},
	}, nil
}

func logListItem(e logger.LogEntry) dto.LogListResponse {
	createdAt, err := time.Parse(logTimeLayout, e.Timestamp)
	if err != nil {
		createdAt, _ = time.Parse(time.RFC3339, e.Timestamp)
	}
	return dto.LogListResponse{
		Id:        e.Id,
		Level:     e.Level,
		Module:    e.Module,
		Message:   e.Message,
		CreatedAt: createdAt,
	}
}
