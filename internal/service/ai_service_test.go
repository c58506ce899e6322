package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/seed"
	"spi-eshop-be/pkg/assistant/search"
	"spi-eshop-be/pkg/department"
	"spi-eshop-be/pkg/events"
	"spi-eshop-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aiFixture struct {
	svc       IAIService
	store     *store
	provider  *scriptedLLM
	publisher *fakePublisher
	events    *fakeEvents
}

func newAIFixture(t *testing.T, provider *scriptedLLM) *aiFixture {
	t.Helper()
	s := &store{}
	require.NoError(t, (&fakeProducts{s}).CreateMany(context.Background(), seed.Products()))

	orch := search.NewOrchestrator(department.Default(), provider, search.Config{
		Timeout:    time.Second,
		MaxRetries: 1,
		Backoff:    time.Millisecond,
	})
	pub := &fakePublisher{}
	evts := &fakeEvents{}
	return &aiFixture{
		svc:       NewAIService(fakeFactory{s}, orch, pub, evts, logger.NewNopLogger()),
		store:     s,
		provider:  provider,
		publisher: pub,
		events:    evts,
	}
}

func TestAIService_SearchFiltersByDepartment(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{
		reply: "```json\n{\"department\":\"Civil\",\"subCategory\":\"materials\",\"suggestions\":[\"Cement Bag (50kg)\"],\"message\":\"Here are building materials.\"}\n```",
	})

	res, err := f.svc.Search(context.Background(), &dto.AISearchRequest{Query: "  I need cement  "})
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.NotNil(t, res.Department)
	assert.Equal(t, "Civil", *res.Department)
	require.NotNil(t, res.SubCategory)
	assert.Equal(t, "Materials", *res.SubCategory)
	assert.Equal(t, []string{"Cement Bag (50kg)"}, res.Suggestions)

	require.Len(t, res.Products, 2)
	for _, p := range res.Products {
		assert.Equal(t, "Civil Technology", p.Department)
		assert.Equal(t, "Materials", p.SubCategory)
	}
	assert.Equal(t, "Steel Reinforcement Bars", res.Products[0].Name, "best rated first")

	assert.Equal(t, []string{events.AISearchPerformed}, f.events.types())
	require.Len(t, f.publisher.payloads, 1)
	var logged dto.PublishChatLogMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &logged))
	assert.Equal(t, entity.ChannelSearch, logged.Channel)
	assert.Equal(t, "I need cement", logged.UserMessage)
}

func TestAIService_SearchTextFallbackWithoutDepartment(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{reply: `{"department":null,"subCategory":null,"suggestions":[],"message":"Could you clarify?"}`})

	res, err := f.svc.Search(context.Background(), &dto.AISearchRequest{Query: "total station"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Nil(t, res.Department)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Total Station", res.Products[0].Name)
}

func TestAIService_SearchBoundsResults(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{reply: `{"department":"CST","message":"CST gear"}`})

	res, err := f.svc.Search(context.Background(), &dto.AISearchRequest{Query: "anything for computers"})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.Products), 10)
	assert.Len(t, res.Products, 7)
}

func TestAIService_BlankInputIsRejectedWithoutUpstreamCall(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{reply: `{"message":"unused"}`})

	_, err := f.svc.Search(context.Background(), &dto.AISearchRequest{Query: "   "})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode())
	assert.Equal(t, search.MsgQueryRequired, reqErr.Message)

	_, err = f.svc.Chat(context.Background(), &dto.AIChatRequest{Message: ""})
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, search.MsgMessageRequired, reqErr.Message)

	assert.Zero(t, f.provider.calls)
	assert.Zero(t, f.store.productFind)
	assert.Empty(t, f.publisher.payloads)
}

func TestAIService_DegradedSearchSkipsLookup(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{err: llm.ErrMissingCredential})

	res, err := f.svc.Search(context.Background(), &dto.AISearchRequest{Query: "multimeter for my lab"})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, search.MsgUnavailable, res.Message)
	assert.Empty(t, res.Products)
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Suggestions)
	assert.Zero(t, f.store.productFind)
	require.Len(t, f.publisher.payloads, 1)
}

func TestAIService_StorageErrorPropagates(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{reply: `{"department":"RAC","message":"RAC parts"}`})
	f.store.findErr = errors.New("connection refused")

	_, err := f.svc.Search(context.Background(), &dto.AISearchRequest{Query: "compressor"})
	require.Error(t, err)
	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr))
	assert.Empty(t, f.events.types())
}

func TestAIService_ChatRecordsSession(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{reply: "Plain prose without any JSON."})

	res, err := f.svc.Chat(context.Background(), &dto.AIChatRequest{
		Message: "Which multimeter should I buy?",
		ConversationHistory: []dto.ConversationTurn{
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "hi"},
		},
		SessionId: "abc-123",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Plain prose without any JSON.", res.Message)
	require.NotNil(t, res.Department)
	assert.Equal(t, "Electronics", *res.Department)
	assert.NotNil(t, res.Suggestions)

	require.Len(t, f.publisher.payloads, 1)
	var logged dto.PublishChatLogMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &logged))
	assert.Equal(t, entity.ChannelChat, logged.Channel)
	require.NotNil(t, logged.SessionId)
	assert.Equal(t, "abc-123", *logged.SessionId)
	assert.Equal(t, []string{events.AIChatAnswered}, f.events.types())
}

func TestAIService_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{reply: `{"message":"ok"}`})
	f.publisher.err = errors.New("bus closed")

	res, err := f.svc.Chat(context.Background(), &dto.AIChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Message)
}

func TestAIService_Departments(t *testing.T) {
	f := newAIFixture(t, &scriptedLLM{})
	depts := f.svc.Departments()
	require.Len(t, depts, 4)
	assert.Equal(t, "CST", depts[0].Code)
	assert.Equal(t, "Computer Science & Technology", depts[0].FullName)
	assert.Contains(t, depts[1].SubCategories, "Materials")
}
