package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edusuite_backend/internals/features/ai/assistant/dto"
	"edusuite_backend/internals/features/ai/assistant/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/tenant"
)

const (
	cacheWriteTimeout = 5 * time.Second
	// generation outlives the default request deadline
	generateTimeout = 30 * time.Second
)

var (
	ErrQuestionRequired = helper.ErrBadRequest("Question is required")
	ErrNotConfigured    = errors.New("AI provider is not configured")
)

// Generator is the generative-model call the assistant depends on.
type Generator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// AIError marks provider failures; the controller renders it as "Internal AI Error".
type AIError struct{ Err error }

func (e *AIError) Error() string { return e.Err.Error() }
func (e *AIError) Unwrap() error { return e.Err }

type AssistantService struct {
	db   *gorm.DB
	gen  Generator
	docs *tenant.Repo[model.SchoolDocModel]

	pending sync.WaitGroup
}

func NewAssistantService(db *gorm.DB, gen Generator) *AssistantService {
	return &AssistantService{
		db:   db,
		gen:  gen,
		docs: tenant.NewRepo[model.SchoolDocModel](db, "Document"),
	}
}

func (s *AssistantService) Ask(ctx context.Context, scope helperAuth.Scope, req dto.AskRequest) (*dto.AIResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrQuestionRequired
	}
	hash := HashQuery(req.Question, req.Options)

	if hit, ok := s.lookup(ctx, scope, hash); ok {
		hit.Cached = true
		return hit, nil
	}

	var (
		snippets string
		docIDs   []string
	)
	if kw := Keywords(req.Question); len(kw) > 0 {
		docs, err := s.searchDocs(ctx, scope, kw)
		if err != nil {
			log.Warn().Err(err).Msg("assistant: doc search failed, answering without context")
		}
		snippets = BuildContext(docs)
		for _, d := range docs {
			docIDs = append(docIDs, d.ID.String())
		}
	}

	if s.gen == nil {
		return nil, &AIError{Err: ErrNotConfigured}
	}
	genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), generateTimeout)
	defer cancel()
	raw, err := s.gen.Generate(genCtx, BuildPrompt(req.Question, snippets, req.ImageNeeded()), SystemPrompt)
	if err != nil {
		return nil, &AIError{Err: err}
	}

	resp := ParseResponse(raw)
	resp.Sources = append(resp.Sources, docIDs...)
	resp.Cached = false

	s.storeAsync(scope.Key(), hash, req.Question, resp)
	return &resp, nil
}

func (s *AssistantService) lookup(ctx context.Context, scope helperAuth.Scope, hash string) (*dto.AIResponse, bool) {
	var row model.AICacheModel
	err := s.db.WithContext(ctx).
		Where("cache_scope = ? AND query_hash = ?", scope.Key(), hash).
		Take(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Msg("assistant: cache lookup failed")
		}
		return nil, false
	}
	var out dto.AIResponse
	if err := sonic.Unmarshal(row.ResponseJSON, &out); err != nil {
		log.Warn().Err(err).Str("hash", hash).Msg("assistant: unreadable cache entry")
		return nil, false
	}
	if out.Sources == nil {
		out.Sources = []string{}
	}
	return &out, true
}

func (s *AssistantService) searchDocs(ctx context.Context, scope helperAuth.Scope, keywords []string) ([]model.SchoolDocModel, error) {
	conds := make([]string, 0, len(keywords)*2)
	args := make([]any, 0, len(keywords)*2)
	for _, k := range keywords {
		like := "%" + k + "%"
		conds = append(conds, "LOWER(content) LIKE ?", "LOWER(title) LIKE ?")
		args = append(args, like, like)
	}
	var docs []model.SchoolDocModel
	err := s.docs.Query(ctx, nil, scope).
		Where("("+strings.Join(conds, " OR ")+")", args...).
		Order("updated_at DESC").
		Limit(maxContextDocs).
		Find(&docs).Error
	return docs, err
}

// storeAsync writes the cache entry off the request path.
func (s *AssistantService) storeAsync(cacheScope, hash, question string, resp dto.AIResponse) {
	body, err := sonic.Marshal(resp)
	if err != nil {
		log.Warn().Err(err).Msg("assistant: encode cache entry")
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		row := model.AICacheModel{
			CacheScope:   cacheScope,
			QueryHash:    hash,
			QueryText:    question,
			ResponseJSON: datatypes.JSON(body),
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_scope"}, {Name: "query_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"query_text", "response_json"}),
		}).Create(&row).Error
		if err != nil {
			log.Warn().Err(err).Str("hash", hash).Msg("assistant: failed to cache AI response")
		}
	}()
}

// Flush waits for in-flight cache writes.
func (s *AssistantService) Flush() {
	s.pending.Wait()
}

// PruneCache deletes entries created before cutoff.
func (s *AssistantService) PruneCache(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.AICacheModel{})
	return res.RowsAffected, res.Error
}

/* ============================
   Retrieval corpus
============================ */

func (s *AssistantService) ListDocs(ctx context.Context, scope helperAuth.Scope, p helper.Paging) ([]model.SchoolDocModel, int64, error) {
	return s.docs.List(ctx, scope, p, "updated_at DESC")
}

func (s *AssistantService) CreateDoc(ctx context.Context, scope helperAuth.Scope, req dto.CreateDocRequest) (*model.SchoolDocModel, error) {
	m := model.SchoolDocModel{Title: strings.TrimSpace(req.Title), Content: req.Content}
	if err := s.docs.Create(ctx, nil, scope, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *AssistantService) DeleteDoc(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) error {
	return s.docs.Delete(ctx, nil, scope, id)
}
