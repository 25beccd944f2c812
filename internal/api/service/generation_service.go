package service

import (
	"blockgen"
	"blockgen/internal/api/models"
	"blockgen/internal/api/repo"
	"blockgen/internal/blocks"
	"blockgen/internal/gen"
	"blockgen/internal/realtime"
	"blockgen/pkg"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidWorkspace = errors.New("invalid workspace")
	ErrGenerationFailed = errors.New("generation failed")
)

// Cache stores generated code between requests.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// EventPublisher announces stored-project generations.
type EventPublisher interface {
	PublishGenerated(event realtime.GeneratedEvent) error
}

type GenerationResult struct {
	Code       string `json:"code"`
	Checksum   string `json:"checksum"`
	Cached     bool   `json:"cached"`
	DurationMs int64  `json:"durationMs"`
}

type GenerationService struct {
	generationRepo *repo.GenerationRepository
	cache          Cache
	publisher      EventPublisher
	config         blockgen.GeneratorConfig
	cacheTTL       time.Duration
	logger         zerolog.Logger
}

// NewGenerationService wires the service to the global Redis and NATS
// connections. Either may be nil.
func NewGenerationService() *GenerationService {
	cfg := blockgen.GetConfig()
	s := NewGenerationServiceWith(cfg.Generator, nil, nil, blockgen.Logger)
	s.generationRepo = repo.NewGenerationRepository()
	s.cacheTTL = time.Duration(cfg.RedisConfig.CacheTTL) * time.Minute
	if blockgen.Redis != nil {
		s.cache = pkg.NewRedisCache(blockgen.Redis)
	}
	if blockgen.NATS != nil {
		s.publisher = realtime.NewPublisher(blockgen.NATS, cfg.NatsConfig.SubjectPrefix, blockgen.Logger)
	}
	return s
}

// NewGenerationServiceWith builds a service without persistence. cache and
// publisher may be nil.
func NewGenerationServiceWith(cfg blockgen.GeneratorConfig, cache Cache, publisher EventPublisher, logger zerolog.Logger) *GenerationService {
	return &GenerationService{
		cache:     cache,
		publisher: publisher,
		config:    cfg,
		cacheTTL:  30 * time.Minute,
		logger:    logger,
	}
}

func (slf *GenerationService) generator() *gen.Generator {
	opts := []gen.Option{
		gen.WithLogger(slf.logger),
		gen.WithReservedWords(slf.config.ReservedWords...),
	}
	if slf.config.Indent != "" {
		opts = append(opts, gen.WithIndent(slf.config.Indent))
	}
	if slf.config.StrictHelpers {
		opts = append(opts, gen.WithStrictHelpers())
	}
	return gen.NewGenerator(opts...)
}

// Checksum identifies a workspace document under a set of options.
func Checksum(data []byte, oneBased bool) string {
	h := sha256.New()
	h.Write(data)
	h.Write([]byte("|oneBased=" + strconv.FormatBool(oneBased)))
	return hex.EncodeToString(h.Sum(nil))
}

// Generate turns a Blockly JSON document into code. oneBased overrides the
// configured index mode when set.
func (slf *GenerationService) Generate(ctx context.Context, data []byte, oneBased *bool) (GenerationResult, error) {
	start := time.Now()
	base := pkg.FromPtrOr(oneBased, slf.config.OneBasedIndex)
	checksum := Checksum(data, base)
	key := "gen:" + checksum

	if slf.cache != nil {
		var code string
		err := slf.cache.Get(ctx, key, &code)
		switch {
		case err == nil:
			return GenerationResult{Code: code, Checksum: checksum, Cached: true, DurationMs: time.Since(start).Milliseconds()}, nil
		case !pkg.IsRedisNil(err):
			slf.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
	}

	ws, err := models.DecodeWorkspace(data, models.WithInputClassifier(blocks.DefaultRegistry))
	if err != nil {
		return GenerationResult{Checksum: checksum}, fmt.Errorf("%w: %w", ErrInvalidWorkspace, err)
	}
	ws.Options.OneBasedIndex = ws.Options.OneBasedIndex || base

	code, err := slf.generator().Generate(ws)
	if err != nil {
		slf.logger.Info().Err(err).Str("checksum", checksum).Msg("Generation rejected workspace")
		return GenerationResult{Checksum: checksum}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if slf.cache != nil {
		if err := slf.cache.Set(ctx, key, code, slf.cacheTTL); err != nil {
			slf.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
		}
	}

	return GenerationResult{Code: code, Checksum: checksum, DurationMs: time.Since(start).Milliseconds()}, nil
}

// GenerateProject generates the stored workspace, records the outcome and
// publishes it. A rejected workspace is recorded too and returned as error.
func (slf *GenerationService) GenerateProject(ctx context.Context, project models.Project, userID string) (models.Generation, error) {
	result, genErr := slf.Generate(ctx, project.Workspace, nil)
	if genErr != nil && !errors.Is(genErr, ErrGenerationFailed) && !errors.Is(genErr, ErrInvalidWorkspace) {
		return models.Generation{}, genErr
	}

	record := models.Generation{
		ProjectID:  project.ID,
		Checksum:   result.Checksum,
		Code:       result.Code,
		DurationMs: result.DurationMs,
	}
	if genErr != nil {
		record.Error = genErr.Error()
	}
	if err := slf.generationRepo.Create(&record); err != nil {
		slf.logger.Error().Err(err).Str("projectId", project.ID.String()).Msg("Error recording generation")
		return models.Generation{}, err
	}

	if slf.publisher != nil {
		event := realtime.GeneratedEvent{
			ProjectID:    project.ID.String(),
			GenerationID: record.ID,
			UserID:       userID,
			Checksum:     record.Checksum,
			Code:         record.Code,
			Error:        record.Error,
			DurationMs:   record.DurationMs,
			CreatedAt:    record.CreatedAt,
		}
		if err := slf.publisher.PublishGenerated(event); err != nil {
			slf.logger.Warn().Err(err).Str("projectId", project.ID.String()).Msg("Failed to publish generation")
		}
	}

	slf.logger.Info().Str("projectId", project.ID.String()).Uint("generationId", record.ID).Msg("Project generated")
	return record, genErr
}

// History returns the latest generations of a project.
func (slf *GenerationService) History(projectID uuid.UUID, limit int) ([]models.Generation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	generations, err := slf.generationRepo.FindLatestByProject(projectID, limit)
	if err != nil {
		slf.logger.Error().Err(err).Str("projectId", projectID.String()).Msg("Error listing generations")
		return nil, err
	}
	return generations, nil
}
