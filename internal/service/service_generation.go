package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/meme-forge/internal/adapter"
	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/prompt"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/internal/validators"
	"github.com/MKhiriev/meme-forge/models"
)

const tracerName = "github.com/MKhiriev/meme-forge/internal/service"

// generationService runs Resolving → QuotaCheck → Synthesizing →
// Generating → Persisting → Done. Each step is a child span of the
// "generation.Generate" span.
type generationService struct {
	validator   validators.Validator
	resolver    IdentityResolver
	quota       QuotaLedger
	characters  store.CharacterRepository
	assets      store.AssetRepository
	generations store.GenerationRepository
	backend     adapter.ImageBackend
	persister   ImagePersister

	backendTimeout time.Duration
	persistTimeout time.Duration
	quality        string

	clock  utils.Clock
	tracer trace.Tracer
	logger *logger.Logger
}

func NewGenerationService(
	storages *store.Storages,
	resolver IdentityResolver,
	quota QuotaLedger,
	backend adapter.ImageBackend,
	persister ImagePersister,
	validator validators.Validator,
	cfg config.Adapter,
	clock utils.Clock,
	logger *logger.Logger,
) GenerationService {
	return &generationService{
		validator:      validator,
		resolver:       resolver,
		quota:          quota,
		characters:     storages.CharacterRepository,
		assets:         storages.AssetRepository,
		generations:    storages.GenerationRepository,
		backend:        backend,
		persister:      persister,
		backendTimeout: cfg.ImageBackend.Timeout,
		persistTimeout: cfg.PersistTimeout,
		quality:        cfg.ImageBackend.Quality,
		clock:          clock,
		tracer:         otel.Tracer(tracerName),
		logger:         logger,
	}
}

// Generate authorizes the caller, synthesizes the prompt, calls the image
// backend and records the generation.
//
// Rejections wrap ErrInvalidInput, ErrUnidentifiable, ErrQuotaExceeded (as
// *QuotaExceededError) or ErrBackendFailure. Quota is consumed only when the
// generation was recorded.
func (g *generationService) Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResult, error) {
	ctx, span := g.tracer.Start(ctx, "generation.Generate")
	defer span.End()

	log := logger.FromContext(ctx)

	if err := g.validator.Validate(ctx, req); err != nil {
		return models.GenerateResult{}, failSpan(span, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	// Resolving
	identity, err := g.resolve(ctx, req.Identity)
	if err != nil {
		return models.GenerateResult{}, failSpan(span, err)
	}
	span.SetAttributes(
		attribute.String("identity.class", identity.IdentityClass()),
		attribute.Int("quota.limit", identity.DailyLimit),
	)

	// QuotaCheck
	used, err := g.checkQuota(ctx, identity)
	if err != nil {
		return models.GenerateResult{}, failSpan(span, err)
	}

	// Synthesizing
	spec := g.promptSpec(ctx, req, identity)
	enhancedPrompt := g.synthesize(ctx, spec)

	// Generating
	sourceURL, err := g.generateImage(ctx, enhancedPrompt, spec.Format.Size())
	if err != nil {
		return models.GenerateResult{}, failSpan(span, err)
	}

	// Persisting
	imageURL, stored := g.persist(ctx, identity.UserID, sourceURL)

	// Done
	now := g.clock.Now()
	meme := models.Meme{
		UserID:          identity.UserID,
		CharacterID:     characterIDOf(spec, req),
		Prompt:          req.Prompt,
		EnhancedPrompt:  enhancedPrompt,
		ImageURL:        imageURL,
		SourceURL:       sourceURL,
		Stored:          stored,
		Format:          spec.Format.String(),
		BrandColor1:     spec.BrandColors.Primary,
		BrandColor2:     spec.BrandColors.Secondary,
		LogoDescription: spec.LogoContext,
		CreatedAt:       now,
	}

	_, meme, err = g.record(ctx, models.NewGenerationEvent(identity, now), meme)
	if err != nil {
		return models.GenerateResult{}, failSpan(span, err)
	}

	result := models.GenerateResult{
		MemeID:              meme.ID,
		ImageURL:            imageURL,
		RemainingQuota:      max(identity.DailyLimit-used-1, 0),
		PersistenceDegraded: !stored,
		EnhancedPrompt:      enhancedPrompt,
	}

	log.Info().
		Str("identity", identity.Key.String()).
		Int64("meme_id", meme.ID).
		Int("remaining", result.RemainingQuota).
		Bool("persistence_degraded", result.PersistenceDegraded).
		Msg("generation completed")

	return result, nil
}

func (g *generationService) resolve(ctx context.Context, req models.IdentityRequest) (models.Identity, error) {
	ctx, span := g.tracer.Start(ctx, "generation.resolve")
	defer span.End()

	identity, err := g.resolver.Resolve(ctx, req)
	if err != nil {
		return models.Identity{}, failSpan(span, err)
	}

	logger.FromContext(ctx).Debug().
		Str("identity", identity.Key.String()).
		Bool("registered", identity.IsRegistered).
		Msg("caller resolved")

	return identity, nil
}

func (g *generationService) checkQuota(ctx context.Context, identity models.Identity) (int, error) {
	ctx, span := g.tracer.Start(ctx, "generation.quota")
	defer span.End()

	used, err := g.quota.Check(ctx, identity)
	span.SetAttributes(attribute.Int("quota.used", used))
	if err != nil {
		return used, failSpan(span, err)
	}

	logger.FromContext(ctx).Debug().
		Int("used", used).
		Int("limit", identity.DailyLimit).
		Msg("quota admitted")

	return used, nil
}

// promptSpec collects the prompt inputs. Characters and assets are resolved
// for their registered owner only; anything else is ignored with a warning.
func (g *generationService) promptSpec(ctx context.Context, req models.GenerateRequest, identity models.Identity) models.PromptSpec {
	log := logger.FromContext(ctx)

	spec := models.PromptSpec{
		UserPrompt:  req.Prompt,
		Style:       models.ParseStyle(req.Style),
		Format:      models.ParseFormat(req.Format),
		BrandColors: models.BrandColors{Primary: req.BrandColor1, Secondary: req.BrandColor2},
		LogoContext: req.LogoDescription,
	}

	if req.CharacterID == nil && len(req.AssetIDs) == 0 {
		return spec
	}
	if !identity.IsRegistered {
		log.Warn().Msg("characters and assets require a registered caller, ignoring")
		return spec
	}

	if req.CharacterID != nil {
		character, err := g.characters.FindCharacterByID(ctx, *req.CharacterID)
		switch {
		case err != nil:
			log.Warn().Err(err).Int64("character_id", *req.CharacterID).Msg("character not usable, ignoring")
		case character.UserID != *identity.UserID:
			log.Warn().Int64("character_id", character.ID).Msg("character belongs to another user, ignoring")
		default:
			spec.CharacterContext = characterContext(character)
		}
	}

	if len(req.AssetIDs) > 0 {
		assets, err := g.assets.FindAssetsByIDs(ctx, *identity.UserID, req.AssetIDs)
		if err != nil {
			log.Warn().Err(err).Msg("assets not usable, ignoring")
		}
		for _, a := range assets {
			spec.AssetContexts = append(spec.AssetContexts, a.Context())
		}
	}

	return spec
}

func (g *generationService) synthesize(ctx context.Context, spec models.PromptSpec) string {
	_, span := g.tracer.Start(ctx, "generation.synthesize")
	defer span.End()

	enhanced := prompt.Synthesize(spec)
	span.SetAttributes(
		attribute.String("prompt.style", spec.Style.String()),
		attribute.String("prompt.format", spec.Format.String()),
		attribute.Int("prompt.length", len(enhanced)),
	)

	logger.FromContext(ctx).Debug().
		Str("style", spec.Style.String()).
		Int("length", len(enhanced)).
		Msg("prompt synthesized")

	return enhanced
}

type backendResult struct {
	url string
	err error
}

// generateImage calls the backend detached from the caller's cancellation
// and bounded by backendTimeout. When the caller goes away first, the call
// keeps running and its result is discarded.
func (g *generationService) generateImage(ctx context.Context, enhancedPrompt, size string) (string, error) {
	ctx, span := g.tracer.Start(ctx, "generation.backend")
	defer span.End()

	log := logger.FromContext(ctx)

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.backendTimeout)
	done := make(chan backendResult, 1)

	go func() {
		url, err := g.backend.GenerateImage(callCtx, enhancedPrompt, size, g.quality)
		done <- backendResult{url: url, err: err}
	}()

	select {
	case res := <-done:
		cancel()
		if res.err != nil {
			log.Warn().Err(res.err).Msg("image backend failed")
			return "", failSpan(span, fmt.Errorf("%w: %w", ErrBackendFailure, res.err))
		}
		log.Debug().Msg("image generated")
		return res.url, nil

	case <-ctx.Done():
		go func() {
			defer cancel()
			res := <-done
			log.Warn().Err(res.err).Bool("has_image", res.url != "").Msg("caller left, discarding backend result")
		}()
		return "", failSpan(span, fmt.Errorf("%w: %w", ErrBackendFailure, ctx.Err()))
	}
}

// persist returns the durable URL and true, or the backend URL and false.
// It gives up after persistTimeout so that recording still fits in the
// request.
func (g *generationService) persist(ctx context.Context, userID *int64, sourceURL string) (string, bool) {
	ctx, span := g.tracer.Start(ctx, "generation.persist")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, g.persistTimeout)
	defer cancel()

	url, err := g.persister.Persist(ctx, userID, sourceURL)
	if err != nil {
		span.SetAttributes(attribute.Bool("persistence.degraded", true))
		span.RecordError(err)

		if errors.Is(err, adapter.ErrBlobStoreDisabled) {
			logger.FromContext(ctx).Debug().Msg("blob store disabled, keeping backend url")
		} else {
			logger.FromContext(ctx).Warn().Err(err).Msg("image persistence failed, keeping backend url")
		}
		return sourceURL, false
	}

	return url, true
}

func (g *generationService) record(ctx context.Context, event models.GenerationEvent, meme models.Meme) (models.GenerationEvent, models.Meme, error) {
	ctx, span := g.tracer.Start(ctx, "generation.record")
	defer span.End()

	event, meme, err := g.generations.RecordGeneration(ctx, event, meme)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to record generation")
		return event, meme, failSpan(span, fmt.Errorf("%w: %w", ErrBackendFailure, err))
	}

	span.SetAttributes(attribute.Int64("meme.id", meme.ID))
	return event, meme, nil
}

func characterContext(c models.Character) string {
	if c.StylePrompt != "" {
		return c.StylePrompt
	}
	if c.Description != "" {
		return c.Name + ": " + c.Description
	}
	return c.Name
}

// characterIDOf keeps the requested character id only when it made it into
// the prompt.
func characterIDOf(spec models.PromptSpec, req models.GenerateRequest) *int64 {
	if spec.CharacterContext == "" {
		return nil
	}
	return req.CharacterID
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
