package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	snapdishv1 "github.com/snapdish/snapdish/gen/proto/snapdish/v1"
	"github.com/snapdish/snapdish/internal/repository"
)

type RecipesServer struct {
	snapdishv1.UnimplementedRecipesServiceServer
	recipes repository.RecipeRepository
	logger  *slog.Logger
}

func NewRecipesServer(recipes repository.RecipeRepository, logger *slog.Logger) *RecipesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipesServer{recipes: recipes, logger: logger}
}

func (s *RecipesServer) GetRecipe(ctx context.Context, req *snapdishv1.GetRecipeRequest) (*snapdishv1.GetRecipeResponse, error) {
	id, err := parseRecipeID(req.GetRecipeId())
	if err != nil {
		return nil, err
	}
	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get recipe", "recipe_id", id, "error", err)
		return nil, status.Error(codes.NotFound, "recipe not found")
	}
	return &snapdishv1.GetRecipeResponse{Recipe: toPBRecipe(rec)}, nil
}

func (s *RecipesServer) ListRecipes(ctx context.Context, req *snapdishv1.ListRecipesRequest) (*snapdishv1.ListRecipesResponse, error) {
	recs, err := s.recipes.List(ctx, req.GetIncludeArchived())
	if err != nil {
		s.logger.Error("failed to list recipes", "error", err)
		return nil, status.Errorf(codes.Internal, "list recipes: %v", err)
	}
	out := make([]*snapdishv1.Recipe, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toPBRecipe(rec))
	}
	return &snapdishv1.ListRecipesResponse{Recipes: out}, nil
}

func (s *RecipesServer) ArchiveRecipe(ctx context.Context, req *snapdishv1.ArchiveRecipeRequest) (*snapdishv1.ArchiveRecipeResponse, error) {
	id, err := parseRecipeID(req.GetRecipeId())
	if err != nil {
		return nil, err
	}
	if err := s.recipes.Archive(ctx, id); err != nil {
		s.logger.Error("failed to archive recipe", "recipe_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "archive recipe: %v", err)
	}
	s.logger.Info("recipe archived", "recipe_id", id)
	return &snapdishv1.ArchiveRecipeResponse{}, nil
}

func (s *RecipesServer) DeleteRecipe(ctx context.Context, req *snapdishv1.DeleteRecipeRequest) (*snapdishv1.DeleteRecipeResponse, error) {
	id, err := parseRecipeID(req.GetRecipeId())
	if err != nil {
		return nil, err
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete recipe", "recipe_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "delete recipe: %v", err)
	}
	s.logger.Info("recipe deleted", "recipe_id", id)
	return &snapdishv1.DeleteRecipeResponse{}, nil
}

func parseRecipeID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "recipe_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "recipe_id must be a UUID")
	}
	return id, nil
}
